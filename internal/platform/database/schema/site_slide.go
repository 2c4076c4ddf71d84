package schema

// SiteSlideTable represents the 'site.slide' table
type SiteSlideTable struct {
	Table      string
	ID         string
	Title      string
	Subtitle   string
	ImageURL   string
	Buttons    string
	ButtonText string
	ButtonURL  string
	IsActive   string
	SortOrder  string
	CreatedAt  string
	UpdatedAt  string
}

// SiteSlide is the schema definition for site.slide
var SiteSlide = SiteSlideTable{
	Table:      "site.slide",
	ID:         "id",
	Title:      "title",
	Subtitle:   "subtitle",
	ImageURL:   "imageurl",
	Buttons:    "buttons",
	ButtonText: "buttontext",
	ButtonURL:  "buttonurl",
	IsActive:   "isactive",
	SortOrder:  "sortorder",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
