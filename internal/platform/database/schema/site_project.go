package schema

// SiteProjectTable represents the 'site.project' table
type SiteProjectTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Location    string
	Category    string
	StartYear   string
	EndYear     string
	Language    string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
}

// SiteProject is the schema definition for site.project
var SiteProject = SiteProjectTable{
	Table:       "site.project",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Location:    "location",
	Category:    "category",
	StartYear:   "startyear",
	EndYear:     "endyear",
	Language:    "language",
	SortOrder:   "sortorder",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// SiteProjectImageTable represents the 'site.projectimage' table
type SiteProjectImageTable struct {
	Table     string
	ID        string
	ProjectID string
	URL       string
	AltText   string
	IsPrimary string
	SortOrder string
}

// SiteProjectImage is the schema definition for site.projectimage
var SiteProjectImage = SiteProjectImageTable{
	Table:     "site.projectimage",
	ID:        "id",
	ProjectID: "projectid",
	URL:       "url",
	AltText:   "alttext",
	IsPrimary: "isprimary",
	SortOrder: "sortorder",
}
