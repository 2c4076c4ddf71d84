package schema

// SiteContactCardTable represents the 'site.contactcard' table
type SiteContactCardTable struct {
	Table     string
	ID        string
	CardType  string
	Title     string
	Payload   string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// SiteContactCard is the schema definition for site.contactcard
var SiteContactCard = SiteContactCardTable{
	Table:     "site.contactcard",
	ID:        "id",
	CardType:  "cardtype",
	Title:     "title",
	Payload:   "payload",
	SortOrder: "sortorder",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
