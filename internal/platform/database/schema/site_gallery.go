package schema

// SiteGalleryCategoryTable represents the 'site.gallerycategory' table
type SiteGalleryCategoryTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	SortOrder string
	IsActive  string
	CreatedAt string
}

// SiteGalleryCategory is the schema definition for site.gallerycategory
var SiteGalleryCategory = SiteGalleryCategoryTable{
	Table:     "site.gallerycategory",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	SortOrder: "sortorder",
	IsActive:  "isactive",
	CreatedAt: "createdat",
}

// SiteGalleryImageTable represents the 'site.galleryimage' table
type SiteGalleryImageTable struct {
	Table         string
	ID            string
	CategoryID    string
	URL           string
	AltText       string
	SortOrder     string
	IsActive      string
	FileSizeBytes string
	CreatedAt     string
}

// SiteGalleryImage is the schema definition for site.galleryimage
var SiteGalleryImage = SiteGalleryImageTable{
	Table:         "site.galleryimage",
	ID:            "id",
	CategoryID:    "categoryid",
	URL:           "url",
	AltText:       "alttext",
	SortOrder:     "sortorder",
	IsActive:      "isactive",
	FileSizeBytes: "filesizebytes",
	CreatedAt:     "createdat",
}
