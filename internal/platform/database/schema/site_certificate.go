package schema

// SiteCertificateTable represents the 'site.certificate' table
type SiteCertificateTable struct {
	Table             string
	ID                string
	Kind              string
	Title             string
	Description       string
	CertificateNumber string
	IssueDate         string
	ExpiryDate        string
	Authority         string
	ImageURL          string
	IsActive          string
	CreatedAt         string
	UpdatedAt         string
}

// SiteCertificate is the schema definition for site.certificate
var SiteCertificate = SiteCertificateTable{
	Table:             "site.certificate",
	ID:                "id",
	Kind:              "kind",
	Title:             "title",
	Description:       "description",
	CertificateNumber: "certificatenumber",
	IssueDate:         "issuedate",
	ExpiryDate:        "expirydate",
	Authority:         "authority",
	ImageURL:          "imageurl",
	IsActive:          "isactive",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}
