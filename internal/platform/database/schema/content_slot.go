package schema

// ContentSlotTable represents the 'content.slot' table
type ContentSlotTable struct {
	Table     string
	ID        string
	Kind      string
	Key       string
	Language  string
	Title     string
	Body      string
	Document  string
	CreatedAt string
	UpdatedAt string
}

// ContentSlot is the schema definition for content.slot
var ContentSlot = ContentSlotTable{
	Table:     "content.slot",
	ID:        "id",
	Kind:      "kind",
	Key:       "key",
	Language:  "language",
	Title:     "title",
	Body:      "body",
	Document:  "document",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentSlotTable) Columns() []string {
	return []string{t.ID, t.Kind, t.Key, t.Language, t.Title, t.Body, t.Document, t.CreatedAt, t.UpdatedAt}
}
