package schema

// SiteMachineTable represents the 'site.machine' table
type SiteMachineTable struct {
	Table       string
	ID          string
	Quantity    string
	Description string
	Model       string
	Brand       string
	IsDomestic  string
	IsImported  string
	Capacity    string
	CreatedAt   string
	UpdatedAt   string
}

// SiteMachine is the schema definition for site.machine
var SiteMachine = SiteMachineTable{
	Table:       "site.machine",
	ID:          "id",
	Quantity:    "quantity",
	Description: "description",
	Model:       "model",
	Brand:       "brand",
	IsDomestic:  "isdomestic",
	IsImported:  "isimported",
	Capacity:    "capacity",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
