package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	IsBanned     string
	ConfirmedAt  string
	CreatedAt    string
	UpdatedAt    string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	Role:         "role",
	IsBanned:     "isbanned",
	ConfirmedAt:  "confirmedat",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
