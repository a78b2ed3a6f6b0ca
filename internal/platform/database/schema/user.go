// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package schema

// UserTable represents the 'users' table
type UserTable struct {
	Table     string
	ID        string
	Email     string
	Password  string
	CreatedAt string
}

// User is the schema definition for users
var User = UserTable{
	Table:     "users",
	ID:        "id",
	Email:     "email",
	Password:  "passwordhash",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t UserTable) Columns() []string {
	return []string{t.ID, t.Email, t.Password, t.CreatedAt}
}
