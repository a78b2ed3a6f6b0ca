// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package schema

// SellerTable represents the 'sellers' table
type SellerTable struct {
	Table      string
	ID         string
	FirstName  string
	SecondName string
	Email      string
	Password   string
	CreatedAt  string
	UpdatedAt  string
}

// Seller is the schema definition for sellers
var Seller = SellerTable{
	Table:      "sellers",
	ID:         "id",
	FirstName:  "firstname",
	SecondName: "secondname",
	Email:      "email",
	Password:   "passwordhash",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t SellerTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.SecondName, t.Email, t.Password, t.CreatedAt, t.UpdatedAt}
}
