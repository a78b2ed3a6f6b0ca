// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package schema

// BookTable represents the 'books' table
type BookTable struct {
	Table     string
	ID        string
	Title     string
	Author    string
	Year      string
	Pages     string
	SellerID  string
	CreatedAt string
	UpdatedAt string
}

// Book is the schema definition for books
var Book = BookTable{
	Table:     "books",
	ID:        "id",
	Title:     "title",
	Author:    "author",
	Year:      "year",
	Pages:     "pages",
	SellerID:  "sellerid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t BookTable) Columns() []string {
	return []string{t.ID, t.Title, t.Author, t.Year, t.Pages, t.SellerID, t.CreatedAt, t.UpdatedAt}
}
