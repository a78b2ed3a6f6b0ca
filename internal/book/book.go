// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package book

import "time"

// Book represents a single catalogue entry owned by a seller.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Pages     int       `json:"pages"`
	SellerID  int64     `json:"seller_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultPages is used when a creation request omits the page count.
const DefaultPages = 150

// MinYear is the oldest publication year accepted at the API boundary.
// Rows written directly to storage bypass this rule.
const MinYear = 2020

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldYear     = "year"
	FieldPages    = "pages"
	FieldSellerID = "seller_id"
)
