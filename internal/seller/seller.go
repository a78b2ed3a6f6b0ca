// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package seller

import (
	"time"

	"github.com/SeasideRacoon/bookstore-api/internal/book"
)

// Seller represents a bookstore seller owning a collection of books.
//
// The seller is the exclusive owner of its books: deleting a seller cascades
// to every book referencing it (enforced at the store level).
type Seller struct {
	ID           int64       `json:"id"`
	FirstName    string      `json:"first_name"`
	SecondName   string      `json:"second_name"`
	Email        string      `json:"e_mail"`
	PasswordHash string      `json:"-"` // never serialized
	Books        []book.Book `json:"books"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
}

// Global field names for validation
const (
	FieldFirstName  = "first_name"
	FieldSecondName = "second_name"
	FieldEmail      = "e_mail"
	FieldPassword   = "password"
)
