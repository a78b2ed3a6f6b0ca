// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package book

import "context"

// Repository abstracts persistent storage of books.
type Repository interface {
	ListBooks(ctx context.Context) ([]*Book, error)
	GetBook(ctx context.Context, id int64) (*Book, error)
	CreateBook(ctx context.Context, b *Book) error
	UpdateBook(ctx context.Context, b *Book) error
	DeleteBook(ctx context.Context, id int64) error
}
