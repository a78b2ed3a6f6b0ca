// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package book_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeasideRacoon/bookstore-api/internal/book"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
)

// # Test Doubles

// fakeRepository implements book.Repository with injectable behavior per method.
type fakeRepository struct {
	listBooks  func(ctx context.Context) ([]*book.Book, error)
	getBook    func(ctx context.Context, id int64) (*book.Book, error)
	createBook func(ctx context.Context, b *book.Book) error
	updateBook func(ctx context.Context, b *book.Book) error
	deleteBook func(ctx context.Context, id int64) error
}

func (f *fakeRepository) ListBooks(ctx context.Context) ([]*book.Book, error) {
	return f.listBooks(ctx)
}

func (f *fakeRepository) GetBook(ctx context.Context, id int64) (*book.Book, error) {
	return f.getBook(ctx, id)
}

func (f *fakeRepository) CreateBook(ctx context.Context, b *book.Book) error {
	return f.createBook(ctx, b)
}

func (f *fakeRepository) UpdateBook(ctx context.Context, b *book.Book) error {
	return f.updateBook(ctx, b)
}

func (f *fakeRepository) DeleteBook(ctx context.Context, id int64) error {
	return f.deleteBook(ctx, id)
}

func newService(repo book.Repository) *book.Service {
	return book.NewService(repo, slog.Default())
}

func intPtr(value int) *int { return &value }

// # Creation

/*
TestService_CreateBook verifies the year rule, the page default, and happy-path
persistence.
*/
func TestService_CreateBook(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		repo := &fakeRepository{
			createBook: func(ctx context.Context, b *book.Book) error {
				b.ID = 1
				return nil
			},
		}

		created, err := newService(repo).CreateBook(context.Background(), book.CreateInput{
			Title:    "Clean Architecture",
			Author:   "Robert Martin",
			Year:     2025,
			Pages:    intPtr(352),
			SellerID: 1,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, 352, created.Pages)
		assert.Equal(t, int64(1), created.SellerID)
	})

	t.Run("omitted_pages_default", func(t *testing.T) {
		repo := &fakeRepository{
			createBook: func(ctx context.Context, b *book.Book) error {
				b.ID = 2
				return nil
			},
		}

		created, err := newService(repo).CreateBook(context.Background(), book.CreateInput{
			Title:    "Some Title",
			Author:   "Some Author",
			Year:     2024,
			SellerID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, book.DefaultPages, created.Pages)
	})

	t.Run("year_before_minimum_rejected", func(t *testing.T) {
		repo := &fakeRepository{
			createBook: func(ctx context.Context, b *book.Book) error {
				t.Fatal("CreateBook must not persist invalid input")
				return nil
			},
		}

		_, err := newService(repo).CreateBook(context.Background(), book.CreateInput{
			Title:    "Old News",
			Author:   "Someone",
			Year:     2019,
			SellerID: 1,
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Equal(t, book.FieldYear, ae.Details[0].Field)
		assert.Equal(t, "Year is too old!", ae.Details[0].Message)
	})

	t.Run("minimum_year_accepted", func(t *testing.T) {
		repo := &fakeRepository{
			createBook: func(ctx context.Context, b *book.Book) error {
				b.ID = 3
				return nil
			},
		}

		_, err := newService(repo).CreateBook(context.Background(), book.CreateInput{
			Title:    "Boundary",
			Author:   "Someone",
			Year:     book.MinYear,
			SellerID: 1,
		})
		assert.NoError(t, err)
	})

	t.Run("dangling_seller_rejected", func(t *testing.T) {
		repo := &fakeRepository{
			createBook: func(ctx context.Context, b *book.Book) error {
				// The store translates a foreign-key violation this way.
				return apperr.ValidationError("Referenced resource does not exist")
			},
		}

		_, err := newService(repo).CreateBook(context.Background(), book.CreateInput{
			Title:    "Orphan",
			Author:   "Someone",
			Year:     2024,
			SellerID: 999,
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}

// # Full Replace

/*
TestService_UpdateBook verifies the replace-all semantics and that the year
rule does not apply to updates.
*/
func TestService_UpdateBook(t *testing.T) {
	t.Run("replaces_every_field", func(t *testing.T) {
		repo := &fakeRepository{
			getBook: func(ctx context.Context, id int64) (*book.Book, error) {
				return &book.Book{ID: id, Title: "Old", Author: "Old", Year: 2024, Pages: 100, SellerID: 1}, nil
			},
			updateBook: func(ctx context.Context, b *book.Book) error {
				return nil
			},
		}

		updated, err := newService(repo).UpdateBook(context.Background(), 1, book.UpdateInput{
			Title:  "New Title",
			Author: "New Author",
			Year:   1990, // accepted here, unlike creation
			Pages:  200,
		})
		require.NoError(t, err)

		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "New Author", updated.Author)
		assert.Equal(t, 1990, updated.Year)
		assert.Equal(t, 200, updated.Pages)
		assert.Equal(t, int64(1), updated.SellerID)
	})

	t.Run("unknown_book_returns_not_found", func(t *testing.T) {
		repo := &fakeRepository{
			getBook: func(ctx context.Context, id int64) (*book.Book, error) {
				return nil, apperr.NotFound("Resource")
			},
		}

		_, err := newService(repo).UpdateBook(context.Background(), 999, book.UpdateInput{
			Title:  "New Title",
			Author: "New Author",
			Year:   2024,
			Pages:  200,
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Book not found", ae.Message)
	})

	t.Run("empty_title_rejected", func(t *testing.T) {
		repo := &fakeRepository{}

		_, err := newService(repo).UpdateBook(context.Background(), 1, book.UpdateInput{
			Author: "New Author",
			Year:   2024,
			Pages:  200,
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}

// # Deletion & Lookup

/*
TestService_DeleteBook verifies deletion and the renamed not-found error.
*/
func TestService_DeleteBook(t *testing.T) {
	t.Run("deletes_existing", func(t *testing.T) {
		var deletedID int64
		repo := &fakeRepository{
			deleteBook: func(ctx context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}

		require.NoError(t, newService(repo).DeleteBook(context.Background(), 5))
		assert.Equal(t, int64(5), deletedID)
	})

	t.Run("unknown_book_returns_not_found", func(t *testing.T) {
		repo := &fakeRepository{
			deleteBook: func(ctx context.Context, id int64) error {
				return apperr.NotFound("Resource")
			},
		}

		err := newService(repo).DeleteBook(context.Background(), 999)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Book not found", ae.Message)
	})
}

/*
TestService_ListBooks verifies that an empty result is a slice, not nil.
*/
func TestService_ListBooks(t *testing.T) {
	repo := &fakeRepository{
		listBooks: func(ctx context.Context) ([]*book.Book, error) {
			return nil, nil
		},
	}

	books, err := newService(repo).ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}
