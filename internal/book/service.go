// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package book

import (
	"context"
	"log/slog"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/validate"
)

// Service orchestrates book CRUD on top of the repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the data required to register a new book. A nil Pages
// falls back to DefaultPages.
type CreateInput struct {
	Title    string
	Author   string
	Year     int
	Pages    *int
	SellerID int64
}

// UpdateInput replaces the stored book wholesale: every field is required.
// The owning seller cannot be changed through this operation.
type UpdateInput struct {
	Title  string
	Author string
	Year   int
	Pages  int
}

func (service *Service) ListBooks(ctx context.Context) ([]*Book, error) {
	books, err := service.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}

func (service *Service) GetBook(ctx context.Context, id int64) (*Book, error) {
	b, err := service.repo.GetBook(ctx, id)
	if err != nil {
		return nil, notFoundAsBook(err)
	}
	return b, nil
}

func (service *Service) CreateBook(ctx context.Context, input CreateInput) (*Book, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 100).
		Required(FieldAuthor, input.Author).MaxLen(FieldAuthor, input.Author, 100).
		Custom(FieldYear, input.Year < MinYear, "Year is too old!").
		Custom(FieldSellerID, input.SellerID <= 0, "This field is required")
	if input.Pages != nil {
		validator.Range(FieldPages, *input.Pages, 1, 10000)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	pages := DefaultPages
	if input.Pages != nil {
		pages = *input.Pages
	}

	b := &Book{
		Title:    input.Title,
		Author:   input.Author,
		Year:     input.Year,
		Pages:    pages,
		SellerID: input.SellerID,
	}

	if err := service.repo.CreateBook(ctx, b); err != nil {
		return nil, err
	}

	service.logger.Info("book_created", slog.Int64("book_id", b.ID), slog.Int64("seller_id", b.SellerID))
	return b, nil
}

// UpdateBook overwrites title, author, year and pages with the incoming
// values. Unlike creation, the year is accepted as-is here.
func (service *Service) UpdateBook(ctx context.Context, id int64, input UpdateInput) (*Book, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 100).
		Required(FieldAuthor, input.Author).MaxLen(FieldAuthor, input.Author, 100).
		Range(FieldPages, input.Pages, 1, 10000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	b, err := service.repo.GetBook(ctx, id)
	if err != nil {
		return nil, notFoundAsBook(err)
	}

	b.Title = input.Title
	b.Author = input.Author
	b.Year = input.Year
	b.Pages = input.Pages

	if err := service.repo.UpdateBook(ctx, b); err != nil {
		return nil, notFoundAsBook(err)
	}

	service.logger.Info("book_updated", slog.Int64("book_id", b.ID))
	return b, nil
}

func (service *Service) DeleteBook(ctx context.Context, id int64) error {
	if err := service.repo.DeleteBook(ctx, id); err != nil {
		return notFoundAsBook(err)
	}

	service.logger.Warn("book_deleted", slog.Int64("book_id", id))
	return nil
}

// notFoundAsBook renames a generic storage NotFound to the entity the caller
// asked about.
func notFoundAsBook(err error) error {
	if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
		return apperr.NotFound("Book")
	}
	return err
}
