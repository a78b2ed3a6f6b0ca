// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/database/schema"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/dberr"
)

// PostgresRepository implements Repository on top of pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListBooks(ctx context.Context) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Book.ID, schema.Book.Title, schema.Book.Author, schema.Book.Year,
		schema.Book.Pages, schema.Book.SellerID, schema.Book.CreatedAt, schema.Book.UpdatedAt,
		schema.Book.Table, schema.Book.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Pages, &b.SellerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}

	return books, nil
}

func (repository *PostgresRepository) GetBook(ctx context.Context, id int64) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Book.ID, schema.Book.Title, schema.Book.Author, schema.Book.Year,
		schema.Book.Pages, schema.Book.SellerID, schema.Book.CreatedAt, schema.Book.UpdatedAt,
		schema.Book.Table, schema.Book.ID,
	)

	b := &Book{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Year, &b.Pages, &b.SellerID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	return b, nil
}

func (repository *PostgresRepository) CreateBook(ctx context.Context, b *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		schema.Book.Table, schema.Book.Title, schema.Book.Author, schema.Book.Year,
		schema.Book.Pages, schema.Book.SellerID,
		schema.Book.ID, schema.Book.CreatedAt, schema.Book.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, b.Title, b.Author, b.Year, b.Pages, b.SellerID).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) UpdateBook(ctx context.Context, b *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Book.Table, schema.Book.Title, schema.Book.Author, schema.Book.Year,
		schema.Book.Pages, schema.Book.UpdatedAt,
		schema.Book.ID,
		schema.Book.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, b.ID, b.Title, b.Author, b.Year, b.Pages).Scan(&b.UpdatedAt)
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
