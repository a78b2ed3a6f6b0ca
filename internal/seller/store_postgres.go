// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package seller

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SeasideRacoon/bookstore-api/internal/book"
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

func (repository *PostgresRepository) ListSellers(ctx context.Context) ([]*Seller, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Seller.ID, schema.Seller.FirstName, schema.Seller.SecondName, schema.Seller.Email,
		schema.Seller.Password, schema.Seller.CreatedAt, schema.Seller.UpdatedAt,
		schema.Seller.Table, schema.Seller.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sellers")
	}
	defer rows.Close()

	var sellers []*Seller
	byID := make(map[int64]*Seller)
	for rows.Next() {
		s := &Seller{Books: []book.Book{}}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.SecondName, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_seller")
		}
		sellers = append(sellers, s)
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_sellers")
	}

	// Eager-load every book in a single second query and bucket by owner.
	if err := repository.attachAllBooks(ctx, byID); err != nil {
		return nil, err
	}

	return sellers, nil
}

func (repository *PostgresRepository) GetSeller(ctx context.Context, id int64) (*Seller, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Seller.ID, schema.Seller.FirstName, schema.Seller.SecondName, schema.Seller.Email,
		schema.Seller.Password, schema.Seller.CreatedAt, schema.Seller.UpdatedAt,
		schema.Seller.Table, schema.Seller.ID,
	)

	s := &Seller{Books: []book.Book{}}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FirstName, &s.SecondName, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_seller")
	}

	if err := repository.attachAllBooks(ctx, map[int64]*Seller{s.ID: s}); err != nil {
		return nil, err
	}

	return s, nil
}

func (repository *PostgresRepository) CreateSeller(ctx context.Context, s *Seller) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s
	`,
		schema.Seller.Table, schema.Seller.FirstName, schema.Seller.SecondName,
		schema.Seller.Email, schema.Seller.Password,
		schema.Seller.ID, schema.Seller.CreatedAt, schema.Seller.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, s.FirstName, s.SecondName, s.Email, s.PasswordHash).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_seller")
	}

	// A brand new seller owns no books yet.
	s.Books = []book.Book{}
	return nil
}

func (repository *PostgresRepository) UpdateSeller(ctx context.Context, s *Seller) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Seller.Table, schema.Seller.FirstName, schema.Seller.SecondName,
		schema.Seller.Email, schema.Seller.UpdatedAt,
		schema.Seller.ID,
		schema.Seller.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, s.ID, s.FirstName, s.SecondName, s.Email).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_seller")
}

func (repository *PostgresRepository) DeleteSeller(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Seller.Table, schema.Seller.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_seller")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// attachAllBooks loads the books for every seller in the map.
//
// One query serves both the single-seller and the list case; the result is
// bucketed by owner id in memory.
func (repository *PostgresRepository) attachAllBooks(ctx context.Context, byID map[int64]*Seller) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s ASC
	`,
		schema.Book.ID, schema.Book.Title, schema.Book.Author, schema.Book.Year,
		schema.Book.Pages, schema.Book.SellerID,
		schema.Book.Table, schema.Book.SellerID, schema.Book.ID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, "load_seller_books")
	}
	defer rows.Close()

	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Pages, &b.SellerID); err != nil {
			return dberr.Wrap(err, "scan_seller_book")
		}
		if owner, ok := byID[b.SellerID]; ok {
			owner.Books = append(owner.Books, b)
		}
	}
	return dberr.Wrap(rows.Err(), "load_seller_books")
}
