// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/database/schema"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/dberr"
)

// PostgresUserRepository implements UserRepository on top of pgxpool.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new Postgres-backed UserRepository.
func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.User.ID, schema.User.Email, schema.User.Password, schema.User.CreatedAt,
		schema.User.Table, schema.User.Email,
	)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}

	return user, nil
}

func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.User.ID, schema.User.Email, schema.User.Password, schema.User.CreatedAt,
		schema.User.Table, schema.User.ID,
	)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}

	return user, nil
}

func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s
	`,
		schema.User.Table, schema.User.Email, schema.User.Password,
		schema.User.ID, schema.User.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	return dberr.Wrap(err, "create_user")
}
