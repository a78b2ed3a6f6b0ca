// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth

import "context"

// UserRepository abstracts persistent storage of authentication identities.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or a NotFound error.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given id, or a NotFound error.
	FindByID(ctx context.Context, id int64) (*User, error)

	// Create persists a new user and fills in the generated id and timestamps.
	// A duplicate email yields a Conflict error (unique index).
	Create(ctx context.Context, user *User) error
}

// ThrottleRepository tracks failed login attempts per email.
//
// Counters expire on their own; a successful login resets them early.
type ThrottleRepository interface {
	// Fail records a failed attempt and returns the updated counter.
	Fail(ctx context.Context, email string) (int64, error)

	// Attempts returns the current failed-attempt counter.
	Attempts(ctx context.Context, email string) (int64, error)

	// Reset clears the counter.
	Reset(ctx context.Context, email string) error
}
