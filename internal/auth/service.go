// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/constants"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user id.
	GenerateAccessToken(userID int64, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, the
// login-or-register flow, or identity resolution must be reviewed carefully.
type Service struct {
	userRepository     UserRepository
	throttleRepository ThrottleRepository
	tokenProvider      TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, throttleRepo ThrottleRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository:     userRepo,
		throttleRepository: throttleRepo,
		tokenProvider:      tokenProv,
	}
}

// # Login-or-Register Flow

// AuthInput defines credentials for an authentication attempt.
type AuthInput struct {
	Email    string
	Password string
}

/*
IssueToken authenticates the credentials and returns a bearer token.

Description: If the email is known, the password is verified against the
stored hash. If the email is unseen, a new user is created with the hashed
password (registration-on-first-login). Both branches end with a freshly
signed access token for the resulting user.

Parameters:
  - ctx: context.Context
  - input: AuthInput

Returns:
  - *Token: Transport-ready access token
  - error: Unauthorized, RateLimited, or internal failures
*/
func (service *Service) IssueToken(ctx context.Context, input AuthInput) (*Token, error) {

	// Throttle gate: too many recent failures for this email.
	attempts, err := service.throttleRepository.Attempts(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_throttle_check_failed: %w", err)
	}
	if attempts >= constants.MaxLoginAttempts {
		return nil, apperr.RateLimited(int(constants.LoginAttemptWindow.Seconds()))
	}

	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		// Known email: verify the password (constant-time comparison in bcrypt).
		if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
			_, _ = service.throttleRepository.Fail(ctx, input.Email)
			return nil, apperr.Unauthorized("Incorrect email or password")
		}

	case isNotFound(err):
		// Unseen email: register on first login.
		user, err = service.register(ctx, input)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	_ = service.throttleRepository.Reset(ctx, input.Email)

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Token{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// register creates a new user with the hashed password.
//
// Two concurrent first logins for the same email race on the unique index;
// the loser's Conflict is translated into the same generic Unauthorized as a
// wrong password, so the caller learns nothing and simply retries.
func (service *Service) register(ctx context.Context, input AuthInput) (*User, error) {
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		if isConflict(err) {
			return nil, apperr.Unauthorized("Incorrect email or password")
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Identity Resolution

/*
ResolveSubject confirms a token subject still maps to a stored user.

Description: Parses the subject as a user id and loads the record. A token
referencing a deleted or nonexistent user fails exactly like a forged token:
the caller sees only a generic InvalidCredentials.

Returns:
  - int64: The resolved user id
  - error: apperr.InvalidCredentials for every failure sub-case
*/
func (service *Service) ResolveSubject(ctx context.Context, subject string) (int64, error) {
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, apperr.InvalidCredentials()
	}

	if _, err := service.userRepository.FindByID(ctx, userID); err != nil {
		return 0, apperr.InvalidCredentials()
	}

	return userID, nil
}

// # Error Classification Helpers

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Code == "NOT_FOUND"
}

func isConflict(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Code == "CONFLICT"
}
