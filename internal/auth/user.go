// Copyright (c) 2026 SeasideRacoon. All rights reserved.

/*
Package auth implements the user identity layer.

It defines the User entity and the login-or-register flow: the first
successful authentication attempt with an unseen email creates the account,
every later attempt verifies the stored password hash. There is no separate
registration endpoint.

# Architecture

  - Service: Orchestrates token issuance and identity resolution.
  - Repository: Abstracted interfaces for Postgres (users) and Redis (throttle).
  - Security: bcrypt hashing and HMAC-signed JWTs via the platform sec package.
*/
package auth

import "time"

// # Domain Entities

// User represents an authentication identity.
//
// Users are created only by the login-or-register flow and are unconnected
// to the Seller catalogue entity.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"e_mail"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}

// Token is the credential pair returned by a successful authentication.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// # Field Identifiers

// Global field names for validation in the authentication domain.
const (
	FieldEmail    = "e_mail"
	FieldPassword = "password"
)
