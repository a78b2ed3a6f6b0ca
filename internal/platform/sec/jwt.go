// Copyright (c) 2026 SeasideRacoon. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer.
package sec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength rejects HMAC secrets too short to resist brute force.
const minSecretLength = 32

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// Only the registered claims are used; the subject carries the user
// identifier, so validating a token requires no server-side session state.
type AuthClaims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim as the numeric user identifier.
func (c *AuthClaims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sec: token subject is not a user id: %w", err)
	}
	return id, nil
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is process-wide static configuration: any process
// holding the same secret can validate tokens issued by any other, which
// allows horizontal scaling without a shared session store.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from a static HMAC secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("sec: JWT secret must be at least %d bytes", minSecretLength)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateAccessToken creates a new signed JWT access token for a user.
func (service *TokenService) GenerateAccessToken(userID int64, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
