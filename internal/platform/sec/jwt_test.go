// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestTokenService_RoundTrip verifies that a generated token passes verification
and carries the expected claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "bookstore-api")
	require.NoError(t, err)

	tokenString, err := service.GenerateAccessToken(42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.VerifyToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "bookstore-api", claims.Issuer)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

/*
TestTokenService_ShortSecret ensures weak HMAC secrets are rejected at
construction time.
*/
func TestTokenService_ShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("too-short", "bookstore-api")
	assert.Error(t, err)
}

/*
TestTokenService_TamperedToken ensures a single flipped character in any token
segment invalidates it.
*/
func TestTokenService_TamperedToken(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "bookstore-api")
	require.NoError(t, err)

	tokenString, err := service.GenerateAccessToken(42, time.Hour)
	require.NoError(t, err)

	// Flip one character in the payload segment.
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	_, err = service.VerifyToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret ensures a token signed with a different secret is
rejected.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuerService, err := sec.NewTokenService(testSecret, "bookstore-api")
	require.NoError(t, err)

	otherService, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "bookstore-api")
	require.NoError(t, err)

	tokenString, err := issuerService.GenerateAccessToken(42, time.Hour)
	require.NoError(t, err)

	_, err = otherService.VerifyToken(tokenString)
	assert.Error(t, err)
}

/*
TestTokenService_ExpiredToken ensures expired tokens fail verification.
*/
func TestTokenService_ExpiredToken(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "bookstore-api")
	require.NoError(t, err)

	tokenString, err := service.GenerateAccessToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(tokenString)
	assert.Error(t, err)
}

/*
TestAuthClaims_UserID_NotNumeric verifies non-numeric subjects are rejected.
*/
func TestAuthClaims_UserID_NotNumeric(t *testing.T) {
	claims := &sec.AuthClaims{}
	claims.Subject = "not-a-number"

	_, err := claims.UserID()
	assert.Error(t, err)
}
