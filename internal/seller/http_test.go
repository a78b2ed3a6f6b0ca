// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package seller_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeasideRacoon/bookstore-api/internal/book"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/sec"
	"github.com/SeasideRacoon/bookstore-api/internal/seller"
)

// # HTTP Test Doubles

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	validToken string
	subject    string
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr != f.validToken {
		return nil, errors.New("invalid token")
	}
	claims := &sec.AuthClaims{}
	claims.RegisteredClaims = jwt.RegisteredClaims{Subject: f.subject}
	return claims, nil
}

// fakeResolver accepts exactly one subject.
type fakeResolver struct {
	knownSubject string
}

func (f *fakeResolver) ResolveSubject(ctx context.Context, subject string) (int64, error) {
	if subject != f.knownSubject {
		return 0, apperr.InvalidCredentials()
	}
	return 1, nil
}

func newSellerServer(t *testing.T, repo seller.Repository) *httptest.Server {
	t.Helper()
	service := seller.NewService(repo, slog.Default())
	handler := seller.NewHandler(service)

	verifier := &fakeVerifier{validToken: "good-token", subject: "1"}
	resolver := &fakeResolver{knownSubject: "1"}

	server := httptest.NewServer(handler.Routes(verifier, resolver))
	t.Cleanup(server.Close)
	return server
}

// # Wire Contract

/*
TestHandler_CreateSeller verifies the creation wire format: aliased request
fields in, bare seller body out, password never serialized.
*/
func TestHandler_CreateSeller(t *testing.T) {
	repo := &fakeRepository{
		createSeller: func(ctx context.Context, s *seller.Seller) error {
			s.ID = 1
			s.Books = []book.Book{}
			return nil
		},
	}
	server := newSellerServer(t, repo)

	body := `{"first_name": "Ivan", "second_name": "Petrov", "sellers_mail": "ivan@example.com", "sellers_password": "secret"}`
	response, err := http.Post(server.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusCreated, response.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))

	assert.Equal(t, float64(1), payload["id"])
	assert.Equal(t, "Ivan", payload["first_name"])
	assert.Equal(t, "Petrov", payload["second_name"])
	assert.Equal(t, "ivan@example.com", payload["e_mail"])
	assert.Equal(t, []any{}, payload["books"])

	// Credentials must never leak into the response.
	_, hasPassword := payload["sellers_password"]
	assert.False(t, hasPassword)
}

/*
TestHandler_ListSellers verifies the {"sellers": [...]} list envelope.
*/
func TestHandler_ListSellers(t *testing.T) {
	repo := &fakeRepository{
		listSellers: func(ctx context.Context) ([]*seller.Seller, error) {
			return []*seller.Seller{
				{ID: 1, FirstName: "Ivan", SecondName: "Petrov", Email: "ivan@example.com", Books: []book.Book{}},
			}, nil
		},
	}
	server := newSellerServer(t, repo)

	response, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var payload struct {
		Sellers []seller.Seller `json:"sellers"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	require.Len(t, payload.Sellers, 1)
	assert.Equal(t, "Ivan", payload.Sellers[0].FirstName)
}

// # Protected Route

/*
TestHandler_GetSeller_Auth verifies that the single-seller read requires a
valid bearer token resolving to a stored user.
*/
func TestHandler_GetSeller_Auth(t *testing.T) {
	repo := &fakeRepository{
		getSeller: func(ctx context.Context, id int64) (*seller.Seller, error) {
			return &seller.Seller{ID: id, FirstName: "Ivan", SecondName: "Petrov", Email: "ivan@example.com", Books: []book.Book{}}, nil
		},
	}
	server := newSellerServer(t, repo)

	get := func(t *testing.T, authorization string) *http.Response {
		t.Helper()
		request, err := http.NewRequest(http.MethodGet, server.URL+"/1", nil)
		require.NoError(t, err)
		if authorization != "" {
			request.Header.Set("Authorization", authorization)
		}
		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		return response
	}

	t.Run("missing_token", func(t *testing.T) {
		response := get(t, "")
		defer response.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
	})

	t.Run("forged_token", func(t *testing.T) {
		response := get(t, "Bearer forged")
		defer response.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, response.StatusCode)

		var envelope struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
		assert.Equal(t, "Could not validate credentials", envelope.Error)
	})

	t.Run("malformed_header", func(t *testing.T) {
		response := get(t, "good-token")
		defer response.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
	})

	t.Run("valid_token", func(t *testing.T) {
		response := get(t, "Bearer good-token")
		defer response.Body.Close()
		assert.Equal(t, http.StatusOK, response.StatusCode)

		var payload seller.Seller
		require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
		assert.Equal(t, int64(1), payload.ID)
	})
}

// # Update & Delete

/*
TestHandler_UpdateSeller verifies the partial-update wire format.
*/
func TestHandler_UpdateSeller(t *testing.T) {
	repo := &fakeRepository{
		getSeller: func(ctx context.Context, id int64) (*seller.Seller, error) {
			return &seller.Seller{ID: id, FirstName: "Ivan", SecondName: "Petrov", Email: "ivan@example.com", Books: []book.Book{}}, nil
		},
		updateSeller: func(ctx context.Context, s *seller.Seller) error {
			return nil
		},
	}
	server := newSellerServer(t, repo)

	body := `{"e_mail": "new@example.com"}`
	request, err := http.NewRequest(http.MethodPut, server.URL+"/1", strings.NewReader(body))
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var payload seller.Seller
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	assert.Equal(t, "new@example.com", payload.Email)
	assert.Equal(t, "Ivan", payload.FirstName)
}

/*
TestHandler_DeleteSeller verifies the 204 and not-found paths.
*/
func TestHandler_DeleteSeller(t *testing.T) {
	repo := &fakeRepository{
		deleteSeller: func(ctx context.Context, id int64) error {
			if id != 1 {
				return apperr.NotFound("Resource")
			}
			return nil
		},
	}
	server := newSellerServer(t, repo)

	deleteSeller := func(t *testing.T, path string) *http.Response {
		t.Helper()
		request, err := http.NewRequest(http.MethodDelete, server.URL+path, nil)
		require.NoError(t, err)
		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		return response
	}

	t.Run("existing_seller", func(t *testing.T) {
		response := deleteSeller(t, "/1")
		defer response.Body.Close()
		assert.Equal(t, http.StatusNoContent, response.StatusCode)
	})

	t.Run("unknown_seller", func(t *testing.T) {
		response := deleteSeller(t, "/999")
		defer response.Body.Close()
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		response := deleteSeller(t, "/abc")
		defer response.Body.Close()
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}
