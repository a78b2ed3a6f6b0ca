// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeasideRacoon/bookstore-api/internal/auth"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
)

func newAuthServer(t *testing.T, userRepo *fakeUserRepository) *httptest.Server {
	t.Helper()
	service := auth.NewService(userRepo, newThrottle(t), fakeTokenProvider{})
	server := httptest.NewServer(auth.NewHandler(service).Routes())
	t.Cleanup(server.Close)
	return server
}

/*
TestHandler_IssueToken verifies the wire contract of POST /token: field
aliases, the bearer body, and the validation failure shape.
*/
func TestHandler_IssueToken(t *testing.T) {
	userRepo := &fakeUserRepository{
		findByEmail: func(ctx context.Context, email string) (*auth.User, error) {
			return nil, apperr.NotFound("User")
		},
		create: func(ctx context.Context, user *auth.User) error {
			user.ID = 11
			return nil
		},
	}
	server := newAuthServer(t, userRepo)

	t.Run("login_or_register_returns_bearer", func(t *testing.T) {
		body := `{"e_mail": "ivan@example.com", "password": "secret"}`
		response, err := http.Post(server.URL+"/", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusOK, response.StatusCode)

		var token auth.Token
		require.NoError(t, json.NewDecoder(response.Body).Decode(&token))
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, "signed-token-11", token.AccessToken)
	})

	t.Run("missing_fields_fail_validation", func(t *testing.T) {
		response, err := http.Post(server.URL+"/", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)

		var envelope struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
		assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
		assert.Len(t, envelope.Details, 2)
	})

	t.Run("malformed_json_fails_validation", func(t *testing.T) {
		response, err := http.Post(server.URL+"/", "application/json", strings.NewReader(`{`))
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	})
}
