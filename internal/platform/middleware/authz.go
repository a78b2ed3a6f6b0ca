// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/ctxutil"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/respond"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// IdentityResolver confirms that a token subject still maps to a stored user.
//
// A token referencing a deleted or nonexistent user must fail exactly like a
// forged token, so implementations return an error in both cases and the
// middleware collapses everything into one generic 401.
type IdentityResolver interface {
	ResolveSubject(ctx context.Context, subject string) (int64, error)
}

// RequireIdentity guards a route with full bearer-token authentication.
//
// # Flow
//  1. Require an 'Authorization: Bearer <token>' header.
//  2. Verify the token signature and claims via [TokenVerifier].
//  3. Resolve the subject against the user store via [IdentityResolver],
//     failing closed if the user no longer exists.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// Every failure mode produces the same [apperr.InvalidCredentials] response.
func RequireIdentity(verifier TokenVerifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				respond.Error(writer, request, apperr.InvalidCredentials())
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.InvalidCredentials())
				return
			}

			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.InvalidCredentials())
				return
			}

			if _, err := resolver.ResolveSubject(request.Context(), claims.Subject); err != nil {
				respond.Error(writer, request, apperr.InvalidCredentials())
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
