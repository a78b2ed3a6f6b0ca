// Copyright (c) 2026 SeasideRacoon. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/ctxutil"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/sec"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as an int64 identifier.

Returns a NotFound error for non-numeric ids: a path like /sellers/abc
addresses a resource that cannot exist.
*/
func IntID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Resource")
	}
	return id, nil
}

/*
Claims extracts the authenticated token claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}
