// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/SeasideRacoon/bookstore-api/internal/platform/request"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/respond"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoint.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST / : Login-or-register, returns a bearer token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.issueToken)
	return router
}

// # Request Payloads

type tokenRequest struct {
	Email    string `json:"e_mail"`
	Password string `json:"password"`
}

/*
issueToken authenticates credentials and returns an access token.

POST /api/v1/token

Description: Verifies the password for a known email, or registers the
email on its first successful attempt, then issues a signed bearer token.

Request:
  - Body: tokenRequest (Email, Password)

Response:
  - 200: Token: {access_token, token_type}
  - 401: Unauthorized: Wrong password (or lost registration race)
  - 422: ValidationError: Missing fields
  - 429: RateLimited: Too many failed attempts
*/
func (handler *Handler) issueToken(writer http.ResponseWriter, request *http.Request) {
	var input tokenRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.IssueToken(request.Context(), AuthInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, token)
}
