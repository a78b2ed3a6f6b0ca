package seller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/middleware"
	requestutil "github.com/SeasideRacoon/bookstore-api/internal/platform/request"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/respond"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the seller route group.
//
// Only the single-seller read is protected: it requires a bearer token whose
// subject still resolves to a stored user.
func (handler *Handler) Routes(verifier middleware.TokenVerifier, resolver middleware.IdentityResolver) chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createSeller)
	router.Get("/", handler.listSellers)
	router.With(middleware.RequireIdentity(verifier, resolver)).Get("/{id}", handler.getSeller)
	router.Put("/{id}", handler.updateSeller)
	router.Delete("/{id}", handler.deleteSeller)

	return router
}

// # Request / Response Payloads

// createSellerRequest mirrors the external wire format: the email and
// password arrive under their historical aliases.
type createSellerRequest struct {
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Email      string `json:"sellers_mail"`
	Password   string `json:"sellers_password"`
}

type updateSellerRequest struct {
	FirstName  *string `json:"first_name"`
	SecondName *string `json:"second_name"`
	Email      *string `json:"e_mail"`
}

type sellerListResponse struct {
	Sellers []*Seller `json:"sellers"`
}

func (handler *Handler) createSeller(writer http.ResponseWriter, request *http.Request) {
	var input createSellerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	s, err := handler.service.CreateSeller(request.Context(), CreateInput{
		FirstName:  input.FirstName,
		SecondName: input.SecondName,
		Email:      input.Email,
		Password:   input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, s)
}

func (handler *Handler) listSellers(writer http.ResponseWriter, request *http.Request) {
	sellers, err := handler.service.ListSellers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sellerListResponse{Sellers: sellers})
}

func (handler *Handler) getSeller(writer http.ResponseWriter, request *http.Request) {
	sellerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.GetSeller(request.Context(), sellerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, s)
}

func (handler *Handler) updateSeller(writer http.ResponseWriter, request *http.Request) {
	sellerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateSellerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	s, err := handler.service.UpdateSeller(request.Context(), sellerID, UpdateInput{
		FirstName:  input.FirstName,
		SecondName: input.SecondName,
		Email:      input.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, s)
}

func (handler *Handler) deleteSeller(writer http.ResponseWriter, request *http.Request) {
	sellerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSeller(request.Context(), sellerID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
