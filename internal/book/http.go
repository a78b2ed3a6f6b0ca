package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createBook)
	router.Get("/", handler.listBooks)
	router.Get("/{id}", handler.getBook)
	router.Put("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)

	return router
}

// # Request / Response Payloads

// createBookRequest mirrors the external wire format: the page count arrives
// under its historical alias and may be omitted entirely.
type createBookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year"`
	Pages    *int   `json:"count_pages"`
	SellerID int64  `json:"seller_id"`
}

type updateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Pages  int    `json:"pages"`
}

type bookListResponse struct {
	Books []*Book `json:"books"`
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input createBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	b, err := handler.service.CreateBook(request.Context(), CreateInput{
		Title:    input.Title,
		Author:   input.Author,
		Year:     input.Year,
		Pages:    input.Pages,
		SellerID: input.SellerID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, b)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookListResponse{Books: books})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, b)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	b, err := handler.service.UpdateBook(request.Context(), bookID, UpdateInput{
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Pages:  input.Pages,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, b)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
