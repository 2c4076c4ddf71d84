// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/demirhancelik/corporate-api/internal/platform/request"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// Handler implements contact card HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the authenticated /contact route group.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCards)
	router.Post("/", handler.createCard)
	router.Get("/{id}", handler.getCard)
	router.Put("/{id}", handler.updateCard)
	router.Delete("/{id}", handler.deleteCard)

	return router
}

// PublicRoutes returns the unauthenticated grouped listing.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.publicCards)

	return router
}

func (handler *Handler) listCards(writer http.ResponseWriter, request *http.Request) {
	cards, err := handler.service.ListCards(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cards)
}

func (handler *Handler) getCard(writer http.ResponseWriter, request *http.Request) {
	card, err := handler.service.GetCard(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, card)
}

func (handler *Handler) createCard(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	card, err := handler.service.CreateCard(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, card)
}

func (handler *Handler) updateCard(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	card, err := handler.service.UpdateCard(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, card)
}

func (handler *Handler) deleteCard(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCard(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publicCards(writer http.ResponseWriter, request *http.Request) {
	cards, err := handler.service.PublicCards(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cards)
}
