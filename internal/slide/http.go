// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package slide

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/demirhancelik/corporate-api/internal/platform/request"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// Handler implements slide HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the authenticated /slides route group.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSlides)
	router.Post("/", handler.createSlide)
	router.Get("/{id}", handler.getSlide)
	router.Put("/{id}", handler.updateSlide)
	router.Delete("/{id}", handler.deleteSlide)

	return router
}

// PublicRoutes returns the unauthenticated active-slides listing.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.publicSlides)

	return router
}

func (handler *Handler) listSlides(writer http.ResponseWriter, request *http.Request) {
	slides, err := handler.service.ListSlides(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slides)
}

func (handler *Handler) getSlide(writer http.ResponseWriter, request *http.Request) {
	slide, err := handler.service.GetSlide(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slide)
}

func (handler *Handler) createSlide(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	slide, err := handler.service.CreateSlide(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, slide)
}

func (handler *Handler) updateSlide(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	slide, err := handler.service.UpdateSlide(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slide)
}

func (handler *Handler) deleteSlide(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteSlide(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publicSlides(writer http.ResponseWriter, request *http.Request) {
	slides, err := handler.service.PublicSlides(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slides)
}
