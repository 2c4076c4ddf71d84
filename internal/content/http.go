// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/demirhancelik/corporate-api/internal/platform/request"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// Handler implements content slot HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the authenticated /contents route group.
//
// # Endpoints
//   - GET    /       : List slots (filter: ?kind=&lang=).
//   - POST   /       : Create or replace a slot.
//   - GET    /{id}   : Fetch one slot (admin edit pre-fill).
//   - PUT    /{id}   : Replace a slot (same upsert semantics as POST).
//   - DELETE /{id}   : Remove a slot; public reads fall back to defaults.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSlots)
	router.Post("/", handler.saveSlot)
	router.Get("/{id}", handler.getSlot)
	router.Put("/{id}", handler.updateSlot)
	router.Delete("/{id}", handler.deleteSlot)

	return router
}

// PublicRoutes returns the unauthenticated content read group.
//
// # Endpoints
//   - GET /content/{key} : Defaulted layout document (?lang=tr|en).
//   - GET /contents      : Plain-text page slots for a language.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/content/{key}", handler.publicDocument)
	router.Get("/contents", handler.publicPages)

	return router
}

func (handler *Handler) listSlots(writer http.ResponseWriter, request *http.Request) {
	kind := SlotKind(request.URL.Query().Get("kind"))
	language := request.URL.Query().Get("lang")

	slots, err := handler.service.ListSlots(request.Context(), kind, language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slots)
}

func (handler *Handler) getSlot(writer http.ResponseWriter, request *http.Request) {
	slot, err := handler.service.GetSlot(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slot)
}

func (handler *Handler) saveSlot(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	slot, err := handler.service.SaveSlot(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, slot)
}

func (handler *Handler) updateSlot(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The URL id is authoritative for updates.
	input.ID = requestutil.ID(request, "id")

	slot, err := handler.service.SaveSlot(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slot)
}

func (handler *Handler) deleteSlot(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteSlot(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publicDocument(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")
	language := requestutil.Language(request)

	document, err := handler.service.PublicDocument(request.Context(), key, language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) publicPages(writer http.ResponseWriter, request *http.Request) {
	slots, err := handler.service.PublicPages(request.Context(), requestutil.Language(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slots)
}
