// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/demirhancelik/corporate-api/internal/platform/request"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// Handler implements project HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the authenticated /projects route group.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProjects)
	router.Post("/", handler.createProject)
	router.Get("/{id}", handler.getProject)
	router.Put("/{id}", handler.updateProject)
	router.Delete("/{id}", handler.deleteProject)

	return router
}

// PublicRoutes returns the unauthenticated /projects read group.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.publicProjects)

	return router
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	language := request.URL.Query().Get("lang")
	category := Category(request.URL.Query().Get("category"))

	projects, err := handler.service.ListProjects(request.Context(), language, category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	project, err := handler.service.GetProject(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, project)
}

func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	project, err := handler.service.CreateProject(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, project)
}

func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	project, err := handler.service.UpdateProject(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, project)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProject(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publicProjects(writer http.ResponseWriter, request *http.Request) {
	language := requestutil.Language(request)
	category := Category(request.URL.Query().Get("category"))

	projects, err := handler.service.PublicProjects(request.Context(), language, category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, projects)
}
