// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/demirhancelik/corporate-api/internal/platform/request"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// Handler implements gallery HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the authenticated /gallery route group.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Route("/categories", func(r chi.Router) {
		r.Get("/", handler.listCategories)
		r.Post("/", handler.createCategory)
		r.Put("/{id}", handler.updateCategory)
		r.Delete("/{id}", handler.deleteCategory)
	})

	router.Route("/images", func(r chi.Router) {
		r.Get("/", handler.listImages)
		r.Post("/", handler.createImage)
		r.Put("/{id}", handler.updateImage)
		r.Delete("/{id}", handler.deleteImage)
	})

	router.Post("/load-categories", handler.loadCategories)

	return router
}

// PublicRoutes returns the unauthenticated nested gallery listing.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.publicGallery)

	return router
}

// # Categories

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input CategoryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input CategoryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.UpdateCategory(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCategory(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) loadCategories(writer http.ResponseWriter, request *http.Request) {
	results := handler.service.LoadDefaultCategories(request.Context())
	respond.OK(writer, results)
}

// # Images

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	categoryID := request.URL.Query().Get("category_id")

	images, err := handler.service.ListImages(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, images)
}

func (handler *Handler) createImage(writer http.ResponseWriter, request *http.Request) {
	var input ImageInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.CreateImage(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, image)
}

func (handler *Handler) updateImage(writer http.ResponseWriter, request *http.Request) {
	var input ImageInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.UpdateImage(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteImage(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publicGallery(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.PublicGallery(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}
