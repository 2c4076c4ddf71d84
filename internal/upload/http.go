// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/demirhancelik/corporate-api/internal/platform/apperr"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// maxRequestBytes bounds the whole multipart request. The largest legal
// file is a 10 MiB PDF; the slack covers multipart framing and form fields.
const maxRequestBytes = constants.MaxDocumentUploadBytes + 1<<20

// Handler implements the upload HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the authenticated /upload route group.
//
// # Endpoints
//   - POST   /          : Multipart upload, returns the public URL and key.
//   - DELETE /?key=...  : Remove a previously uploaded object by its key.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.upload)
	router.Delete("/", handler.remove)

	return router
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxRequestBytes)

	// Memory threshold only; larger files spill to temp files.
	if err := request.ParseMultipartForm(8 << 20); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart request"))
		return
	}
	defer func() { _ = request.MultipartForm.RemoveAll() }()

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("A 'file' form field is required"))
		return
	}
	defer file.Close()

	kind := request.FormValue("kind")
	if kind == "" {
		kind = "misc"
	}

	result, err := handler.service.Save(request.Context(), kind, header.Filename, header.Size, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	// The key lives in the query string because object keys contain slashes.
	if err := handler.service.Delete(request.Context(), request.URL.Query().Get("key")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
