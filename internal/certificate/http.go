// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package certificate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/demirhancelik/corporate-api/internal/platform/request"
	"github.com/demirhancelik/corporate-api/internal/platform/respond"
)

// Handler implements certificate HTTP endpoints. One Handler instance serves
// a single kind; the server mounts one per route family.
type Handler struct {
	service *Service
	kind    Kind
}

// NewHandler constructs a [Handler] bound to one certificate kind.
func NewHandler(service *Service, kind Kind) *Handler {
	return &Handler{service: service, kind: kind}
}

// AdminRoutes returns the authenticated route group for this handler's kind.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCertificates)
	router.Post("/", handler.createCertificate)
	router.Get("/{id}", handler.getCertificate)
	router.Put("/{id}", handler.updateCertificate)
	router.Delete("/{id}", handler.deleteCertificate)

	return router
}

// PublicRoutes returns the unauthenticated active-documents listing.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.publicCertificates)

	return router
}

func (handler *Handler) listCertificates(writer http.ResponseWriter, request *http.Request) {
	certificates, err := handler.service.ListCertificates(request.Context(), handler.kind)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, certificates)
}

func (handler *Handler) getCertificate(writer http.ResponseWriter, request *http.Request) {
	certificate, err := handler.service.GetCertificate(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, certificate)
}

func (handler *Handler) createCertificate(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	certificate, err := handler.service.CreateCertificate(request.Context(), handler.kind, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, certificate)
}

func (handler *Handler) updateCertificate(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	certificate, err := handler.service.UpdateCertificate(request.Context(), handler.kind, requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, certificate)
}

func (handler *Handler) deleteCertificate(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCertificate(request.Context(), handler.kind, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publicCertificates(writer http.ResponseWriter, request *http.Request) {
	certificates, err := handler.service.PublicCertificates(request.Context(), handler.kind)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, certificates)
}
