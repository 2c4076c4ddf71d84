// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package certificate

import (
	"context"
	"log/slog"
	"time"

	"github.com/demirhancelik/corporate-api/internal/platform/apperr"
	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

// Service implements certificate use cases for both document families.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a certificate Service.
func NewService(repo Repository, publicCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: publicCache, logger: logger}
}

// SaveInput is the complete certificate payload submitted by the admin form.
type SaveInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Number      string     `json:"number"`
	IssueDate   time.Time  `json:"issue_date"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Authority   string     `json:"authority"`
	ImageURL    string     `json:"image_url"`
	IsActive    bool       `json:"is_active"`
}

// ListCertificates returns all certificates of one kind with derived statuses.
func (service *Service) ListCertificates(ctx context.Context, kind Kind) ([]*Certificate, error) {
	if !kind.Valid() {
		return nil, apperr.ValidationError("Unknown certificate kind")
	}

	certificates, err := service.repo.ListCertificates(ctx, kind, false)
	if err != nil {
		return nil, err
	}
	decorateStatuses(certificates, time.Now())
	return certificates, nil
}

// GetCertificate returns one certificate with its derived status.
func (service *Service) GetCertificate(ctx context.Context, id string) (*Certificate, error) {
	certificate, err := service.repo.GetCertificateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	certificate.Status = certificate.StatusAt(time.Now())
	return certificate, nil
}

// CreateCertificate validates and persists a new document of the given kind.
func (service *Service) CreateCertificate(ctx context.Context, kind Kind, input SaveInput) (*Certificate, error) {
	if !kind.Valid() {
		return nil, apperr.ValidationError("Unknown certificate kind")
	}
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	certificate := buildCertificate(uuidv7.New(), kind, input)
	if err := service.repo.Create(ctx, certificate); err != nil {
		return nil, err
	}

	service.invalidatePublic(ctx, kind)
	certificate.Status = certificate.StatusAt(time.Now())
	return certificate, nil
}

// UpdateCertificate replaces a document. The kind is fixed at creation and
// never changes on update.
func (service *Service) UpdateCertificate(ctx context.Context, kind Kind, id string, input SaveInput) (*Certificate, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetCertificateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Kind != kind {
		return nil, apperr.NotFound("Certificate")
	}

	certificate := buildCertificate(id, existing.Kind, input)
	certificate.CreatedAt = existing.CreatedAt
	if err := service.repo.Update(ctx, certificate); err != nil {
		return nil, err
	}

	service.invalidatePublic(ctx, kind)
	certificate.Status = certificate.StatusAt(time.Now())
	return certificate, nil
}

// DeleteCertificate removes a document of the given kind.
func (service *Service) DeleteCertificate(ctx context.Context, kind Kind, id string) error {
	existing, err := service.repo.GetCertificateByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Kind != kind {
		return apperr.NotFound("Certificate")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.invalidatePublic(ctx, kind)
	return nil
}

// PublicCertificates returns the active documents of one kind for the
// public site, served from cache when possible.
func (service *Service) PublicCertificates(ctx context.Context, kind Kind) ([]*Certificate, error) {
	if !kind.Valid() {
		return nil, apperr.ValidationError("Unknown certificate kind")
	}

	cacheKey := publicCacheKey(kind)
	var cached []*Certificate
	if service.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	certificates, err := service.repo.ListCertificates(ctx, kind, true)
	if err != nil {
		return nil, err
	}
	decorateStatuses(certificates, time.Now())

	service.cache.Set(ctx, cacheKey, certificates, constants.PublicCacheTTL)
	return certificates, nil
}

func (service *Service) validateInput(input SaveInput) error {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("authority", input.Authority).
		Custom("issue_date", input.IssueDate.IsZero(), "Issue date is required")

	if input.ExpiryDate != nil {
		validator.Custom("expiry_date", input.ExpiryDate.Before(input.IssueDate),
			"Expiry date must not precede the issue date")
	}

	return validator.Err()
}

func (service *Service) invalidatePublic(ctx context.Context, kind Kind) {
	service.cache.Invalidate(ctx, publicCacheKey(kind))
}

func publicCacheKey(kind Kind) string {
	return constants.RedisPrefixPublicList + "certificates:" + string(kind)
}

func buildCertificate(id string, kind Kind, input SaveInput) *Certificate {
	return &Certificate{
		ID:          id,
		Kind:        kind,
		Title:       input.Title,
		Description: input.Description,
		Number:      input.Number,
		IssueDate:   input.IssueDate,
		ExpiryDate:  input.ExpiryDate,
		Authority:   input.Authority,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	}
}

func decorateStatuses(certificates []*Certificate, now time.Time) {
	for _, certificate := range certificates {
		certificate.Status = certificate.StatusAt(now)
	}
}
