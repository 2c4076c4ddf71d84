// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package machine

import (
	"context"
	"log/slog"

	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

// Service implements machine-park use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a machine Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SaveInput is the complete machine payload submitted by the admin form.
type SaveInput struct {
	Quantity    int    `json:"adet"`
	Description string `json:"description"`
	Model       string `json:"model"`
	Brand       string `json:"marka"`
	IsDomestic  bool   `json:"yerli"`
	IsImported  bool   `json:"ithal"`
	Capacity    string `json:"kapasite"`
}

// ListMachines returns the full machine park.
func (service *Service) ListMachines(ctx context.Context) ([]*Machine, error) {
	return service.repo.ListMachines(ctx)
}

// CreateMachine validates, normalizes the origin flags, and persists a new entry.
func (service *Service) CreateMachine(ctx context.Context, input SaveInput) (*Machine, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	machine := &Machine{
		ID:          uuidv7.New(),
		Quantity:    input.Quantity,
		Description: input.Description,
		Model:       input.Model,
		Brand:       input.Brand,
		Capacity:    input.Capacity,
	}
	// No previous state on create: with both flags asserted, imported wins.
	machine.IsDomestic, machine.IsImported = resolveOrigin(nil, input)

	if err := service.repo.Create(ctx, machine); err != nil {
		return nil, err
	}
	return machine, nil
}

// UpdateMachine replaces an entry, normalizing the origin flags against the
// previously stored state (last write wins otherwise).
func (service *Service) UpdateMachine(ctx context.Context, id string, input SaveInput) (*Machine, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	previous, err := service.repo.GetMachineByID(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := &Machine{
		ID:          id,
		Quantity:    input.Quantity,
		Description: input.Description,
		Model:       input.Model,
		Brand:       input.Brand,
		Capacity:    input.Capacity,
		CreatedAt:   previous.CreatedAt,
	}
	machine.IsDomestic, machine.IsImported = resolveOrigin(previous, input)

	if err := service.repo.Update(ctx, machine); err != nil {
		return nil, err
	}
	return machine, nil
}

// DeleteMachine removes an entry.
func (service *Service) DeleteMachine(ctx context.Context, id string) error {
	return service.repo.Delete(ctx, id)
}

func (service *Service) validateInput(input SaveInput) error {
	validator := &validate.Validator{}
	return validator.
		Required("model", input.Model).
		Required("marka", input.Brand).
		Custom("adet", input.Quantity < 1, "Quantity must be at least 1").
		Err()
}

// resolveOrigin enforces yerli/ithal mutual exclusivity.
//
// When a payload asserts both flags, the one that was NOT set on the
// previous state is the one the admin just toggled, so it wins and the
// other is cleared. Without previous state, imported wins.
func resolveOrigin(previous *Machine, input SaveInput) (isDomestic, isImported bool) {
	if !input.IsDomestic || !input.IsImported {
		return input.IsDomestic, input.IsImported
	}

	if previous != nil && previous.IsDomestic && !previous.IsImported {
		// yerli was already set, so ithal is the fresh assertion.
		return false, true
	}
	if previous != nil && previous.IsImported && !previous.IsDomestic {
		return true, false
	}

	return false, true
}
