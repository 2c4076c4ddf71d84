// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package machine

import "context"

// Repository defines the data access contract for machine-park entries.
type Repository interface {
	ListMachines(ctx context.Context) ([]*Machine, error)
	GetMachineByID(ctx context.Context, id string) (*Machine, error)
	Create(ctx context.Context, machine *Machine) error
	Update(ctx context.Context, machine *Machine) error
	Delete(ctx context.Context, id string) error
}
