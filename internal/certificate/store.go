// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package certificate

import "context"

// Repository defines the data access contract for certificates.
//
// Listings are always scoped to one kind; the two admin surfaces never mix.
type Repository interface {
	ListCertificates(ctx context.Context, kind Kind, activeOnly bool) ([]*Certificate, error)
	GetCertificateByID(ctx context.Context, id string) (*Certificate, error)
	Create(ctx context.Context, certificate *Certificate) error
	Update(ctx context.Context, certificate *Certificate) error
	Delete(ctx context.Context, id string) error
}
