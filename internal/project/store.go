// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package project

import "context"

// Repository defines the data access contract for projects.
//
// Create and Update replace the image set atomically with the project row;
// the admin form always submits the full object.
type Repository interface {
	ListProjects(ctx context.Context, language string, category Category) ([]*Project, error)
	GetProjectByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
}
