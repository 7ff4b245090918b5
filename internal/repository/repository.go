// Package repository persists teaching pipeline entities in PostgreSQL.
package repository

import (
	"context"

	"github.com/google/uuid"

	"teaching-server/internal/domain"
)

// TeachingRepository is the durable store for requests, explanations and
// scripts. Implementations receive their store handle explicitly; nothing in
// this package reads ambient global state.
type TeachingRepository interface {
	// CreateRequest inserts a new input request, assigning its ID and
	// timestamps.
	CreateRequest(ctx context.Context, req *domain.InputRequest) error
	// UpdateRequestStatus moves a request to the given status and bumps
	// updated_at.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	// GetRequest loads one request by ID.
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.InputRequest, error)
	// SaveGenerationResult inserts the explanation and script rows for a
	// request and marks the request completed, all inside one transaction.
	// Scene count and total duration are computed here from the scenes.
	SaveGenerationResult(ctx context.Context, req *domain.InputRequest, content *domain.GeneratedContent) (*domain.Explanation, *domain.TeachingScript, error)
}
