// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"registration/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository owns the stored user list.
// Only records that passed validation are ever appended.
type UserRepository interface {
	Repository

	// Append stores u at the end of the list. A nil ID is replaced by a new
	// one and CreatedAt is set by the store. Appending an ID that is already
	// stored returns a conflict error.
	Append(ctx context.Context, u domain.User) (*domain.User, error)

	// Get returns the stored record with the given ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List returns every stored record in insertion order.
	List(ctx context.Context) ([]domain.User, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
