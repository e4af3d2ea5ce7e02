package domain

import (
	"context"

	"github.com/google/uuid"
)

// Shop represents a retailer; its name is unique among live shops and it
// owns exactly one location.
type Shop struct {
	AuditFields

	Name       string    `json:"name" db:"name" validate:"required,min=1,max=255"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	Location   *Location `json:"location,omitempty" db:"-"`
}

// Location is the physical address of a shop.
type Location struct {
	AuditFields

	Link      string  `json:"link" db:"link"`
	Address   string  `json:"address" db:"address"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Latitude  float64 `json:"latitude" db:"latitude"`
}

// ShopRepository defines the interface for shop data access
type ShopRepository interface {
	// Create creates a shop together with its location; duplicate name
	// surfaces as ErrConflict
	Create(ctx context.Context, shop *Shop) error

	// GetByID retrieves a shop by ID (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*Shop, error)

	// FindByName retrieves the live shop holding a name
	FindByName(ctx context.Context, name string) (*Shop, error)

	// SearchByName retrieves live shops whose name contains the
	// case-sensitive substring
	SearchByName(ctx context.Context, name string) ([]*Shop, error)

	// Update updates an existing shop
	Update(ctx context.Context, shop *Shop) error

	// Delete soft-deletes a shop
	Delete(ctx context.Context, id uuid.UUID) error
}
