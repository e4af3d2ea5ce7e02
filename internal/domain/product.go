package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a catalog entry. BestPrice is denormalized and
// maintained asynchronously by the best-price worker.
type Product struct {
	AuditFields

	Name            string           `json:"name" db:"name" validate:"required,min=1,max=255"`
	Description     string           `json:"description" db:"description"`
	UnitOfMeasureID uuid.UUID        `json:"unit_of_measure_id" db:"unit_of_measure_id"`
	UnitOfMeasure   *MeasurementUnit `json:"unit_of_measure,omitempty" db:"-"`
	Quantity        float64          `json:"quantity" db:"quantity" validate:"gte=0"`
	Tags            pq.StringArray   `json:"tags" db:"tags"`
	Variant         string           `json:"variant" db:"variant"`
	BestPrice       float64          `json:"best_price" db:"best_price"`
}

// MeasurementUnit is a unit of measure; name and abbreviation are unique.
type MeasurementUnit struct {
	AuditFields

	Name         string `json:"name" db:"name" validate:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation" db:"abbreviation" validate:"required,min=1,max=20"`
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a new product; duplicate (name, variant) surfaces as ErrConflict
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by ID (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// ExistsByID reports whether a live product already uses the id
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindByNameAndVariant retrieves the live product holding a (name, variant) pair
	FindByNameAndVariant(ctx context.Context, name, variant string) (*Product, error)

	// List retrieves the full live catalog with measurement units attached
	List(ctx context.Context) ([]*Product, error)

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error
}

// MeasurementUnitRepository defines the interface for unit data access
type MeasurementUnitRepository interface {
	// Create creates a new unit; duplicate name or abbreviation surfaces as ErrConflict
	Create(ctx context.Context, unit *MeasurementUnit) error

	// GetByID retrieves a unit by ID (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*MeasurementUnit, error)

	// List retrieves all live units
	List(ctx context.Context) ([]*MeasurementUnit, error)
}
