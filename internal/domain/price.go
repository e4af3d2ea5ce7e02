package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PriceKind discriminates the two price shapes stored in one collection.
type PriceKind string

const (
	PriceKindNormal    PriceKind = "normal"
	PriceKindPromotion PriceKind = "promotion"
)

// Valid reports whether the kind is one of the known discriminator values.
func (k PriceKind) Valid() bool {
	return k == PriceKindNormal || k == PriceKindPromotion
}

// Price is a tagged variant: Kind selects between a normal price and a
// promotion price. The promotion-only fields (StartDate, EndDate, IsBulk,
// PerBulk) are nil/zero for normal prices.
type Price struct {
	AuditFields

	Kind      PriceKind `json:"kind" db:"kind"`
	Amount    float64   `json:"amount" db:"amount" validate:"gt=0"`
	URL       string    `json:"url" db:"url"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	ShopID    uuid.UUID `json:"shop_id" db:"shop_id"`
	PriceDate time.Time `json:"price_date" db:"price_date"`
	IsPack    bool      `json:"is_pack" db:"is_pack"`
	// UnitsPerPack is only meaningful when IsPack is set.
	UnitsPerPack *int64 `json:"units_per_pack,omitempty" db:"units_per_pack"`

	StartDate *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
	IsBulk    bool       `json:"is_bulk" db:"is_bulk"`
	PerBulk   *int64     `json:"per_bulk,omitempty" db:"per_bulk"`
}

// IsPromotion reports whether the record is the promotional variant.
func (p *Price) IsPromotion() bool {
	return p.Kind == PriceKindPromotion
}

// IsActive is the promotion policy: a normal price is always active, a
// promotion price is active while now has not passed its end date.
func (p *Price) IsActive(now time.Time) bool {
	if p.Kind != PriceKindPromotion {
		return true
	}
	if p.EndDate == nil {
		return false
	}
	return !now.After(*p.EndDate)
}

// PriceRepository defines the interface for price data access. Every read
// hides soft-deleted rows and is scoped to one variant kind where a kind
// argument is present.
type PriceRepository interface {
	// Create inserts a new price; a unique-key collision surfaces as ErrConflict
	Create(ctx context.Context, price *Price) error

	// GetByID retrieves a price by ID and kind (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID, kind PriceKind) (*Price, error)

	// List retrieves all prices of one kind; for the promotion kind a
	// non-nil active filters on the end date relative to now
	List(ctx context.Context, kind PriceKind, active *bool) ([]*Price, error)

	// ListByShop retrieves all prices, both kinds, for a shop
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*Price, error)

	// ListByProduct retrieves all prices, both kinds, for a product
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*Price, error)

	// FindByUniqueKey retrieves the live price occupying a uniqueness key;
	// isBulk only participates in the key for the promotion kind
	FindByUniqueKey(ctx context.Context, kind PriceKind, productID, shopID uuid.UUID, isPack, isBulk bool) (*Price, error)

	// Update overwrites the mutable fields of an existing price
	Update(ctx context.Context, price *Price) error

	// Delete soft-deletes a price
	Delete(ctx context.Context, id uuid.UUID, kind PriceKind) error
}
