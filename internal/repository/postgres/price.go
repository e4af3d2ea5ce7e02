package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wcoetsee/pricescout/internal/domain"
)

const priceColumns = `
	id, kind, amount, url, product_id, shop_id, price_date, is_pack, units_per_pack,
	start_date, end_date, is_bulk, per_bulk,
	created_at, created_by, modified_at, modified_by, deleted_at, deleted_by, is_deleted
`

// PriceRepository implements domain.PriceRepository for PostgreSQL. Both
// price kinds live in the prices table, discriminated by the kind column;
// the partial unique indexes on the table are the authoritative uniqueness
// enforcement (a violation surfaces as domain.ErrConflict).
type PriceRepository struct {
	db *sqlx.DB
}

// NewPriceRepository creates a new PostgreSQL price repository
func NewPriceRepository(db *sqlx.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// Create inserts a new price
func (r *PriceRepository) Create(ctx context.Context, price *domain.Price) error {
	query := `
		INSERT INTO prices (
			id, kind, amount, url, product_id, shop_id, price_date, is_pack, units_per_pack,
			start_date, end_date, is_bulk, per_bulk, created_at, created_by, modified_at, modified_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	if price.ID == uuid.Nil {
		price.ID = uuid.New()
	}

	now := time.Now()
	price.CreatedAt = now
	price.ModifiedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		price.ID,
		price.Kind,
		price.Amount,
		price.URL,
		price.ProductID,
		price.ShopID,
		price.PriceDate,
		price.IsPack,
		price.UnitsPerPack,
		price.StartDate,
		price.EndDate,
		price.IsBulk,
		price.PerBulk,
		price.CreatedAt,
		price.CreatedBy,
		price.ModifiedAt,
		price.ModifiedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

// GetByID retrieves a price by ID scoped to one kind
func (r *PriceRepository) GetByID(ctx context.Context, id uuid.UUID, kind domain.PriceKind) (*domain.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE id = $1 AND kind = $2 AND is_deleted = FALSE
	`

	var price domain.Price
	err := r.db.GetContext(ctx, &price, query, id, kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &price, nil
}

// List retrieves all prices of one kind. For the promotion kind a non-nil
// active filters on the end date: true keeps windows still open in the
// future, false keeps windows already closed.
func (r *PriceRepository) List(ctx context.Context, kind domain.PriceKind, active *bool) ([]*domain.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE kind = $1 AND is_deleted = FALSE
	`

	if kind == domain.PriceKindPromotion && active != nil {
		if *active {
			query += ` AND end_date > NOW()`
		} else {
			query += ` AND end_date <= NOW()`
		}
	}

	query += ` ORDER BY created_at DESC`

	var prices []*domain.Price
	if err := r.db.SelectContext(ctx, &prices, query, kind); err != nil {
		return nil, err
	}

	return prices, nil
}

// ListByShop retrieves all live prices, both kinds, for a shop
func (r *PriceRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*domain.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE shop_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`

	var prices []*domain.Price
	if err := r.db.SelectContext(ctx, &prices, query, shopID); err != nil {
		return nil, err
	}

	return prices, nil
}

// ListByProduct retrieves all live prices, both kinds, for a product
func (r *PriceRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE product_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`

	var prices []*domain.Price
	if err := r.db.SelectContext(ctx, &prices, query, productID); err != nil {
		return nil, err
	}

	return prices, nil
}

// FindByUniqueKey retrieves the live price occupying a uniqueness key.
// The bulk flag only participates in the key for the promotion kind.
func (r *PriceRepository) FindByUniqueKey(ctx context.Context, kind domain.PriceKind, productID, shopID uuid.UUID, isPack, isBulk bool) (*domain.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE kind = $1 AND product_id = $2 AND shop_id = $3 AND is_pack = $4 AND is_deleted = FALSE
	`
	args := []interface{}{kind, productID, shopID, isPack}

	if kind == domain.PriceKindPromotion {
		query += ` AND is_bulk = $5`
		args = append(args, isBulk)
	}

	var price domain.Price
	err := r.db.GetContext(ctx, &price, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &price, nil
}

// Update overwrites the mutable fields of an existing price
func (r *PriceRepository) Update(ctx context.Context, price *domain.Price) error {
	query := `
		UPDATE prices
		SET amount = $1, url = $2, product_id = $3, shop_id = $4, price_date = $5,
			is_pack = $6, units_per_pack = $7, modified_at = $8, modified_by = $9
		WHERE id = $10 AND kind = $11 AND is_deleted = FALSE
	`

	price.ModifiedAt = time.Now()

	result, err := r.db.ExecContext(
		ctx,
		query,
		price.Amount,
		price.URL,
		price.ProductID,
		price.ShopID,
		price.PriceDate,
		price.IsPack,
		price.UnitsPerPack,
		price.ModifiedAt,
		price.ModifiedBy,
		price.ID,
		price.Kind,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete soft-deletes a price
func (r *PriceRepository) Delete(ctx context.Context, id uuid.UUID, kind domain.PriceKind) error {
	query := `
		UPDATE prices
		SET is_deleted = TRUE, deleted_at = $1
		WHERE id = $2 AND kind = $3 AND is_deleted = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id, kind)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
