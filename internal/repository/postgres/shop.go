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

const shopColumns = `
	s.id, s.name, s.location_id,
	s.created_at, s.created_by, s.modified_at, s.modified_by, s.deleted_at, s.deleted_by, s.is_deleted
`

// shopRow carries the joined location columns alongside the shop.
type shopRow struct {
	domain.Shop
	LocLink      *string  `db:"loc_link"`
	LocAddress   *string  `db:"loc_address"`
	LocLongitude *float64 `db:"loc_longitude"`
	LocLatitude  *float64 `db:"loc_latitude"`
}

func (row *shopRow) toDomain() *domain.Shop {
	shop := row.Shop
	if row.LocAddress != nil {
		shop.Location = &domain.Location{
			AuditFields: domain.AuditFields{ID: shop.LocationID},
			Link:        *row.LocLink,
			Address:     *row.LocAddress,
			Longitude:   *row.LocLongitude,
			Latitude:    *row.LocLatitude,
		}
	}
	return &shop
}

// ShopRepository implements domain.ShopRepository for PostgreSQL
type ShopRepository struct {
	db *sqlx.DB
}

// NewShopRepository creates a new PostgreSQL shop repository
func NewShopRepository(db *sqlx.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Create creates a shop together with its owned location in one transaction
func (r *ShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	if shop.Location != nil {
		if shop.Location.ID == uuid.Nil {
			shop.Location.ID = uuid.New()
		}
		shop.Location.CreatedAt = now
		shop.Location.ModifiedAt = now
		shop.LocationID = shop.Location.ID

		locationQuery := `
			INSERT INTO locations (id, link, address, longitude, latitude, created_at, created_by, modified_at, modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		_, err = tx.ExecContext(
			ctx,
			locationQuery,
			shop.Location.ID,
			shop.Location.Link,
			shop.Location.Address,
			shop.Location.Longitude,
			shop.Location.Latitude,
			shop.Location.CreatedAt,
			shop.Location.CreatedBy,
			shop.Location.ModifiedAt,
			shop.Location.ModifiedBy,
		)
		if err != nil {
			return err
		}
	}

	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	shop.CreatedAt = now
	shop.ModifiedAt = now

	shopQuery := `
		INSERT INTO shops (id, name, location_id, created_at, created_by, modified_at, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(
		ctx,
		shopQuery,
		shop.ID,
		shop.Name,
		shop.LocationID,
		shop.CreatedAt,
		shop.CreatedBy,
		shop.ModifiedAt,
		shop.ModifiedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	return tx.Commit()
}

// GetByID retrieves a shop by ID with its location attached
func (r *ShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	query := `
		SELECT ` + shopColumns + `,
			l.link AS loc_link, l.address AS loc_address, l.longitude AS loc_longitude, l.latitude AS loc_latitude
		FROM shops s
		LEFT JOIN locations l ON l.id = s.location_id AND l.is_deleted = FALSE
		WHERE s.id = $1 AND s.is_deleted = FALSE
	`

	var row shopRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain(), nil
}

// FindByName retrieves the live shop holding a name
func (r *ShopRepository) FindByName(ctx context.Context, name string) (*domain.Shop, error) {
	query := `
		SELECT ` + shopColumns + `,
			l.link AS loc_link, l.address AS loc_address, l.longitude AS loc_longitude, l.latitude AS loc_latitude
		FROM shops s
		LEFT JOIN locations l ON l.id = s.location_id AND l.is_deleted = FALSE
		WHERE s.name = $1 AND s.is_deleted = FALSE
	`

	var row shopRow
	err := r.db.GetContext(ctx, &row, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain(), nil
}

// SearchByName retrieves live shops whose name contains the case-sensitive substring
func (r *ShopRepository) SearchByName(ctx context.Context, name string) ([]*domain.Shop, error) {
	query := `
		SELECT ` + shopColumns + `,
			l.link AS loc_link, l.address AS loc_address, l.longitude AS loc_longitude, l.latitude AS loc_latitude
		FROM shops s
		LEFT JOIN locations l ON l.id = s.location_id AND l.is_deleted = FALSE
		WHERE s.name LIKE '%' || $1 || '%' AND s.is_deleted = FALSE
		ORDER BY s.name
	`

	var rows []*shopRow
	if err := r.db.SelectContext(ctx, &rows, query, name); err != nil {
		return nil, err
	}

	shops := make([]*domain.Shop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, row.toDomain())
	}

	return shops, nil
}

// Update updates an existing shop
func (r *ShopRepository) Update(ctx context.Context, shop *domain.Shop) error {
	query := `
		UPDATE shops
		SET name = $1, location_id = $2, modified_at = $3, modified_by = $4
		WHERE id = $5 AND is_deleted = FALSE
	`

	shop.ModifiedAt = time.Now()

	result, err := r.db.ExecContext(
		ctx,
		query,
		shop.Name,
		shop.LocationID,
		shop.ModifiedAt,
		shop.ModifiedBy,
		shop.ID,
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

// Delete soft-deletes a shop
func (r *ShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE shops
		SET is_deleted = TRUE, deleted_at = $1
		WHERE id = $2 AND is_deleted = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
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
