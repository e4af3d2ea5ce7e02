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

const productColumns = `
	p.id, p.name, p.description, p.unit_of_measure_id, p.quantity, p.tags, p.variant, p.best_price,
	p.created_at, p.created_by, p.modified_at, p.modified_by, p.deleted_at, p.deleted_by, p.is_deleted
`

// productRow carries the joined measurement unit columns alongside the
// product for single-query catalog reads.
type productRow struct {
	domain.Product
	UnitName         *string `db:"unit_name"`
	UnitAbbreviation *string `db:"unit_abbreviation"`
}

func (row *productRow) toDomain() *domain.Product {
	product := row.Product
	if row.UnitName != nil {
		product.UnitOfMeasure = &domain.MeasurementUnit{
			AuditFields:  domain.AuditFields{ID: product.UnitOfMeasureID},
			Name:         *row.UnitName,
			Abbreviation: *row.UnitAbbreviation,
		}
	}
	return &product
}

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, description, unit_of_measure_id, quantity, tags, variant, created_at, created_by, modified_at, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	now := time.Now()
	product.CreatedAt = now
	product.ModifiedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.UnitOfMeasureID,
		product.Quantity,
		product.Tags,
		product.Variant,
		product.CreatedAt,
		product.CreatedBy,
		product.ModifiedAt,
		product.ModifiedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

// GetByID retrieves a product by ID with its measurement unit attached
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `, u.name AS unit_name, u.abbreviation AS unit_abbreviation
		FROM products p
		LEFT JOIN measurement_units u ON u.id = p.unit_of_measure_id AND u.is_deleted = FALSE
		WHERE p.id = $1 AND p.is_deleted = FALSE
	`

	var row productRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain(), nil
}

// ExistsByID reports whether a live product already uses the id
func (r *ProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND is_deleted = FALSE)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}

	return exists, nil
}

// FindByNameAndVariant retrieves the live product holding a (name, variant) pair
func (r *ProductRepository) FindByNameAndVariant(ctx context.Context, name, variant string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `, u.name AS unit_name, u.abbreviation AS unit_abbreviation
		FROM products p
		LEFT JOIN measurement_units u ON u.id = p.unit_of_measure_id AND u.is_deleted = FALSE
		WHERE p.name = $1 AND p.variant = $2 AND p.is_deleted = FALSE
	`

	var row productRow
	err := r.db.GetContext(ctx, &row, query, name, variant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain(), nil
}

// List retrieves the full live catalog with measurement units attached
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `, u.name AS unit_name, u.abbreviation AS unit_abbreviation
		FROM products p
		LEFT JOIN measurement_units u ON u.id = p.unit_of_measure_id AND u.is_deleted = FALSE
		WHERE p.is_deleted = FALSE
		ORDER BY p.created_at
	`

	var rows []*productRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}

	return products, nil
}

// Update updates an existing product
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, unit_of_measure_id = $3, quantity = $4,
			tags = $5, variant = $6, modified_at = $7, modified_by = $8
		WHERE id = $9 AND is_deleted = FALSE
	`

	product.ModifiedAt = time.Now()

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.UnitOfMeasureID,
		product.Quantity,
		product.Tags,
		product.Variant,
		product.ModifiedAt,
		product.ModifiedBy,
		product.ID,
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
