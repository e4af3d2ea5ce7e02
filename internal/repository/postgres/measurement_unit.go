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

// MeasurementUnitRepository implements domain.MeasurementUnitRepository for PostgreSQL
type MeasurementUnitRepository struct {
	db *sqlx.DB
}

// NewMeasurementUnitRepository creates a new PostgreSQL measurement unit repository
func NewMeasurementUnitRepository(db *sqlx.DB) *MeasurementUnitRepository {
	return &MeasurementUnitRepository{db: db}
}

// Create creates a new measurement unit
func (r *MeasurementUnitRepository) Create(ctx context.Context, unit *domain.MeasurementUnit) error {
	query := `
		INSERT INTO measurement_units (id, name, abbreviation, created_at, created_by, modified_at, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}

	now := time.Now()
	unit.CreatedAt = now
	unit.ModifiedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		unit.ID,
		unit.Name,
		unit.Abbreviation,
		unit.CreatedAt,
		unit.CreatedBy,
		unit.ModifiedAt,
		unit.ModifiedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

// GetByID retrieves a measurement unit by ID
func (r *MeasurementUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MeasurementUnit, error) {
	query := `
		SELECT id, name, abbreviation, created_at, created_by, modified_at, modified_by, deleted_at, deleted_by, is_deleted
		FROM measurement_units
		WHERE id = $1 AND is_deleted = FALSE
	`

	var unit domain.MeasurementUnit
	err := r.db.GetContext(ctx, &unit, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &unit, nil
}

// List retrieves all live measurement units
func (r *MeasurementUnitRepository) List(ctx context.Context) ([]*domain.MeasurementUnit, error) {
	query := `
		SELECT id, name, abbreviation, created_at, created_by, modified_at, modified_by, deleted_at, deleted_by, is_deleted
		FROM measurement_units
		WHERE is_deleted = FALSE
		ORDER BY name
	`

	var units []*domain.MeasurementUnit
	if err := r.db.SelectContext(ctx, &units, query); err != nil {
		return nil, err
	}

	return units, nil
}
