package unit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/pkg/validator"
)

// Service implements measurement unit business logic
type Service struct {
	repo     domain.MeasurementUnitRepository
	validate *validatorv10.Validate
	logger   *logger.Logger
}

// NewService creates a new measurement unit service
func NewService(repo domain.MeasurementUnitRepository, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.Get(),
		logger:   log,
	}
}

// Get retrieves a unit by ID, returning nil when no live unit holds it
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.MeasurementUnit, error) {
	unit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return unit, nil
}

// List retrieves all live units
func (s *Service) List(ctx context.Context) ([]*domain.MeasurementUnit, error) {
	return s.repo.List(ctx)
}

// Add registers a new measurement unit
func (s *Service) Add(ctx context.Context, unit *domain.MeasurementUnit) (*domain.MeasurementUnit, error) {
	if unit == nil {
		return nil, fmt.Errorf("%w: unit is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(unit.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(unit.Abbreviation) == "" {
		return nil, fmt.Errorf("%w: abbreviation is required", domain.ErrInvalidInput)
	}
	if err := s.validate.Struct(unit); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, unit); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]any{
		"unit_id": unit.ID.String(),
		"name":    unit.Name,
	}).Info("Measurement unit created")

	return unit, nil
}
