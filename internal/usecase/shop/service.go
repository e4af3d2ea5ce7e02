package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
)

// Service handles shop business logic
type Service struct {
	repo     domain.ShopRepository
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new shop service
func NewService(repo domain.ShopRepository, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		logger:   log,
	}
}

// Get retrieves a shop by ID. A missing record yields (nil, nil).
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Shop not found: %s", id)
			return nil, nil
		}
		s.logger.Error("Failed to get shop", err)
		return nil, err
	}

	return shop, nil
}

// SearchByName retrieves shops whose name contains the given substring
func (s *Service) SearchByName(ctx context.Context, name string) ([]*domain.Shop, error) {
	shops, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		s.logger.Error("Failed to search shops", err)
		return nil, err
	}

	return shops, nil
}

// Add validates and persists a new shop with its location
func (s *Service) Add(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if err := s.validateShop(shop); err != nil {
		s.logger.Error("Shop validation failed", err)
		return nil, err
	}

	existing, err := s.repo.FindByName(ctx, shop.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("Failed to check shop name", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a shop with the same name already exists", domain.ErrConflict)
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		s.logger.Error("Failed to create shop", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"shop_id": shop.ID,
		"name":    shop.Name,
	}).Info("Shop created successfully")

	return shop, nil
}

// Update validates and merges the mutable fields onto an existing shop
func (s *Service) Update(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	existing, err := s.repo.GetByID(ctx, shop.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: shop %s", domain.ErrNotFound, shop.ID)
		}
		s.logger.Error("Failed to get existing shop", err)
		return nil, err
	}

	if strings.TrimSpace(shop.Name) == "" {
		return nil, fmt.Errorf("%w: shop name cannot be empty", domain.ErrInvalidInput)
	}

	if existing.Name != shop.Name {
		conflicting, err := s.repo.FindByName(ctx, shop.Name)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to check shop name", err)
			return nil, err
		}
		if conflicting != nil {
			return nil, fmt.Errorf("%w: a shop with the same name already exists", domain.ErrConflict)
		}
	}

	domain.MergeShop(shop, existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update shop", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"shop_id": existing.ID,
		"name":    existing.Name,
	}).Info("Shop updated successfully")

	return existing, nil
}

// Delete soft-deletes a shop
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: shop %s", domain.ErrNotFound, id)
		}
		s.logger.Error("Failed to get shop for deletion", err)
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete shop", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"shop_id": id,
	}).Info("Shop deleted successfully")

	return nil
}

// validateShop checks the shop business rules
func (s *Service) validateShop(shop *domain.Shop) error {
	if shop == nil {
		return fmt.Errorf("%w: shop is required", domain.ErrInvalidInput)
	}

	if strings.TrimSpace(shop.Name) == "" {
		return fmt.Errorf("%w: shop name cannot be empty", domain.ErrInvalidInput)
	}

	if shop.Location == nil && shop.LocationID == uuid.Nil {
		return fmt.Errorf("%w: shop location is required", domain.ErrInvalidInput)
	}

	if err := s.validate.Struct(shop); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return nil
}
