package product

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

// BestPriceCache defines the cache operations the service needs
type BestPriceCache interface {
	GetBestPrice(ctx context.Context, productID uuid.UUID) (float64, error)
	SetBestPrice(ctx context.Context, productID uuid.UUID, amount float64) error
}

// Service handles product business logic and delegates searching to the
// ranking engine.
type Service struct {
	repo     domain.ProductRepository
	cache    BestPriceCache
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new product service
func NewService(repo domain.ProductRepository, cache BestPriceCache, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
		logger:   log,
	}
}

// Add validates and persists a new product
func (s *Service) Add(ctx context.Context, product *domain.Product) error {
	if err := s.validateProduct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return err
	}

	if product.ID != uuid.Nil {
		exists, err := s.repo.ExistsByID(ctx, product.ID)
		if err != nil {
			s.logger.Error("Failed to check product id", err)
			return err
		}
		if exists {
			return fmt.Errorf("%w: product with id %s already exists", domain.ErrConflict, product.ID)
		}
	}

	existing, err := s.repo.FindByNameAndVariant(ctx, product.Name, product.Variant)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("Failed to check product name and variant", err)
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: a variant of this product already exists", domain.ErrConflict)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"variant":    product.Variant,
	}).Info("Product created successfully")

	return nil
}

// Get retrieves a product by ID. A missing record yields (nil, nil).
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found: %s", id)
			return nil, nil
		}
		s.logger.Error("Failed to get product", err)
		return nil, err
	}

	return product, nil
}

// Search runs the keyword ranking engine over the live catalog. An empty
// or whitespace-only query returns the whole catalog, unranked.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog for search", err)
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return products, nil
	}

	return Rank(products, Tokenize(query)), nil
}

// BestPrice retrieves the denormalized best price for a product, cached
func (s *Service) BestPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	amount, err := s.cache.GetBestPrice(ctx, id)
	if err == nil {
		s.logger.Debugf("Cache hit for product %s best price", id)
		return amount, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get product for best price", err)
		}
		return 0, err
	}

	if err := s.cache.SetBestPrice(ctx, id, product.BestPrice); err != nil {
		s.logger.Warnf("Failed to cache best price for product %s: %v", id, err)
	}

	return product.BestPrice, nil
}

// Update validates and merges the mutable fields onto an existing product
func (s *Service) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.validateProduct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, product.ID)
		}
		s.logger.Error("Failed to get existing product", err)
		return nil, err
	}

	domain.MergeProduct(product, existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update product", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": existing.ID,
		"name":       existing.Name,
	}).Info("Product updated successfully")

	return existing, nil
}

// validateProduct checks the product business rules
func (s *Service) validateProduct(product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is required", domain.ErrInvalidInput)
	}

	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", domain.ErrInvalidInput)
	}

	if product.Quantity < 0 {
		return fmt.Errorf("%w: product quantity cannot be negative", domain.ErrInvalidInput)
	}

	if product.UnitOfMeasureID == uuid.Nil {
		return fmt.Errorf("%w: product unit of measure cannot be empty", domain.ErrInvalidInput)
	}

	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return nil
}
