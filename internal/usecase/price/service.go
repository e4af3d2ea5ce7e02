package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// PriceCache defines the cache operations the service needs
type PriceCache interface {
	GetProductPrices(ctx context.Context, productID uuid.UUID) ([]*domain.Price, error)
	SetProductPrices(ctx context.Context, productID uuid.UUID, prices []*domain.Price) error
	GetShopPrices(ctx context.Context, shopID uuid.UUID) ([]*domain.Price, error)
	SetShopPrices(ctx context.Context, shopID uuid.UUID, prices []*domain.Price) error
	InvalidatePrices(ctx context.Context, productID, shopID uuid.UUID) error
}

// PriceEvent represents an event related to a price
type PriceEvent struct {
	EventType string        `json:"event_type"`
	Timestamp time.Time     `json:"timestamp"`
	ProductID uuid.UUID     `json:"product_id"`
	Price     *domain.Price `json:"price"`
}

// Service handles the price lifecycle for both variants, with caching and
// event publishing on every write.
type Service struct {
	repo      domain.PriceRepository
	products  domain.ProductRepository
	shops     domain.ShopRepository
	cache     PriceCache
	publisher EventPublisher
	logger    *logger.Logger
	mu        sync.RWMutex
}

// NewService creates a new price service
func NewService(
	repo domain.PriceRepository,
	products domain.ProductRepository,
	shops domain.ShopRepository,
	cache PriceCache,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		shops:     shops,
		cache:     cache,
		publisher: publisher,
		logger:    log,
	}
}

// Get retrieves a price by ID scoped to one variant kind. A missing or
// kind-mismatched record yields (nil, nil), not an error.
func (s *Service) Get(ctx context.Context, id uuid.UUID, kind domain.PriceKind) (*domain.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown price kind %q", domain.ErrInvalidInput, kind)
	}

	price, err := s.repo.GetByID(ctx, id, kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Price not found: %s (%s)", id, kind)
			return nil, nil
		}
		s.logger.Error("Failed to get price", err)
		return nil, err
	}

	return price, nil
}

// List retrieves all live prices of one kind. The active filter only has
// meaning for the promotion kind: true keeps promotions whose end date is
// in the future, false keeps promotions whose window has closed.
func (s *Service) List(ctx context.Context, kind domain.PriceKind, active *bool) ([]*domain.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown price kind %q", domain.ErrInvalidInput, kind)
	}

	prices, err := s.repo.List(ctx, kind, active)
	if err != nil {
		s.logger.Error("Failed to list prices", err)
		return nil, err
	}

	return prices, nil
}

// ListByShop retrieves all live prices for a shop, both kinds, with caching
func (s *Service) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*domain.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices, err := s.cache.GetShopPrices(ctx, shopID)
	if err == nil {
		s.logger.Debugf("Cache hit for shop %s prices", shopID)
		return prices, nil
	}

	s.logger.Debugf("Cache miss for shop %s prices", shopID)
	prices, err = s.repo.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("Failed to list prices by shop", err)
		return nil, err
	}

	if err := s.cache.SetShopPrices(ctx, shopID, prices); err != nil {
		s.logger.Warnf("Failed to cache prices for shop %s: %v", shopID, err)
	}

	return prices, nil
}

// ListByProduct retrieves all live prices for a product, both kinds, with caching
func (s *Service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices, err := s.cache.GetProductPrices(ctx, productID)
	if err == nil {
		s.logger.Debugf("Cache hit for product %s prices", productID)
		return prices, nil
	}

	s.logger.Debugf("Cache miss for product %s prices", productID)
	prices, err = s.repo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to list prices by product", err)
		return nil, err
	}

	if err := s.cache.SetProductPrices(ctx, productID, prices); err != nil {
		s.logger.Warnf("Failed to cache prices for product %s: %v", productID, err)
	}

	return prices, nil
}

// Add validates and persists a new price. The in-service uniqueness check
// is the fast path for a clear error message; the partial unique index in
// the store is the authoritative guard against concurrent writers.
func (s *Service) Add(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validatePrice(price); err != nil {
		s.logger.Error("Price validation failed", err)
		return nil, err
	}

	if err := s.checkReferences(ctx, price); err != nil {
		return nil, err
	}

	if price.Kind == domain.PriceKindPromotion {
		if price.EndDate == nil || !price.EndDate.After(time.Now()) {
			return nil, fmt.Errorf("%w: promotion end date must be in the future", domain.ErrInvalidInput)
		}
	}

	existing, err := s.repo.FindByUniqueKey(ctx, price.Kind, price.ProductID, price.ShopID, price.IsPack, price.IsBulk)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("Failed to check for existing price", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: price already exists for the product and shop", domain.ErrConflict)
	}

	if err := s.repo.Create(ctx, price); err != nil {
		s.logger.Error("Failed to create price", err)
		return nil, err
	}

	s.invalidateCache(ctx, price.ProductID, price.ShopID)
	s.publishEvent(ctx, "price.created", price)

	s.logger.WithFields(map[string]interface{}{
		"price_id":   price.ID,
		"kind":       price.Kind,
		"product_id": price.ProductID,
		"shop_id":    price.ShopID,
		"amount":     price.Amount,
	}).Info("Price created successfully")

	return price, nil
}

// Update validates and overwrites the mutable fields of an existing price.
// The variant kind never changes.
func (s *Service) Update(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validatePrice(price); err != nil {
		s.logger.Error("Price validation failed", err)
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, price.ID, price.Kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: price %s", domain.ErrNotFound, price.ID)
		}
		s.logger.Error("Failed to get existing price", err)
		return nil, err
	}

	if err := s.checkReferences(ctx, price); err != nil {
		return nil, err
	}

	// References may move on update; both the old and new listings go stale
	oldProductID, oldShopID := existing.ProductID, existing.ShopID

	domain.MergePrice(price, existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update price", err)
		return nil, err
	}

	s.invalidateCache(ctx, oldProductID, oldShopID)
	s.invalidateCache(ctx, existing.ProductID, existing.ShopID)
	s.publishEvent(ctx, "price.updated", existing)

	s.logger.WithFields(map[string]interface{}{
		"price_id":   existing.ID,
		"kind":       existing.Kind,
		"product_id": existing.ProductID,
		"amount":     existing.Amount,
	}).Info("Price updated successfully")

	return existing, nil
}

// Delete soft-deletes a price
func (s *Service) Delete(ctx context.Context, id uuid.UUID, kind domain.PriceKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	price, err := s.repo.GetByID(ctx, id, kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: price %s", domain.ErrNotFound, id)
		}
		s.logger.Error("Failed to get price for deletion", err)
		return err
	}

	if err := s.repo.Delete(ctx, id, kind); err != nil {
		s.logger.Error("Failed to delete price", err)
		return err
	}

	s.invalidateCache(ctx, price.ProductID, price.ShopID)
	s.publishEvent(ctx, "price.deleted", price)

	s.logger.WithFields(map[string]interface{}{
		"price_id":   id,
		"kind":       kind,
		"product_id": price.ProductID,
	}).Info("Price deleted successfully")

	return nil
}

// validatePrice applies the business rules in order; the first failure wins.
func (s *Service) validatePrice(price *domain.Price) error {
	if !price.Kind.Valid() {
		return fmt.Errorf("%w: unknown price kind %q", domain.ErrInvalidInput, price.Kind)
	}

	if price.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", domain.ErrInvalidInput)
	}

	if price.IsPack && (price.UnitsPerPack == nil || *price.UnitsPerPack <= 1) {
		return fmt.Errorf("%w: units per pack must be greater than 1 for a pack price", domain.ErrInvalidInput)
	}

	if !price.IsPack && price.UnitsPerPack != nil && *price.UnitsPerPack > 0 {
		return fmt.Errorf("%w: units per pack cannot be set when the price is not per pack", domain.ErrInvalidInput)
	}

	return nil
}

// checkReferences confirms the referenced product and shop exist. A zero
// id means no reference to check.
func (s *Service) checkReferences(ctx context.Context, price *domain.Price) error {
	if price.ProductID != uuid.Nil {
		exists, err := s.products.ExistsByID(ctx, price.ProductID)
		if err != nil {
			s.logger.Error("Failed to check product reference", err)
			return err
		}
		if !exists {
			return fmt.Errorf("%w: product %s", domain.ErrNotFound, price.ProductID)
		}
	}

	if price.ShopID != uuid.Nil {
		if _, err := s.shops.GetByID(ctx, price.ShopID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: shop %s", domain.ErrNotFound, price.ShopID)
			}
			s.logger.Error("Failed to check shop reference", err)
			return err
		}
	}

	return nil
}

func (s *Service) invalidateCache(ctx context.Context, productID, shopID uuid.UUID) {
	if err := s.cache.InvalidatePrices(ctx, productID, shopID); err != nil {
		s.logger.Warnf("Failed to invalidate price cache for product %s / shop %s: %v", productID, shopID, err)
	}
}

// publishEvent publishes a price event (non-blocking)
func (s *Service) publishEvent(ctx context.Context, eventType string, price *domain.Price) {
	event := PriceEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: price.ProductID,
		Price:     price,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for price %s", price.ID)
		return
	}

	// Publish in background to avoid blocking
	go func() {
		if err := s.publisher.Publish(context.Background(), "prices.events", data); err != nil {
			s.logger.Errorf(err, "Failed to publish event for price %s", price.ID)
		}
	}()
}
