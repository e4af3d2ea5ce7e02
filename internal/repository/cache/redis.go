package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wcoetsee/pricescout/internal/domain"
)

// PriceCache caches price listings per product and per shop, plus the
// denormalized best price per product. Every price write invalidates the
// affected keys; stale listings would show prices that no longer exist.
type PriceCache struct {
	client       *redis.Client
	priceListTTL time.Duration
	bestPriceTTL time.Duration
}

// NewPriceCache creates a new Redis price cache instance
func NewPriceCache(client *redis.Client, priceListTTL, bestPriceTTL time.Duration) *PriceCache {
	return &PriceCache{
		client:       client,
		priceListTTL: priceListTTL,
		bestPriceTTL: bestPriceTTL,
	}
}

func (c *PriceCache) productPricesKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s:prices", productID.String())
}

func (c *PriceCache) shopPricesKey(shopID uuid.UUID) string {
	return fmt.Sprintf("shop:%s:prices", shopID.String())
}

func (c *PriceCache) bestPriceKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s:best_price", productID.String())
}

// GetProductPrices retrieves the cached price listing for a product
func (c *PriceCache) GetProductPrices(ctx context.Context, productID uuid.UUID) ([]*domain.Price, error) {
	return c.getPrices(ctx, c.productPricesKey(productID))
}

// SetProductPrices stores the price listing for a product
func (c *PriceCache) SetProductPrices(ctx context.Context, productID uuid.UUID, prices []*domain.Price) error {
	return c.setPrices(ctx, c.productPricesKey(productID), prices)
}

// GetShopPrices retrieves the cached price listing for a shop
func (c *PriceCache) GetShopPrices(ctx context.Context, shopID uuid.UUID) ([]*domain.Price, error) {
	return c.getPrices(ctx, c.shopPricesKey(shopID))
}

// SetShopPrices stores the price listing for a shop
func (c *PriceCache) SetShopPrices(ctx context.Context, shopID uuid.UUID, prices []*domain.Price) error {
	return c.setPrices(ctx, c.shopPricesKey(shopID), prices)
}

// GetBestPrice retrieves the cached best price for a product
func (c *PriceCache) GetBestPrice(ctx context.Context, productID uuid.UUID) (float64, error) {
	val, err := c.client.Get(ctx, c.bestPriceKey(productID)).Float64()
	if err != nil {
		if err == redis.Nil {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return val, nil
}

// SetBestPrice stores the best price for a product
func (c *PriceCache) SetBestPrice(ctx context.Context, productID uuid.UUID, amount float64) error {
	return c.client.Set(ctx, c.bestPriceKey(productID), amount, c.bestPriceTTL).Err()
}

// InvalidatePrices removes every cache entry touched by a price write
func (c *PriceCache) InvalidatePrices(ctx context.Context, productID, shopID uuid.UUID) error {
	keys := make([]string, 0, 3)
	if productID != uuid.Nil {
		keys = append(keys, c.productPricesKey(productID), c.bestPriceKey(productID))
	}
	if shopID != uuid.Nil {
		keys = append(keys, c.shopPricesKey(shopID))
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Unlink(ctx, keys...).Err()
}

func (c *PriceCache) getPrices(ctx context.Context, key string) ([]*domain.Price, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var prices []*domain.Price
	if err := json.Unmarshal([]byte(val), &prices); err != nil {
		return nil, err
	}

	return prices, nil
}

func (c *PriceCache) setPrices(ctx context.Context, key string, prices []*domain.Price) error {
	data, err := json.Marshal(prices)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.priceListTTL).Err()
}
