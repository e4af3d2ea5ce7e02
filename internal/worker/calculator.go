package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wcoetsee/pricescout/internal/pkg/logger"
)

// BestPriceCalculator recalculates the cached best price for products
type BestPriceCalculator struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewBestPriceCalculator creates a new best-price calculator
func NewBestPriceCalculator(db *sqlx.DB, log *logger.Logger) *BestPriceCalculator {
	return &BestPriceCalculator{
		db:     db,
		logger: log,
	}
}

// Recalculate computes and persists the best price for a product in a single
// UPDATE. The best price is the minimum amount across the product's prices,
// where promotion prices only count while their window is still open.
// Products with no qualifying prices get a best price of 0.
func (c *BestPriceCalculator) Recalculate(ctx context.Context, productID uuid.UUID) error {
	now := time.Now()

	query := `
		UPDATE products
		SET best_price = COALESCE(
			(SELECT MIN(amount)
			 FROM prices
			 WHERE product_id = $1
			   AND is_deleted = FALSE
			   AND (kind <> 'promotion' OR end_date >= $2)),
			0
		),
		modified_at = $2
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := c.db.ExecContext(ctx, query, productID, now)
	if err != nil {
		return fmt.Errorf("failed to recalculate best price: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// Product was deleted between event and recalculation
		c.logger.WithFields(map[string]any{
			"product_id": productID.String(),
		}).Warn("Product not found during best-price recalculation, skipping")
		return nil
	}

	c.logger.WithFields(map[string]any{
		"product_id": productID.String(),
	}).Debug("Best price recalculated")

	return nil
}

// GetCurrentBestPrice reads the stored best price for a product
func (c *BestPriceCalculator) GetCurrentBestPrice(ctx context.Context, productID uuid.UUID) (float64, error) {
	var bestPrice float64

	query := `SELECT best_price FROM products WHERE id = $1 AND is_deleted = FALSE`

	err := c.db.GetContext(ctx, &bestPrice, query, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to get best price: %w", err)
	}

	return bestPrice, nil
}
