package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func auditFixture() AuditFields {
	return AuditFields{
		ID:         uuid.New(),
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy:  uuid.New(),
		ModifiedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ModifiedBy: uuid.New(),
	}
}

func TestMergeProduct_CopiesMutableFieldsOnly(t *testing.T) {
	stored := &Product{
		AuditFields: auditFixture(),
		Name:        "Old name",
		Description: "Old description",
		Quantity:    1,
		Variant:     "400g",
	}
	wantAudit := stored.AuditFields

	unitID := uuid.New()
	incoming := &Product{
		AuditFields:     AuditFields{ID: uuid.New(), CreatedAt: time.Now()},
		Name:            "New name",
		Description:     "New description",
		UnitOfMeasureID: unitID,
		Quantity:        2.5,
		Tags:            pq.StringArray{"canned", "beans"},
		Variant:         "410g",
	}

	MergeProduct(incoming, stored)

	assert.Equal(t, "New name", stored.Name)
	assert.Equal(t, "New description", stored.Description)
	assert.Equal(t, unitID, stored.UnitOfMeasureID)
	assert.Equal(t, 2.5, stored.Quantity)
	assert.Equal(t, pq.StringArray{"canned", "beans"}, stored.Tags)
	assert.Equal(t, "410g", stored.Variant)

	// Identity and audit fields on the target are untouched
	assert.Equal(t, wantAudit, stored.AuditFields)
}

func TestMergeShop_CopiesMutableFieldsOnly(t *testing.T) {
	stored := &Shop{
		AuditFields: auditFixture(),
		Name:        "Old shop",
	}
	wantAudit := stored.AuditFields

	locationID := uuid.New()
	incoming := &Shop{
		AuditFields: AuditFields{ID: uuid.New()},
		Name:        "New shop",
		LocationID:  locationID,
	}

	MergeShop(incoming, stored)

	assert.Equal(t, "New shop", stored.Name)
	assert.Equal(t, locationID, stored.LocationID)
	assert.Equal(t, wantAudit, stored.AuditFields)
}

func TestMergePrice_CopiesMutableFieldsOnly(t *testing.T) {
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stored := &Price{
		AuditFields: auditFixture(),
		Kind:        PriceKindPromotion,
		Amount:      9.99,
		EndDate:     &end,
		IsBulk:      true,
	}
	wantAudit := stored.AuditFields

	units := int64(6)
	productID := uuid.New()
	shopID := uuid.New()
	priceDate := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	incoming := &Price{
		Kind:         PriceKindNormal,
		Amount:       12.49,
		URL:          "https://shop.example/item",
		ProductID:    productID,
		ShopID:       shopID,
		PriceDate:    priceDate,
		IsPack:       true,
		UnitsPerPack: &units,
	}

	MergePrice(incoming, stored)

	assert.Equal(t, 12.49, stored.Amount)
	assert.Equal(t, "https://shop.example/item", stored.URL)
	assert.Equal(t, productID, stored.ProductID)
	assert.Equal(t, shopID, stored.ShopID)
	assert.Equal(t, priceDate, stored.PriceDate)
	assert.True(t, stored.IsPack)
	assert.Equal(t, &units, stored.UnitsPerPack)

	// Variant kind and the promotion window never change on update
	assert.Equal(t, PriceKindPromotion, stored.Kind)
	assert.Equal(t, &end, stored.EndDate)
	assert.True(t, stored.IsBulk)
	assert.Equal(t, wantAudit, stored.AuditFields)
}
