package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/usecase/price"
)

// MockPriceRepository is a mock implementation of domain.PriceRepository
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) Create(ctx context.Context, p *domain.Price) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPriceRepository) GetByID(ctx context.Context, id uuid.UUID, kind domain.PriceKind) (*domain.Price, error) {
	args := m.Called(ctx, id, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *MockPriceRepository) List(ctx context.Context, kind domain.PriceKind, active *bool) ([]*domain.Price, error) {
	args := m.Called(ctx, kind, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Price), args.Error(1)
}

func (m *MockPriceRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*domain.Price, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Price), args.Error(1)
}

func (m *MockPriceRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Price, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Price), args.Error(1)
}

func (m *MockPriceRepository) FindByUniqueKey(ctx context.Context, kind domain.PriceKind, productID, shopID uuid.UUID, isPack, isBulk bool) (*domain.Price, error) {
	args := m.Called(ctx, kind, productID, shopID, isPack, isBulk)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *MockPriceRepository) Update(ctx context.Context, p *domain.Price) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPriceRepository) Delete(ctx context.Context, id uuid.UUID, kind domain.PriceKind) error {
	args := m.Called(ctx, id, kind)
	return args.Error(0)
}

// MockShopRepository is a mock implementation of domain.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByName(ctx context.Context, name string) (*domain.Shop, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) SearchByName(ctx context.Context, name string) ([]*domain.Shop, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) Update(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceCache is a mock implementation of price.PriceCache
type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) GetProductPrices(ctx context.Context, productID uuid.UUID) ([]*domain.Price, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Price), args.Error(1)
}

func (m *MockPriceCache) SetProductPrices(ctx context.Context, productID uuid.UUID, prices []*domain.Price) error {
	args := m.Called(ctx, productID, prices)
	return args.Error(0)
}

func (m *MockPriceCache) GetShopPrices(ctx context.Context, shopID uuid.UUID) ([]*domain.Price, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Price), args.Error(1)
}

func (m *MockPriceCache) SetShopPrices(ctx context.Context, shopID uuid.UUID, prices []*domain.Price) error {
	args := m.Called(ctx, shopID, prices)
	return args.Error(0)
}

func (m *MockPriceCache) InvalidatePrices(ctx context.Context, productID, shopID uuid.UUID) error {
	args := m.Called(ctx, productID, shopID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of price.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

type priceHandlerMocks struct {
	priceRepo   *MockPriceRepository
	productRepo *MockProductRepository
	shopRepo    *MockShopRepository
	cache       *MockPriceCache
	publisher   *MockEventPublisher
}

func setupPriceHandler() (*PriceHandler, *priceHandlerMocks) {
	m := &priceHandlerMocks{
		priceRepo:   new(MockPriceRepository),
		productRepo: new(MockProductRepository),
		shopRepo:    new(MockShopRepository),
		cache:       new(MockPriceCache),
		publisher:   new(MockEventPublisher),
	}
	log := logger.New("test")
	service := price.NewService(m.priceRepo, m.productRepo, m.shopRepo, m.cache, m.publisher, log)
	return NewPriceHandler(service, log), m
}

func TestPriceHandler_Create_Success(t *testing.T) {
	handler, m := setupPriceHandler()

	productID := uuid.New()
	shopID := uuid.New()

	requestBody := CreatePriceRequest{
		Kind:      domain.PriceKindNormal,
		Amount:    24.99,
		ProductID: productID,
		ShopID:    shopID,
		PriceDate: time.Now(),
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	m.productRepo.On("ExistsByID", mock.Anything, productID).Return(true, nil)
	m.shopRepo.On("GetByID", mock.Anything, shopID).Return(&domain.Shop{Name: "Checkers"}, nil)
	m.priceRepo.On("FindByUniqueKey", mock.Anything, domain.PriceKindNormal, productID, shopID, false, false).
		Return(nil, domain.ErrNotFound)
	m.priceRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Price) bool {
		return p.Kind == domain.PriceKindNormal && p.Amount == 24.99
	})).Return(nil)
	m.cache.On("InvalidatePrices", mock.Anything, productID, shopID).Return(nil)
	m.publisher.On("Publish", mock.Anything, "prices.events", mock.Anything).Return(nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	m.priceRepo.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response, "data")
}

func TestPriceHandler_Create_InvalidJSON(t *testing.T) {
	handler, _ := setupPriceHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPriceHandler_Create_ValidationError(t *testing.T) {
	handler, _ := setupPriceHandler()

	requestBody := CreatePriceRequest{
		Kind:   domain.PriceKindNormal,
		Amount: 0, // Invalid: amount must be positive
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPriceHandler_Create_Duplicate(t *testing.T) {
	handler, m := setupPriceHandler()

	productID := uuid.New()
	shopID := uuid.New()

	requestBody := CreatePriceRequest{
		Kind:      domain.PriceKindNormal,
		Amount:    24.99,
		ProductID: productID,
		ShopID:    shopID,
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	m.productRepo.On("ExistsByID", mock.Anything, productID).Return(true, nil)
	m.shopRepo.On("GetByID", mock.Anything, shopID).Return(&domain.Shop{Name: "Checkers"}, nil)
	m.priceRepo.On("FindByUniqueKey", mock.Anything, domain.PriceKindNormal, productID, shopID, false, false).
		Return(&domain.Price{Kind: domain.PriceKindNormal}, nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	m.priceRepo.AssertExpectations(t)
}

func TestPriceHandler_Create_MissingProduct(t *testing.T) {
	handler, m := setupPriceHandler()

	productID := uuid.New()

	requestBody := CreatePriceRequest{
		Kind:      domain.PriceKindNormal,
		Amount:    24.99,
		ProductID: productID,
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	m.productRepo.On("ExistsByID", mock.Anything, productID).Return(false, nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.productRepo.AssertExpectations(t)
}

func TestPriceHandler_GetByID_Success(t *testing.T) {
	handler, m := setupPriceHandler()

	priceID := uuid.New()
	expected := &domain.Price{Kind: domain.PriceKindNormal, Amount: 24.99}
	expected.ID = priceID

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/"+priceID.String()+"?kind=normal", nil)
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	m.priceRepo.On("GetByID", mock.Anything, priceID, domain.PriceKindNormal).Return(expected, nil)

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.priceRepo.AssertExpectations(t)
}

func TestPriceHandler_GetByID_InvalidKind(t *testing.T) {
	handler, _ := setupPriceHandler()

	priceID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/"+priceID.String()+"?kind=discount", nil)
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], "Invalid price kind")
}

func TestPriceHandler_GetByID_NotFound(t *testing.T) {
	handler, m := setupPriceHandler()

	priceID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/"+priceID.String()+"?kind=promotion", nil)
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	m.priceRepo.On("GetByID", mock.Anything, priceID, domain.PriceKindPromotion).Return(nil, domain.ErrNotFound)

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.priceRepo.AssertExpectations(t)
}

func TestPriceHandler_List_ActiveFilter(t *testing.T) {
	handler, m := setupPriceHandler()

	end := time.Now().Add(24 * time.Hour)
	promo := &domain.Price{Kind: domain.PriceKindPromotion, Amount: 19.99, EndDate: &end}
	promo.ID = uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices?kind=promotion&active=true", nil)
	w := httptest.NewRecorder()

	m.priceRepo.On("List", mock.Anything, domain.PriceKindPromotion, mock.MatchedBy(func(active *bool) bool {
		return active != nil && *active
	})).Return([]*domain.Price{promo}, nil)

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.priceRepo.AssertExpectations(t)
}

func TestPriceHandler_List_InvalidKind(t *testing.T) {
	handler, _ := setupPriceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices?kind=clearance", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPriceHandler_ListByProduct_Success(t *testing.T) {
	handler, m := setupPriceHandler()

	productID := uuid.New()
	prices := []*domain.Price{
		{Kind: domain.PriceKindNormal, Amount: 24.99, ProductID: productID},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String()+"/prices", nil)
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	m.cache.On("GetProductPrices", mock.Anything, productID).Return(prices, nil)

	handler.ListByProduct(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.cache.AssertExpectations(t)
}

func TestPriceHandler_Delete_Success(t *testing.T) {
	handler, m := setupPriceHandler()

	priceID := uuid.New()
	existing := &domain.Price{Kind: domain.PriceKindNormal, ProductID: uuid.New(), ShopID: uuid.New()}
	existing.ID = priceID

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/prices/"+priceID.String()+"?kind=normal", nil)
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	m.priceRepo.On("GetByID", mock.Anything, priceID, domain.PriceKindNormal).Return(existing, nil)
	m.priceRepo.On("Delete", mock.Anything, priceID, domain.PriceKindNormal).Return(nil)
	m.cache.On("InvalidatePrices", mock.Anything, existing.ProductID, existing.ShopID).Return(nil)
	m.publisher.On("Publish", mock.Anything, "prices.events", mock.Anything).Return(nil)

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	m.priceRepo.AssertExpectations(t)
}

func TestPriceHandler_Delete_InvalidKind(t *testing.T) {
	handler, _ := setupPriceHandler()

	priceID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/prices/"+priceID.String(), nil)
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPriceHandler_Delete_NotFound(t *testing.T) {
	handler, m := setupPriceHandler()

	priceID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/prices/"+priceID.String()+"?kind=normal", nil)
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	m.priceRepo.On("GetByID", mock.Anything, priceID, domain.PriceKindNormal).Return(nil, domain.ErrNotFound)

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.priceRepo.AssertExpectations(t)
}

func TestPriceHandler_Update_Success(t *testing.T) {
	handler, m := setupPriceHandler()

	priceID := uuid.New()
	productID := uuid.New()
	shopID := uuid.New()

	existing := &domain.Price{
		Kind:      domain.PriceKindNormal,
		Amount:    24.99,
		ProductID: productID,
		ShopID:    shopID,
	}
	existing.ID = priceID

	requestBody := UpdatePriceRequest{
		Kind:      domain.PriceKindNormal,
		Amount:    21.99,
		ProductID: productID,
		ShopID:    shopID,
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/prices/"+priceID.String(), bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", priceID.String())
	w := httptest.NewRecorder()

	m.priceRepo.On("GetByID", mock.Anything, priceID, domain.PriceKindNormal).Return(existing, nil)
	m.productRepo.On("ExistsByID", mock.Anything, productID).Return(true, nil)
	m.shopRepo.On("GetByID", mock.Anything, shopID).Return(&domain.Shop{Name: "Checkers"}, nil)
	m.priceRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Price) bool {
		return p.ID == priceID && p.Amount == 21.99
	})).Return(nil)
	m.cache.On("InvalidatePrices", mock.Anything, productID, shopID).Return(nil)
	m.publisher.On("Publish", mock.Anything, "prices.events", mock.Anything).Return(nil)

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.priceRepo.AssertExpectations(t)
}
