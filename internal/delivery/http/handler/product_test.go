package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/usecase/product"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, prod *domain.Product) error {
	args := m.Called(ctx, prod)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) FindByNameAndVariant(ctx context.Context, name, variant string) (*domain.Product, error) {
	args := m.Called(ctx, name, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, prod *domain.Product) error {
	args := m.Called(ctx, prod)
	return args.Error(0)
}

// MockBestPriceCache is a mock implementation of product.BestPriceCache
type MockBestPriceCache struct {
	mock.Mock
}

func (m *MockBestPriceCache) GetBestPrice(ctx context.Context, productID uuid.UUID) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBestPriceCache) SetBestPrice(ctx context.Context, productID uuid.UUID, amount float64) error {
	args := m.Called(ctx, productID, amount)
	return args.Error(0)
}

func setupProductHandler() (*ProductHandler, *MockProductRepository, *MockBestPriceCache) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockBestPriceCache)
	log := logger.New("test")
	service := product.NewService(mockRepo, mockCache, log)
	return NewProductHandler(service, log), mockRepo, mockCache
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProductHandler_Create_Success(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	requestBody := CreateProductRequest{
		Name:            "Baked Beans",
		UnitOfMeasureID: uuid.New(),
		Quantity:        410,
		Tags:            []string{"canned", "beans"},
		Variant:         "Koo",
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockRepo.On("FindByNameAndVariant", mock.Anything, "Baked Beans", "Koo").Return(nil, domain.ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "Baked Beans" && p.Variant == "Koo" && p.Quantity == 410
	})).Return(nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response, "data")
}

func TestProductHandler_Create_InvalidJSON(t *testing.T) {
	handler, _, _ := setupProductHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], "Invalid request body")
}

func TestProductHandler_Create_ValidationError(t *testing.T) {
	handler, _, _ := setupProductHandler()

	requestBody := CreateProductRequest{
		Name:            "", // Invalid: empty name
		UnitOfMeasureID: uuid.New(),
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_Create_Conflict(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	requestBody := CreateProductRequest{
		Name:            "Baked Beans",
		UnitOfMeasureID: uuid.New(),
		Variant:         "Koo",
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	existing := &domain.Product{Name: "Baked Beans", Variant: "Koo"}
	mockRepo.On("FindByNameAndVariant", mock.Anything, "Baked Beans", "Koo").Return(existing, nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_Create_RepositoryError(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	requestBody := CreateProductRequest{
		Name:            "Baked Beans",
		UnitOfMeasureID: uuid.New(),
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockRepo.On("FindByNameAndVariant", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("database error"))

	handler.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_GetByID_Success(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	productID := uuid.New()
	expectedProduct := &domain.Product{
		Name:            "Baked Beans",
		UnitOfMeasureID: uuid.New(),
		Quantity:        410,
	}
	expectedProduct.ID = productID

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String(), nil)
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	mockRepo.On("GetByID", mock.Anything, productID).Return(expectedProduct, nil)

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response, "data")
}

func TestProductHandler_GetByID_InvalidUUID(t *testing.T) {
	handler, _, _ := setupProductHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/invalid-uuid", nil)
	req = withURLParam(req, "id", "invalid-uuid")
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], "Invalid product ID")
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	productID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String(), nil)
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	mockRepo.On("GetByID", mock.Anything, productID).Return(nil, domain.ErrNotFound)

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_Search_Success(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	beans := &domain.Product{Name: "Baked Beans", Variant: "Koo", Quantity: 410}
	beans.ID = uuid.New()
	peas := &domain.Product{Name: "Garden Peas", Variant: "Koo", Quantity: 400}
	peas.ID = uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?q=beans", nil)
	w := httptest.NewRecorder()

	mockRepo.On("List", mock.Anything).Return([]*domain.Product{beans, peas}, nil)

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	results := response["data"].([]any)
	assert.Len(t, results, 1)
}

func TestProductHandler_Search_EmptyQueryReturnsCatalog(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	beans := &domain.Product{Name: "Baked Beans"}
	peas := &domain.Product{Name: "Garden Peas"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()

	mockRepo.On("List", mock.Anything).Return([]*domain.Product{beans, peas}, nil)

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	results := response["data"].([]any)
	assert.Len(t, results, 2)
}

func TestProductHandler_BestPrice_Success(t *testing.T) {
	handler, _, mockCache := setupProductHandler()

	productID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String()+"/best-price", nil)
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	mockCache.On("GetBestPrice", mock.Anything, productID).Return(12.99, nil)

	handler.BestPrice(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCache.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]any)
	assert.Equal(t, 12.99, data["best_price"])
}

func TestProductHandler_BestPrice_ProductNotFound(t *testing.T) {
	handler, mockRepo, mockCache := setupProductHandler()

	productID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String()+"/best-price", nil)
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	mockCache.On("GetBestPrice", mock.Anything, productID).Return(0.0, assert.AnError)
	mockRepo.On("GetByID", mock.Anything, productID).Return(nil, domain.ErrNotFound)

	handler.BestPrice(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_Update_Success(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	productID := uuid.New()
	unitID := uuid.New()

	existing := &domain.Product{
		Name:            "Baked Beans",
		UnitOfMeasureID: unitID,
		Quantity:        410,
	}
	existing.ID = productID

	requestBody := UpdateProductRequest{
		Name:            "Baked Beans in Tomato Sauce",
		UnitOfMeasureID: unitID,
		Quantity:        410,
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+productID.String(), bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	mockRepo.On("GetByID", mock.Anything, productID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == productID && p.Name == "Baked Beans in Tomato Sauce"
	})).Return(nil)

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_Update_InvalidUUID(t *testing.T) {
	handler, _, _ := setupProductHandler()

	requestBody := UpdateProductRequest{
		Name:            "Updated Name",
		UnitOfMeasureID: uuid.New(),
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/invalid-uuid", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "invalid-uuid")
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	handler, mockRepo, _ := setupProductHandler()

	productID := uuid.New()

	requestBody := UpdateProductRequest{
		Name:            "Updated Name",
		UnitOfMeasureID: uuid.New(),
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+productID.String(), bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", productID.String())
	w := httptest.NewRecorder()

	mockRepo.On("GetByID", mock.Anything, productID).Return(nil, domain.ErrNotFound)

	handler.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}
