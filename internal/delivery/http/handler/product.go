package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/wcoetsee/pricescout/internal/delivery/http/request"
	"github.com/wcoetsee/pricescout/internal/delivery/http/response"
	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/usecase/product"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *product.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	ID              *uuid.UUID `json:"id,omitempty"`
	Name            string     `json:"name" validate:"required,min=1,max=255"`
	Description     string     `json:"description"`
	UnitOfMeasureID uuid.UUID  `json:"unit_of_measure_id" validate:"required"`
	Quantity        float64    `json:"quantity" validate:"gte=0"`
	Tags            []string   `json:"tags"`
	Variant         string     `json:"variant"`
	CreatedBy       uuid.UUID  `json:"created_by"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name            string    `json:"name" validate:"required,min=1,max=255"`
	Description     string    `json:"description"`
	UnitOfMeasureID uuid.UUID `json:"unit_of_measure_id" validate:"required"`
	Quantity        float64   `json:"quantity" validate:"gte=0"`
	Tags            []string  `json:"tags"`
	Variant         string    `json:"variant"`
	ModifiedBy      uuid.UUID `json:"modified_by"`
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a new catalog product; the (name, variant) pair must be unique
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product details"
// @Success 201 {object} map[string]interface{} "Product created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Product already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prod := &domain.Product{
		Name:            req.Name,
		Description:     req.Description,
		UnitOfMeasureID: req.UnitOfMeasureID,
		Quantity:        req.Quantity,
		Tags:            pq.StringArray(req.Tags),
		Variant:         req.Variant,
	}
	if req.ID != nil {
		prod.ID = *req.ID
	}
	prod.CreatedBy = req.CreatedBy
	prod.ModifiedBy = req.CreatedBy

	if err := h.service.Add(r.Context(), prod); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, prod)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Description Get detailed information about a product including its measurement unit
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	prod, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if prod == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	response.Success(w, prod)
}

// Search handles GET /api/v1/products
// @Summary Search products by keywords
// @Description Rank products against whitespace-separated keywords; an empty query returns the full catalog
// @Tags Products
// @Accept json
// @Produce json
// @Param q query string false "Whitespace-separated keywords"
// @Success 200 {object} map[string]interface{} "Matching products, best first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, products)
}

// BestPrice handles GET /api/v1/products/:id/best-price
// @Summary Get the best price for a product
// @Description Get the lowest currently valid price across all shops
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "Best price"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/best-price [get]
func (h *ProductHandler) BestPrice(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	bestPrice, err := h.service.BestPrice(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"product_id": id,
		"best_price": bestPrice,
	})
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a product
// @Description Update product details (name, description, quantity, tags, variant, unit)
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body UpdateProductRequest true "Updated product details"
// @Success 200 {object} map[string]interface{} "Product updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prod := &domain.Product{
		Name:            req.Name,
		Description:     req.Description,
		UnitOfMeasureID: req.UnitOfMeasureID,
		Quantity:        req.Quantity,
		Tags:            pq.StringArray(req.Tags),
		Variant:         req.Variant,
	}
	prod.ID = id
	prod.ModifiedBy = req.ModifiedBy

	updated, err := h.service.Update(r.Context(), prod)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, updated)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "Product already exists")
	default:
		h.logger.Error("Internal error in product handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
