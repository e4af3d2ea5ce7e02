package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wcoetsee/pricescout/internal/delivery/http/request"
	"github.com/wcoetsee/pricescout/internal/delivery/http/response"
	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/usecase/price"
)

// PriceHandler handles HTTP requests for prices
type PriceHandler struct {
	service *price.Service
	logger  *logger.Logger
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(service *price.Service, log *logger.Logger) *PriceHandler {
	return &PriceHandler{
		service: service,
		logger:  log,
	}
}

// CreatePriceRequest represents the request body for creating a price
type CreatePriceRequest struct {
	Kind         domain.PriceKind `json:"kind" validate:"required"`
	Amount       float64          `json:"amount" validate:"gt=0"`
	URL          string           `json:"url"`
	ProductID    uuid.UUID        `json:"product_id"`
	ShopID       uuid.UUID        `json:"shop_id"`
	PriceDate    time.Time        `json:"price_date"`
	IsPack       bool             `json:"is_pack"`
	UnitsPerPack *int64           `json:"units_per_pack,omitempty"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	IsBulk       bool             `json:"is_bulk"`
	PerBulk      *int64           `json:"per_bulk,omitempty"`
	CreatedBy    uuid.UUID        `json:"created_by"`
}

// UpdatePriceRequest represents the request body for updating a price
type UpdatePriceRequest struct {
	Kind         domain.PriceKind `json:"kind" validate:"required"`
	Amount       float64          `json:"amount" validate:"gt=0"`
	URL          string           `json:"url"`
	ProductID    uuid.UUID        `json:"product_id"`
	ShopID       uuid.UUID        `json:"shop_id"`
	PriceDate    time.Time        `json:"price_date"`
	IsPack       bool             `json:"is_pack"`
	UnitsPerPack *int64           `json:"units_per_pack,omitempty"`
	ModifiedBy   uuid.UUID        `json:"modified_by"`
}

// Create handles POST /api/v1/prices
// @Summary Record a new price
// @Description Record a normal or promotion price for a product at a shop
// @Tags Prices
// @Accept json
// @Produce json
// @Param price body CreatePriceRequest true "Price details"
// @Success 201 {object} map[string]interface{} "Price created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Referenced product or shop not found"
// @Failure 409 {object} map[string]string "Price already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /prices [post]
func (h *PriceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePriceRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p := &domain.Price{
		Kind:         req.Kind,
		Amount:       req.Amount,
		URL:          req.URL,
		ProductID:    req.ProductID,
		ShopID:       req.ShopID,
		PriceDate:    req.PriceDate,
		IsPack:       req.IsPack,
		UnitsPerPack: req.UnitsPerPack,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsBulk:       req.IsBulk,
		PerBulk:      req.PerBulk,
	}
	p.CreatedBy = req.CreatedBy
	p.ModifiedBy = req.CreatedBy

	created, err := h.service.Add(r.Context(), p)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, created)
}

// GetByID handles GET /api/v1/prices/:id
// @Summary Get a price by ID
// @Description Get a price by ID; the kind query selects the variant
// @Tags Prices
// @Accept json
// @Produce json
// @Param id path string true "Price ID (UUID)"
// @Param kind query string true "Price kind (normal or promotion)"
// @Success 200 {object} map[string]interface{} "Price details"
// @Failure 400 {object} map[string]string "Invalid price ID or kind"
// @Failure 404 {object} map[string]string "Price not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /prices/{id} [get]
func (h *PriceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid price ID")
		return
	}

	kind := domain.PriceKind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		response.Error(w, http.StatusBadRequest, "Invalid price kind")
		return
	}

	p, err := h.service.Get(r.Context(), id, kind)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if p == nil {
		response.Error(w, http.StatusNotFound, "Price not found")
		return
	}

	response.Success(w, p)
}

// List handles GET /api/v1/prices
// @Summary List prices of one kind
// @Description List all prices of a kind; for promotions the active filter selects by end date
// @Tags Prices
// @Accept json
// @Produce json
// @Param kind query string true "Price kind (normal or promotion)"
// @Param active query bool false "Filter promotions on whether the window is still open"
// @Success 200 {object} map[string]interface{} "List of prices"
// @Failure 400 {object} map[string]string "Invalid price kind"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /prices [get]
func (h *PriceHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.PriceKind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		response.Error(w, http.StatusBadRequest, "Invalid price kind")
		return
	}

	active := request.GetBoolQuery(r, "active")

	prices, err := h.service.List(r.Context(), kind, active)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prices)
}

// ListByProduct handles GET /api/v1/products/:id/prices
// @Summary List prices for a product
// @Description List all prices, both kinds, recorded for a product
// @Tags Prices
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "List of prices"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/prices [get]
func (h *PriceHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	prices, err := h.service.ListByProduct(r.Context(), productID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prices)
}

// ListByShop handles GET /api/v1/shops/:id/prices
// @Summary List prices for a shop
// @Description List all prices, both kinds, recorded at a shop
// @Tags Prices
// @Accept json
// @Produce json
// @Param id path string true "Shop ID (UUID)"
// @Success 200 {object} map[string]interface{} "List of prices"
// @Failure 400 {object} map[string]string "Invalid shop ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops/{id}/prices [get]
func (h *PriceHandler) ListByShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shop ID")
		return
	}

	prices, err := h.service.ListByShop(r.Context(), shopID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prices)
}

// Update handles PUT /api/v1/prices/:id
// @Summary Update a price
// @Description Update the mutable fields of a price; the kind and promotion window never change
// @Tags Prices
// @Accept json
// @Produce json
// @Param id path string true "Price ID (UUID)"
// @Param price body UpdatePriceRequest true "Updated price details"
// @Success 200 {object} map[string]interface{} "Price updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Price not found"
// @Failure 409 {object} map[string]string "Price already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /prices/{id} [put]
func (h *PriceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid price ID")
		return
	}

	var req UpdatePriceRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p := &domain.Price{
		Kind:         req.Kind,
		Amount:       req.Amount,
		URL:          req.URL,
		ProductID:    req.ProductID,
		ShopID:       req.ShopID,
		PriceDate:    req.PriceDate,
		IsPack:       req.IsPack,
		UnitsPerPack: req.UnitsPerPack,
	}
	p.ID = id
	p.ModifiedBy = req.ModifiedBy

	updated, err := h.service.Update(r.Context(), p)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete handles DELETE /api/v1/prices/:id
// @Summary Delete a price
// @Description Soft delete a price; the kind query selects the variant
// @Tags Prices
// @Accept json
// @Produce json
// @Param id path string true "Price ID (UUID)"
// @Param kind query string true "Price kind (normal or promotion)"
// @Success 204 "Price deleted successfully"
// @Failure 400 {object} map[string]string "Invalid price ID or kind"
// @Failure 404 {object} map[string]string "Price not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /prices/{id} [delete]
func (h *PriceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid price ID")
		return
	}

	kind := domain.PriceKind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		response.Error(w, http.StatusBadRequest, "Invalid price kind")
		return
	}

	if err := h.service.Delete(r.Context(), id, kind); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *PriceHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "Price already exists for the product and shop")
	default:
		h.logger.Error("Internal error in price handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
