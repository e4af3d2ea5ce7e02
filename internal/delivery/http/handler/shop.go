package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wcoetsee/pricescout/internal/delivery/http/request"
	"github.com/wcoetsee/pricescout/internal/delivery/http/response"
	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/usecase/shop"
)

// ShopHandler handles HTTP requests for shops
type ShopHandler struct {
	service *shop.Service
	logger  *logger.Logger
}

// NewShopHandler creates a new shop handler
func NewShopHandler(service *shop.Service, log *logger.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  log,
	}
}

// LocationRequest represents a shop location in request bodies
type LocationRequest struct {
	Link      string  `json:"link"`
	Address   string  `json:"address"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// CreateShopRequest represents the request body for creating a shop
type CreateShopRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=255"`
	Location  *LocationRequest `json:"location"`
	CreatedBy uuid.UUID        `json:"created_by"`
}

// UpdateShopRequest represents the request body for updating a shop
type UpdateShopRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=255"`
	LocationID uuid.UUID `json:"location_id"`
	ModifiedBy uuid.UUID `json:"modified_by"`
}

// Create handles POST /api/v1/shops
// @Summary Create a new shop
// @Description Create a shop together with its location; the shop name must be unique
// @Tags Shops
// @Accept json
// @Produce json
// @Param shop body CreateShopRequest true "Shop details"
// @Success 201 {object} map[string]interface{} "Shop created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Shop already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops [post]
func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateShopRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s := &domain.Shop{
		Name: req.Name,
	}
	s.CreatedBy = req.CreatedBy
	s.ModifiedBy = req.CreatedBy

	if req.Location != nil {
		loc := &domain.Location{
			Link:      req.Location.Link,
			Address:   req.Location.Address,
			Longitude: req.Location.Longitude,
			Latitude:  req.Location.Latitude,
		}
		loc.CreatedBy = req.CreatedBy
		loc.ModifiedBy = req.CreatedBy
		s.Location = loc
	}

	created, err := h.service.Add(r.Context(), s)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, created)
}

// GetByID handles GET /api/v1/shops/:id
// @Summary Get a shop by ID
// @Description Get a shop with its location
// @Tags Shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID (UUID)"
// @Success 200 {object} map[string]interface{} "Shop details"
// @Failure 400 {object} map[string]string "Invalid shop ID"
// @Failure 404 {object} map[string]string "Shop not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops/{id} [get]
func (h *ShopHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shop ID")
		return
	}

	s, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if s == nil {
		response.Error(w, http.StatusNotFound, "Shop not found")
		return
	}

	response.Success(w, s)
}

// Search handles GET /api/v1/shops
// @Summary Search shops by name
// @Description List live shops whose name contains the given substring
// @Tags Shops
// @Accept json
// @Produce json
// @Param name query string false "Substring to match against shop names"
// @Success 200 {object} map[string]interface{} "Matching shops"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops [get]
func (h *ShopHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	shops, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, shops)
}

// Update handles PUT /api/v1/shops/:id
// @Summary Update a shop
// @Description Update shop details; a renamed shop must not collide with an existing one
// @Tags Shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID (UUID)"
// @Param shop body UpdateShopRequest true "Updated shop details"
// @Success 200 {object} map[string]interface{} "Shop updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Shop not found"
// @Failure 409 {object} map[string]string "Shop already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops/{id} [put]
func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shop ID")
		return
	}

	var req UpdateShopRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s := &domain.Shop{
		Name:       req.Name,
		LocationID: req.LocationID,
	}
	s.ID = id
	s.ModifiedBy = req.ModifiedBy

	updated, err := h.service.Update(r.Context(), s)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete handles DELETE /api/v1/shops/:id
// @Summary Delete a shop
// @Description Soft delete a shop
// @Tags Shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID (UUID)"
// @Success 204 "Shop deleted successfully"
// @Failure 400 {object} map[string]string "Invalid shop ID"
// @Failure 404 {object} map[string]string "Shop not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops/{id} [delete]
func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shop ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *ShopHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Shop not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "A shop with this name already exists")
	default:
		h.logger.Error("Internal error in shop handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
