package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wcoetsee/pricescout/internal/delivery/http/request"
	"github.com/wcoetsee/pricescout/internal/delivery/http/response"
	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	"github.com/wcoetsee/pricescout/internal/usecase/unit"
)

// UnitHandler handles HTTP requests for measurement units
type UnitHandler struct {
	service *unit.Service
	logger  *logger.Logger
}

// NewUnitHandler creates a new measurement unit handler
func NewUnitHandler(service *unit.Service, log *logger.Logger) *UnitHandler {
	return &UnitHandler{
		service: service,
		logger:  log,
	}
}

// CreateUnitRequest represents the request body for creating a measurement unit
type CreateUnitRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Abbreviation string    `json:"abbreviation" validate:"required,min=1,max=20"`
	CreatedBy    uuid.UUID `json:"created_by"`
}

// Create handles POST /api/v1/units
// @Summary Create a measurement unit
// @Description Register a unit of measure; name and abbreviation must be unique
// @Tags Units
// @Accept json
// @Produce json
// @Param unit body CreateUnitRequest true "Unit details"
// @Success 201 {object} map[string]interface{} "Unit created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Unit already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [post]
func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUnitRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := &domain.MeasurementUnit{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	}
	u.CreatedBy = req.CreatedBy
	u.ModifiedBy = req.CreatedBy

	created, err := h.service.Add(r.Context(), u)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, created)
}

// GetByID handles GET /api/v1/units/:id
// @Summary Get a measurement unit by ID
// @Tags Units
// @Accept json
// @Produce json
// @Param id path string true "Unit ID (UUID)"
// @Success 200 {object} map[string]interface{} "Unit details"
// @Failure 400 {object} map[string]string "Invalid unit ID"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units/{id} [get]
func (h *UnitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if u == nil {
		response.Error(w, http.StatusNotFound, "Unit not found")
		return
	}

	response.Success(w, u)
}

// List handles GET /api/v1/units
// @Summary List measurement units
// @Tags Units
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of units"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [get]
func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, units)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *UnitHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Unit not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "A unit with this name or abbreviation already exists")
	default:
		h.logger.Error("Internal error in unit handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
