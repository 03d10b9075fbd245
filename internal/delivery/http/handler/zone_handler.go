package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/utils"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/validator"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase/dto"
)

// ZoneHandler serves parking-zone reads and occupancy mutations.
type ZoneHandler struct {
	zoneUC *usecase.ZoneUseCase
	logger *zap.Logger
}

func NewZoneHandler(zoneUC *usecase.ZoneUseCase, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: zoneUC,
		logger: logger,
	}
}

// List godoc
// @Summary List parking zones with metrics
// @Description Returns every active zone with per-vehicle occupancy metrics, status level and active reports, plus campus-wide totals.
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/zones [get]
func (h *ZoneHandler) List(c *fiber.Ctx) error {
	result, err := h.zoneUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Zones),
	})
}

// Get godoc
// @Summary Get one parking zone
// @Description Looks a zone up by id or slug and returns it with derived metrics.
// @Tags Zones
// @Produce json
// @Param id path string true "Zone id or slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneWithMetrics}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id} [get]
func (h *ZoneHandler) Get(c *fiber.Ctx) error {
	zone, err := h.zoneUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, zone, nil)
}

// SetOccupancy godoc
// @Summary Set zone occupancy counters
// @Description Sets absolute occupancy counters and/or the active flag. Counters must stay within [0, capacity].
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Zone id"
// @Param request body dto.SetOccupancyRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneWithMetrics}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id} [patch]
func (h *ZoneHandler) SetOccupancy(c *fiber.Ctx) error {
	var req dto.SetOccupancyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	zone, err := h.zoneUC.SetOccupancy(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, zone, nil)
}

// AdjustOccupancy godoc
// @Summary Adjust car occupancy by a delta
// @Description Applies a signed car-occupancy delta, clamped to [0, capacity]. Used by the geofence tracker on zone entry and exit.
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Zone id"
// @Param request body dto.AdjustOccupancyRequest true "Signed delta"
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneWithMetrics}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id}/occupancy/adjust [post]
func (h *ZoneHandler) AdjustOccupancy(c *fiber.Ctx) error {
	var req dto.AdjustOccupancyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	zone, err := h.zoneUC.AdjustCarOccupancy(c.Context(), c.Params("id"), req.Delta)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, zone, nil)
}
