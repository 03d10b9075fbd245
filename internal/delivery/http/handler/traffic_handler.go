package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/pkg/utils"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase"
)

// TrafficHandler serves traffic conditions for the campus access points.
type TrafficHandler struct {
	trafficUC *usecase.TrafficUseCase
	logger    *zap.Logger
}

func NewTrafficHandler(trafficUC *usecase.TrafficUseCase, logger *zap.Logger) *TrafficHandler {
	return &TrafficHandler{
		trafficUC: trafficUC,
		logger:    logger,
	}
}

// GetAll godoc
// @Summary Traffic conditions for all access points
// @Description Returns current traffic for every campus access point, served from cache when fresh.
// @Tags Traffic
// @Produce json
// @Param point query string false "Restrict to one access point id"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TrafficConditions}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/traffic [get]
func (h *TrafficHandler) GetAll(c *fiber.Ctx) error {
	if point := c.Query("point"); point != "" {
		conditions, err := h.trafficUC.GetTraffic(c.Context(), point, false)
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, conditions, nil)
	}

	conditions, err := h.trafficUC.GetAllTraffic(c.Context(), false)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, conditions, &utils.Meta{
		Total: len(conditions),
	})
}

// Refresh godoc
// @Summary Force a traffic refresh
// @Description Bypasses the cache and queries the traffic provider for every access point.
// @Tags Traffic
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TrafficConditions}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/traffic/refresh [post]
func (h *TrafficHandler) Refresh(c *fiber.Ctx) error {
	conditions, err := h.trafficUC.GetAllTraffic(c.Context(), true)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, conditions, &utils.Meta{
		Total: len(conditions),
	})
}
