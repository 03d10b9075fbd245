package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/utils"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase"
)

// RouteHandler serves the best-zone recommendation.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Best godoc
// @Summary Recommend the best parking zone
// @Description Scores every zone with free spots by availability and access-point traffic and returns the winner, with an alternative when one exists.
// @Tags Route
// @Produce json
// @Param vehicle query string false "Vehicle type (car or moto)" default(car)
// @Success 200 {object} utils.SuccessResponse{data=domain.RecommendationResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/route/best [get]
func (h *RouteHandler) Best(c *fiber.Ctx) error {
	vehicle := domain.VehicleType(c.Query("vehicle", string(domain.VehicleCar)))

	result, err := h.routeUC.Recommend(c.Context(), vehicle)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
