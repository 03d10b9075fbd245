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

// ReportHandler serves crowdsourced condition reports.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// Submit godoc
// @Summary Submit a condition report
// @Description Creates a report against a zone. Submitters are limited to 3 reports per 10 minutes. Some report types adjust zone occupancy as a side effect.
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.SubmitReportRequest true "Report payload"
// @Success 201 {object} utils.SuccessResponse{data=domain.Report}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/v1/reports [post]
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.reportUC.Submit(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, report)
}

// ListActive godoc
// @Summary List active reports
// @Description Returns every report that is active and not yet expired, newest first.
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Report}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) ListActive(c *fiber.Ctx) error {
	reports, err := h.reportUC.ListActive(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reports, &utils.Meta{
		Total: len(reports),
	})
}

// Feed godoc
// @Summary Recent report feed
// @Description Returns the most recent reports regardless of expiry, for the activity feed.
// @Tags Reports
// @Produce json
// @Param limit query int false "Maximum number of reports" default(50)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Report}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reports/feed [get]
func (h *ReportHandler) Feed(c *fiber.Ctx) error {
	limit := usecase.NormalizeFeedLimit(c.QueryInt("limit", 0))

	reports, err := h.reportUC.Feed(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reports, &utils.Meta{
		Total: len(reports),
		Limit: limit,
	})
}

// Deactivate godoc
// @Summary Deactivate a report
// @Description Marks a report inactive before its natural expiry.
// @Tags Reports
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/reports/{id} [delete]
func (h *ReportHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.reportUC.Deactivate(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deactivated": true}, nil)
}
