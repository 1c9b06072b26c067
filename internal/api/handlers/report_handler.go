package handlers

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/api/presenters"
	"FoodWasteLogger/pkg/report"
	"github.com/gofiber/fiber/v2"
	"strings"
)

type (
	ReportHandler interface {
		GetReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

func (h *reportHandler) GetReport(c *fiber.Ctx) error {
	period, err := domain.ParseReportPeriod(strings.ToLower(c.Params("period")))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateReport, err)
	}

	res, err := h.reportService.GenerateReport(c.Context(), period)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateReport)
}
