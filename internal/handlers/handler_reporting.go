package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/apperrors"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/middleware"
)

// reportingHandler handles HTTP requests related to hour and pay reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/relatorios")
	{
		reports.GET("/semanal", h.weeklyReport)
		reports.GET("/mensal", h.monthlyReport)
	}
}

func (h *reportingHandler) weeklyReport(c *gin.Context) {
	h.report(c, h.reportingService.WeeklyReport)
}

func (h *reportingHandler) monthlyReport(c *gin.Context) {
	h.report(c, h.reportingService.MonthlyReport)
}

// report runs one of the reporting operations for the schedule given by the
// agenda_id query parameter and writes the report envelope.
func (h *reportingHandler) report(c *gin.Context, compute func(ctx context.Context, scheduleID string) (*domain.Report, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Query("agenda_id")
	if scheduleID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("parâmetro agenda_id é obrigatório"))
		return
	}

	report, err := compute(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda não encontrada"))
		} else {
			logger.Error("Failed to compute report", slog.String("error", err.Error()), slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao gerar relatório"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
