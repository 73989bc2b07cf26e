package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/apperrors"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/middleware"
)

// scheduleHandler handles HTTP requests related to schedules.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

// newScheduleHandler creates a new scheduleHandler.
func newScheduleHandler(ss portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{
		scheduleService: ss,
	}
}

// registerScheduleRoutes registers routes related to schedules and their
// per-workplace rate overrides.
func registerScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newScheduleHandler(scheduleService)

	schedules := rg.Group("/agendas")
	{
		schedules.POST("", h.createSchedule)
		schedules.GET("", h.listSchedules)
		schedules.GET("/:id", h.getScheduleByID)
		schedules.PUT("/:id", h.updateSchedule)
		schedules.DELETE("/:id", h.deleteSchedule)
		schedules.PUT("/:id/locais/:localID", h.setWorkplaceRate)
		schedules.GET("/:id/locais", h.listWorkplaceRates)
	}
}

func (h *scheduleHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados da agenda inválidos: "+err.Error()))
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to create schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao criar agenda"))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleEnvelope(schedule))
}

func (h *scheduleHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schedules, err := h.scheduleService.ListSchedules(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list schedules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao listar agendas"))
		return
	}

	c.JSON(http.StatusOK, dto.ToListSchedulesResponse(schedules))
}

func (h *scheduleHandler) getScheduleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")

	schedule, err := h.scheduleService.GetScheduleByID(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda não encontrada"))
		} else {
			logger.Error("Failed to get schedule", slog.String("error", err.Error()), slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao buscar agenda"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleEnvelope(schedule))
}

func (h *scheduleHandler) updateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")

	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados da agenda inválidos: "+err.Error()))
		return
	}

	schedule, err := h.scheduleService.UpdateSchedule(c.Request.Context(), scheduleID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda não encontrada"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		default:
			logger.Error("Failed to update schedule", slog.String("error", err.Error()), slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao atualizar agenda"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleEnvelope(schedule))
}

func (h *scheduleHandler) deleteSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")

	if err := h.scheduleService.DeleteSchedule(c.Request.Context(), scheduleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda não encontrada"))
		} else {
			logger.Error("Failed to delete schedule", slog.String("error", err.Error()), slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao excluir agenda"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Sucesso: true})
}

func (h *scheduleHandler) setWorkplaceRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")
	workplaceID := c.Param("localID")

	var req dto.SetWorkplaceRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetWorkplaceRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("valor hora inválido: "+err.Error()))
		return
	}

	rate, err := h.scheduleService.SetWorkplaceRate(c.Request.Context(), scheduleID, workplaceID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda ou local de trabalho não encontrado"))
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		default:
			logger.Error("Failed to set workplace rate", slog.String("error", err.Error()),
				slog.String("schedule_id", scheduleID), slog.String("workplace_id", workplaceID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao definir valor hora"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "valor": dto.ToScheduleRateResponse(rate)})
}

func (h *scheduleHandler) listWorkplaceRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")

	rates, err := h.scheduleService.ListWorkplaceRates(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda não encontrada"))
		} else {
			logger.Error("Failed to list workplace rates", slog.String("error", err.Error()), slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao listar valores hora"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListScheduleRatesResponse(rates))
}
