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
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/utils/scheduling"
)

// appointmentHandler handles HTTP requests related to appointments.
type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

// newAppointmentHandler creates a new appointmentHandler.
func newAppointmentHandler(as portssvc.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{
		appointmentService: as,
	}
}

// registerAppointmentRoutes registers routes related to appointments.
func registerAppointmentRoutes(rg *gin.RouterGroup, appointmentService portssvc.AppointmentSvcFacade) {
	h := newAppointmentHandler(appointmentService)

	appointments := rg.Group("/compromissos")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.GET("/:id", h.getAppointmentByID)
		appointments.PUT("/:id", h.updateAppointment)
		appointments.DELETE("/:id", h.deleteAppointment)
	}
}

func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAppointment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados do compromisso inválidos: "+err.Error()))
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		h.respondAppointmentError(c, logger, err, "erro ao criar compromisso")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentEnvelope(appointment))
}

// listAppointments lists the appointments of the schedule given by the
// agenda_id query parameter.
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Query("agenda_id")
	if scheduleID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("parâmetro agenda_id é obrigatório"))
		return
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda não encontrada"))
		} else {
			logger.Error("Failed to list appointments", slog.String("error", err.Error()), slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao listar compromissos"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListAppointmentsResponse(appointments))
}

func (h *appointmentHandler) getAppointmentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")

	appointment, err := h.appointmentService.GetAppointmentByID(c.Request.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("compromisso não encontrado"))
		} else {
			logger.Error("Failed to get appointment", slog.String("error", err.Error()), slog.String("appointment_id", appointmentID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao buscar compromisso"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentEnvelope(appointment))
}

func (h *appointmentHandler) updateAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")

	var req dto.SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAppointment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados do compromisso inválidos: "+err.Error()))
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), appointmentID, req)
	if err != nil {
		h.respondAppointmentError(c, logger, err, "erro ao atualizar compromisso")
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentEnvelope(appointment))
}

// deleteAppointment removes an appointment. Deletion never runs the
// scheduling rules.
func (h *appointmentHandler) deleteAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), appointmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("compromisso não encontrado"))
		} else {
			logger.Error("Failed to delete appointment", slog.String("error", err.Error()), slog.String("appointment_id", appointmentID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao excluir compromisso"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Sucesso: true})
}

// respondAppointmentError maps service errors from create/update to the wire
// envelope. Scheduling rule violations carry their own user-facing message.
func (h *appointmentHandler) respondAppointmentError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case scheduling.IsRuleViolation(err):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("agenda ou compromisso não encontrado"))
	default:
		logger.Error("Appointment operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}
