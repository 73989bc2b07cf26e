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

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// registerWorkplaceRoutes registers routes related to workplaces.
func registerWorkplaceRoutes(rg *gin.RouterGroup, workplaceService portssvc.WorkplaceSvcFacade) {
	h := newWorkplaceHandler(workplaceService)

	workplaces := rg.Group("/locais")
	{
		workplaces.POST("", h.createWorkplace)
		workplaces.GET("", h.listWorkplaces)
		workplaces.GET("/:id", h.getWorkplaceByID)
		workplaces.PUT("/:id", h.updateWorkplace)
		workplaces.DELETE("/:id", h.deleteWorkplace)
	}
}

func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados do local inválidos: "+err.Error()))
		return
	}

	workplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating workplace", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to create workplace in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao criar local de trabalho"))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkplaceEnvelope(workplace))
}

func (h *workplaceHandler) listWorkplaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	workplaces, err := h.workplaceService.ListWorkplaces(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list workplaces", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao listar locais de trabalho"))
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkplacesResponse(workplaces))
}

func (h *workplaceHandler) getWorkplaceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("id")

	workplace, err := h.workplaceService.GetWorkplaceByID(c.Request.Context(), workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("local de trabalho não encontrado"))
		} else {
			logger.Error("Failed to get workplace", slog.String("error", err.Error()), slog.String("workplace_id", workplaceID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao buscar local de trabalho"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkplaceEnvelope(workplace))
}

func (h *workplaceHandler) updateWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("id")

	var req dto.SaveWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados do local inválidos: "+err.Error()))
		return
	}

	workplace, err := h.workplaceService.UpdateWorkplace(c.Request.Context(), workplaceID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("local de trabalho não encontrado"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating workplace", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		default:
			logger.Error("Failed to update workplace", slog.String("error", err.Error()), slog.String("workplace_id", workplaceID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao atualizar local de trabalho"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkplaceEnvelope(workplace))
}

func (h *workplaceHandler) deleteWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("id")

	if err := h.workplaceService.DeleteWorkplace(c.Request.Context(), workplaceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("local de trabalho não encontrado"))
		} else {
			logger.Error("Failed to delete workplace", slog.String("error", err.Error()), slog.String("workplace_id", workplaceID))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("erro ao excluir local de trabalho"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Sucesso: true})
}
