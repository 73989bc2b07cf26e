package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	// Setup API routes, passing service interfaces
	registerWorkplaceRoutes(&r.RouterGroup, services.Workplace)
	registerScheduleRoutes(&r.RouterGroup, services.Schedule)
	registerAppointmentRoutes(&r.RouterGroup, services.Appointment)
	registerReportingRoutes(&r.RouterGroup, services.Reporting)
}

// registerCustomValidators installs the binding validators the request DTOs
// rely on.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// "hhmm": a wall-clock time string such as "07:30"
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
}
