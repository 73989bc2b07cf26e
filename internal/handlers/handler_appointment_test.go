package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/handlers"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/platform/config"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/utils/scheduling"
)

// --- Mock AppointmentService ---
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) CreateAppointment(ctx context.Context, req dto.SaveAppointmentRequest) (*domain.Appointment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) ListAppointments(ctx context.Context, scheduleID string) ([]domain.Appointment, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) UpdateAppointment(ctx context.Context, appointmentID string, req dto.SaveAppointmentRequest) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

var _ portssvc.AppointmentSvcFacade = (*MockAppointmentService)(nil)

// --- Test Suite ---
type AppointmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAppointmentService
}

func (suite *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockAppointmentService)

	suite.router = gin.New()
	container := &portssvc.ServiceContainer{Appointment: suite.mockService}
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *AppointmentHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_Success() {
	appointment := &domain.Appointment{
		AppointmentID: "appt-1",
		ScheduleID:    "sched-1",
		WorkplaceID:   "wp-1",
		DayOfWeek:     1,
		StartTime:     domain.MustTimeOfDay("08:00"),
		EndTime:       domain.MustTimeOfDay("10:00"),
		HourType:      domain.HourTypeNormal,
		DurationHours: decimal.NewFromInt(2),
	}
	suite.mockService.On("CreateAppointment", mock.Anything, mock.AnythingOfType("dto.SaveAppointmentRequest")).
		Return(appointment, nil).Once()

	w := suite.postJSON("/compromissos", dto.SaveAppointmentRequest{
		AgendaID:   "sched-1",
		LocalID:    "wp-1",
		DiaSemana:  1,
		HoraInicio: "08:00",
		HoraFim:    "10:00",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AppointmentEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Sucesso)
	suite.Equal("appt-1", resp.Compromisso.IDCompromisso)
	suite.Equal("08:00", resp.Compromisso.HoraInicio)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_RuleViolationEnvelope() {
	capErr := &scheduling.DailyCapError{
		TotalHours: decimal.RequireFromString("8.5"),
		CapHours:   decimal.NewFromInt(8),
	}
	suite.mockService.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil, capErr).Once()

	w := suite.postJSON("/compromissos", dto.SaveAppointmentRequest{
		AgendaID:   "sched-1",
		LocalID:    "wp-1",
		DiaSemana:  1,
		HoraInicio: "08:00",
		HoraFim:    "18:00",
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Sucesso)
	suite.NotEmpty(resp.Mensagem)
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_BadTimeFormatRejectedByBinding() {
	w := suite.postJSON("/compromissos", map[string]any{
		"agenda_id":   "sched-1",
		"local_id":    "wp-1",
		"dia_semana":  1,
		"hora_inicio": "25:99",
		"hora_fim":    "10:00",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAppointment", mock.Anything, mock.Anything)
}

func (suite *AppointmentHandlerTestSuite) TestListAppointments_RequiresScheduleID() {
	req := httptest.NewRequest(http.MethodGet, "/compromissos", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListAppointments", mock.Anything, mock.Anything)
}

func (suite *AppointmentHandlerTestSuite) TestDeleteAppointment_Success() {
	suite.mockService.On("DeleteAppointment", mock.Anything, "appt-1").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/compromissos/appt-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Sucesso)
	suite.mockService.AssertExpectations(suite.T())
}

func TestAppointmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}
