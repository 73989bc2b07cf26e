// Package agendaapi is a typed client for the schedule manager's HTTP API,
// meant for frontends and sibling services that consume the wire contract.
package agendaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// Client is an HTTP client for the schedule manager API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a new API client.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListWorkplaces fetches all workplaces.
func (c *Client) ListWorkplaces(ctx context.Context) ([]dto.WorkplaceResponse, error) {
	var out dto.ListWorkplacesResponse
	if err := c.get(ctx, "/locais", nil, &out); err != nil {
		return nil, err
	}
	return out.Locais, nil
}

// ListAppointments fetches every appointment of a schedule.
func (c *Client) ListAppointments(ctx context.Context, scheduleID string) ([]dto.AppointmentResponse, error) {
	var out dto.ListAppointmentsResponse
	query := url.Values{"agenda_id": {scheduleID}}
	if err := c.get(ctx, "/compromissos", query, &out); err != nil {
		return nil, err
	}
	return out.Compromissos, nil
}

// ListSchedules fetches all schedules.
func (c *Client) ListSchedules(ctx context.Context) ([]dto.ScheduleResponse, error) {
	var out dto.ListSchedulesResponse
	if err := c.get(ctx, "/agendas", nil, &out); err != nil {
		return nil, err
	}
	return out.Agendas, nil
}

// CreateAppointment submits a new appointment; a scheduling rule rejection
// comes back as ErrRejected with the server's message.
func (c *Client) CreateAppointment(ctx context.Context, req dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentEnvelope
	if err := c.post(ctx, "/compromissos", req, &out); err != nil {
		return nil, err
	}
	return &out.Compromisso, nil
}

// UpdateAppointment replaces an existing appointment, subject to the same
// scheduling rules as creation.
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID string, req dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentEnvelope
	if err := c.put(ctx, "/compromissos/"+appointmentID, req, &out); err != nil {
		return nil, err
	}
	return &out.Compromisso, nil
}

// DeleteAppointment removes an appointment.
func (c *Client) DeleteAppointment(ctx context.Context, appointmentID string) error {
	var out dto.SuccessResponse
	return c.delete(ctx, "/compromissos/"+appointmentID, &out)
}

// WeeklyReport fetches the weekly hour/pay report of a schedule.
func (c *Client) WeeklyReport(ctx context.Context, scheduleID string) (*dto.ReportPayload, error) {
	return c.report(ctx, "/relatorios/semanal", scheduleID)
}

// MonthlyReport fetches the monthly hour/pay report of a schedule.
func (c *Client) MonthlyReport(ctx context.Context, scheduleID string) (*dto.ReportPayload, error) {
	return c.report(ctx, "/relatorios/mensal", scheduleID)
}

func (c *Client) report(ctx context.Context, path, scheduleID string) (*dto.ReportPayload, error) {
	var out dto.ReportResponse
	query := url.Values{"agenda_id": {scheduleID}}
	if err := c.get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out.Relatorio, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Fall through to decoding
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		var envelope dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Mensagem == "" {
			return fmt.Errorf("%w: request rejected", ErrRejected)
		}
		return fmt.Errorf("%w: %s", ErrRejected, envelope.Mensagem)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
