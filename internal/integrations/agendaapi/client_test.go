package agendaapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/integrations/agendaapi"
)

func newTestClient(t *testing.T, handler http.Handler) (*agendaapi.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return agendaapi.NewClient(server.URL, 5*time.Second, nil), server
}

func TestClient_WeeklyReport(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/relatorios/semanal", r.URL.Path)
		assert.Equal(t, "sched-1", r.URL.Query().Get("agenda_id"))

		_ = json.NewEncoder(w).Encode(dto.ReportResponse{
			Sucesso: true,
			Relatorio: dto.ReportPayload{
				Locais: []dto.ReportWorkplaceResponse{
					{IDLocal: "clinic", Nome: "Clinic", BaseHoras: 4, AcrescimoHoras: 1, TotalHoras: 5, ValorHoraAplicado: 50, ValorTotal: 260},
				},
				TotalHoras: 5,
				TotalValor: 260,
			},
		})
	}))

	report, err := client.WeeklyReport(context.Background(), "sched-1")

	require.NoError(t, err)
	require.Len(t, report.Locais, 1)
	assert.Equal(t, "Clinic", report.Locais[0].Nome)
	assert.InDelta(t, 260.0, report.TotalValor, 0.001)
}

func TestClient_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(dto.NewErrorResponse("agenda não encontrada"))
	}))

	_, err := client.WeeklyReport(context.Background(), "ghost")

	assert.ErrorIs(t, err, agendaapi.ErrNotFound)
}

func TestClient_RejectionCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dto.NewErrorResponse("limite de 8 horas diárias excedido"))
	}))

	_, err := client.CreateAppointment(context.Background(), dto.SaveAppointmentRequest{
		AgendaID:   "sched-1",
		LocalID:    "wp-1",
		HoraInicio: "08:00",
		HoraFim:    "18:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, agendaapi.ErrRejected)
	assert.Contains(t, err.Error(), "limite de 8 horas")
}

func TestClient_InvalidResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := client.ListWorkplaces(context.Background())

	assert.ErrorIs(t, err, agendaapi.ErrInvalidResponse)
}

func TestReportLoader_DiscardsSupersededResponse(t *testing.T) {
	// The first request stalls until released; a second request for another
	// schedule starts meanwhile. The slow first response must be discarded.
	release := make(chan struct{})

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("agenda_id") == "slow" {
			<-release
		}
		_ = json.NewEncoder(w).Encode(dto.ReportResponse{
			Sucesso:   true,
			Relatorio: dto.ReportPayload{TotalHoras: 1},
		})
	}))

	loader := agendaapi.NewReportLoader(client)

	var wg sync.WaitGroup
	wg.Add(1)
	var slowErr error
	go func() {
		defer wg.Done()
		_, slowErr = loader.LoadWeekly(context.Background(), "slow")
	}()

	// Give the slow request time to be in flight before superseding it.
	time.Sleep(50 * time.Millisecond)
	fast, fastErr := loader.LoadWeekly(context.Background(), "fast")
	close(release)
	wg.Wait()

	require.NoError(t, fastErr)
	assert.NotNil(t, fast)
	assert.ErrorIs(t, slowErr, agendaapi.ErrStaleResponse)
}

func TestReportLoader_LatestRequestDelivers(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.ReportResponse{
			Sucesso:   true,
			Relatorio: dto.ReportPayload{TotalHoras: 2, TotalValor: 90},
		})
	}))

	loader := agendaapi.NewReportLoader(client)

	report, err := loader.LoadMonthly(context.Background(), "sched-1")

	require.NoError(t, err)
	assert.InDelta(t, 2.0, report.TotalHoras, 0.001)
	assert.InDelta(t, 90.0, report.TotalValor, 0.001)
}
