package timesheet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hgroves/togglcon/app/header"
	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/internal/logstore"
	"github.com/hgroves/togglcon/internal/service"
	"github.com/hgroves/togglcon/pkg/toggl"
)

type stubTimesheet struct {
	rows    []domain.Row
	err     error
	gotDate string
}

func (s *stubTimesheet) Create(ctx context.Context, fetcher service.EntryFetcher, req service.CreateTimesheetRequest) ([]domain.Row, error) {
	s.gotDate = req.Date
	return s.rows, s.err
}

type memStore struct {
	invocations []logstore.Invocation
	err         error
}

func (m *memStore) Record(ctx context.Context, inv logstore.Invocation) error {
	if m.err != nil {
		return m.err
	}
	m.invocations = append(m.invocations, inv)
	return nil
}

func (m *memStore) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(svc service.Timesheet, store logstore.Store) (chi.Router, *HandlerGroup) {
	hg := NewHandlerGroup(svc, store, discardLogger())
	r := chi.NewRouter()
	hg.Mount(r)
	return r, hg
}

const validBody = `{"api_key": "key", "email": "me@example.com", "workspace_id": 1234567, "date": "2024-03-15"}`

func postTimesheet(r chi.Router, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/timesheet", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateTimesheet(t *testing.T) {
	svc := &stubTimesheet{rows: []domain.Row{{
		Date:        "15/03/24",
		ChargeType:  "TYPE1",
		ProjectNo:   "PRO123-045",
		JobNo:       "WIP123-045",
		Description: "(Acme) Widget work",
		Hours:       "3.5",
	}}}
	store := &memStore{}
	r, _ := newTestRouter(svc, store)

	rec := postTimesheet(r, validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotDate != "15/03/24" {
		t.Errorf("expected ISO date transcoded to 15/03/24, got %q", svc.gotDate)
	}

	body := rec.Body.String()
	for _, want := range []string{`"Data":[`, `"Charge Type":"TYPE1"`, `"Project No":"PRO123-045"`, `"Hours":"3.5"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response body missing %s: %s", want, body)
		}
	}

	if len(store.invocations) != 1 {
		t.Fatalf("expected 1 recorded invocation, got %d", len(store.invocations))
	}
	inv := store.invocations[0]
	if inv.Email != "me@example.com" || inv.Date != "15/03/24" {
		t.Errorf("unexpected invocation record: %+v", inv)
	}
	if inv.ID == "" {
		t.Error("invocation must carry an ID")
	}
}

func TestCreateTimesheet_BindValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing api key", body: `{"email": "me@example.com", "workspace_id": 1, "date": "2024-03-15"}`},
		{name: "missing email", body: `{"api_key": "key", "workspace_id": 1, "date": "2024-03-15"}`},
		{name: "missing workspace", body: `{"api_key": "key", "email": "me@example.com", "date": "2024-03-15"}`},
		{name: "missing date", body: `{"api_key": "key", "email": "me@example.com", "workspace_id": 1}`},
		{name: "not json", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(&stubTimesheet{}, &memStore{})
			rec := postTimesheet(r, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestCreateTimesheet_InvalidDate(t *testing.T) {
	r, _ := newTestRouter(&stubTimesheet{}, &memStore{})

	rec := postTimesheet(r, `{"api_key": "key", "email": "me@example.com", "workspace_id": 1, "date": "15/03/24"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "date does not exist") {
		t.Errorf("expected the date failure message, got %q", rec.Body.String())
	}
}

func TestCreateTimesheet_AggregationFailure(t *testing.T) {
	svc := &stubTimesheet{err: &domain.Error{
		Kind:    domain.KindNoDayData,
		Message: "There is no timesheet data entered for this day.",
	}}
	store := &memStore{}
	r, _ := newTestRouter(svc, store)

	rec := postTimesheet(r, validBody)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "There is no timesheet data entered for this day." {
		t.Errorf("failure body must be the bare message, got %q", got)
	}
	if len(store.invocations) != 0 {
		t.Errorf("failed days must not be recorded, got %d invocations", len(store.invocations))
	}
}

func TestCreateTimesheet_InvalidCredentials(t *testing.T) {
	r, _ := newTestRouter(&stubTimesheet{err: toggl.ErrInvalidCredentials}, &memStore{})

	rec := postTimesheet(r, validBody)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreateTimesheet_UnexpectedFailure(t *testing.T) {
	r, _ := newTestRouter(&stubTimesheet{err: errors.New("connection reset")}, &memStore{})

	rec := postTimesheet(r, validBody)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Error("internal error details must not leak to the client")
	}
}

func TestCreateTimesheet_StoreFailureDoesNotFailRequest(t *testing.T) {
	svc := &stubTimesheet{rows: []domain.Row{{Date: "15/03/24", Hours: "1.0"}}}
	r, _ := newTestRouter(svc, &memStore{err: errors.New("disk full")})

	rec := postTimesheet(r, validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite store failure, got %d", rec.Code)
	}
}

func TestGetWorkspaces_RequiresCredentials(t *testing.T) {
	r, _ := newTestRouter(&stubTimesheet{}, &memStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credential headers, got %d", rec.Code)
	}
}

func TestGetWorkspaces(t *testing.T) {
	r, hg := newTestRouter(&stubTimesheet{}, &memStore{})
	hg.listWorkspaces = func(apiKey, email string) ([]toggl.Workspace, error) {
		if apiKey != "key" || email != "me@example.com" {
			t.Errorf("credentials not forwarded: %q %q", apiKey, email)
		}
		return []toggl.Workspace{{ID: 1234567, Name: "Engineering"}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces", nil)
	req.Header.Set(header.TogglAPIKey, "key")
	req.Header.Set(header.TogglEmail, "me@example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Engineering"`) {
		t.Errorf("response missing workspace name: %s", rec.Body.String())
	}
}
