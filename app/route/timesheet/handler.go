package timesheet

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/hgroves/togglcon/app/auth"
	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/internal/logstore"
	"github.com/hgroves/togglcon/internal/service"
	"github.com/hgroves/togglcon/pkg/toggl"
)

type HandlerGroup struct {
	svc   service.Timesheet
	store logstore.Store
	slog  *slog.Logger

	// Seam for tests; the default builds a real Toggl client.
	listWorkspaces func(apiKey, email string) ([]toggl.Workspace, error)
}

func NewHandlerGroup(svc service.Timesheet, store logstore.Store, slog *slog.Logger) *HandlerGroup {
	return &HandlerGroup{
		svc:   svc,
		store: store,
		slog:  slog,

		listWorkspaces: func(apiKey, email string) ([]toggl.Workspace, error) {
			return toggl.New(apiKey, email, 0).Workspaces()
		},
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Post("/api/timesheet", hg.handleCreateTimesheet)
	r.Get("/api/workspaces", auth.RequireTogglCredentials(hg.handleGetWorkspaces))
}

type CreateTimesheetRequest struct {
	APIKey      string `json:"api_key"`
	Email       string `json:"email"`
	WorkspaceID int    `json:"workspace_id"`
	Date        string `json:"date"`
}

// CreateTimesheetRequest satisfies [render.Binder]
func (ctr *CreateTimesheetRequest) Bind(r *http.Request) error {
	if ctr.APIKey == "" {
		return errors.New("The Toggl API key is required.")
	}
	if ctr.Email == "" {
		return errors.New("The account email is required.")
	}
	if ctr.WorkspaceID <= 0 {
		return errors.New("The workspace ID is required.")
	}
	if ctr.Date == "" {
		return errors.New("The date is required.")
	}
	return nil
}

type createTimesheetResponse struct {
	Data []domain.Row `json:"Data"`
}

func (hg *HandlerGroup) handleCreateTimesheet(w http.ResponseWriter, r *http.Request) {
	req := &CreateTimesheetRequest{}
	if err := render.Bind(r, req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	date, err := domain.FromISO(req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	client := toggl.New(req.APIKey, req.Email, req.WorkspaceID)

	rows, err := hg.svc.Create(r.Context(), client, service.CreateTimesheetRequest{Date: date})
	if err != nil {
		var aggErr *domain.Error
		switch {
		case errors.As(err, &aggErr):
			writeError(w, r, http.StatusBadRequest, aggErr)
		case errors.Is(err, toggl.ErrInvalidCredentials):
			writeError(w, r, http.StatusUnauthorized, err)
		default:
			hg.slog.Error("timesheet build failed", "date", date, "err", err)
			writeError(w, r, http.StatusInternalServerError,
				errors.New("An unexpected error occurred. Please try again later."))
		}
		return
	}

	hg.recordInvocation(r, req.Email, date)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, createTimesheetResponse{Data: rows})
}

// recordInvocation writes the audit record for a served timesheet.
// Best-effort: a store failure is logged and never fails the request.
func (hg *HandlerGroup) recordInvocation(r *http.Request, email, date string) {
	if hg.store == nil {
		return
	}
	inv := logstore.Invocation{
		ID:          uuid.NewString(),
		Email:       email,
		Date:        date,
		RequestedAt: time.Now().UTC(),
	}
	if err := hg.store.Record(r.Context(), inv); err != nil {
		hg.slog.Warn("could not record invocation", "email", email, "date", date, "err", err)
	}
}

type getWorkspacesResponse struct {
	Data []toggl.Workspace `json:"Data"`
}

func (hg *HandlerGroup) handleGetWorkspaces(w http.ResponseWriter, r *http.Request) {
	credentials, err := auth.GetTogglCredentials(r.Context())
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, err)
		return
	}

	workspaces, err := hg.listWorkspaces(credentials.APIKey, credentials.Email)
	if err != nil {
		if errors.Is(err, toggl.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, err)
			return
		}
		hg.slog.Error("workspace listing failed", "err", err)
		writeError(w, r, http.StatusInternalServerError,
			errors.New("An unexpected error occurred. Please try again later."))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, getWorkspacesResponse{Data: workspaces})
}

func writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	render.Status(r, code)
	render.PlainText(w, r, err.Error())
}
