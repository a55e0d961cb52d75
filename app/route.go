package app

import (
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hgroves/togglcon/app/route/timesheet"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	timesheet.NewHandlerGroup(a.svcTimesheet, a.store, a.slog).Mount(a.router)
}
