// Package http provides the gateway's inbound HTTP adapter: routing and
// server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// Handlers holds the route handlers the router dispatches to.
type Handlers struct {
	Session   *handlers.SessionHandler
	Employee  *handlers.EmployeeHandler
	Timesheet *handlers.TimesheetHandler
	Payrun    *handlers.PayrunHandler
	Health    *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with every gateway route registered.
// Middleware is applied globally in the order given. Unknown routes get an
// RFC 9457 404.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session/token", h.Session.IssueToken)

		r.Get("/employees", h.Employee.ListEmployees)
		r.Post("/employees", h.Employee.CreateEmployee)
		r.Patch("/employees/{id}", h.Employee.UpdateEmployee)

		r.Get("/periods", handlers.Period)

		r.Get("/timesheets", h.Timesheet.ListTimesheets)
		r.Put("/timesheets", h.Timesheet.SaveTimesheet)
		r.Get("/timesheets/week", h.Timesheet.LoadWeek)
		r.Post("/timesheets/validate", h.Timesheet.Validate)

		r.Get("/payruns", h.Payrun.ListPayruns)
		r.Post("/payruns", h.Payrun.RunPayrun)
		r.Post("/payruns/preflight", h.Payrun.Preflight)
	})

	return r
}
