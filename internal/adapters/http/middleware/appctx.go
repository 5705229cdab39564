package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/payroo-gateway/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// appctx.RequestContext. Services use it to memoize backend lookups, such as
// the stored-timesheet search during a save, for the life of one request.
//
// Register it after CorrelationID so the RequestContext's context carries the
// request and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
