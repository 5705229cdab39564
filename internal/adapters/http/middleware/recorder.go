// Package middleware provides the gateway's inbound HTTP pipeline:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Bearer → Timeout → handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// with Chain.
package middleware

import "net/http"

// recorder wraps a ResponseWriter and remembers what the handler sent, for
// the middleware that log, trace, or recover around it.
type recorder struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

func record(w http.ResponseWriter) *recorder {
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status; later calls are dropped so the logged
// status always matches what the client received.
func (r *recorder) WriteHeader(code int) {
	if r.committed {
		return
	}
	r.status, r.committed = code, true
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.committed = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and Hijack on the
// underlying writer.
func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
