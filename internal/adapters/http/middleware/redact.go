package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redactedValue = "[REDACTED]"

// sensitiveHeaders lists lowercase header names that carry credentials.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// RedactHeaders converts headers to slog attributes sorted by name. Values of
// sensitive headers are replaced; an Authorization value keeps its scheme so
// that "Bearer [REDACTED]" still shows which kind of credential was sent.
// Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := strings.Join(headers[key], ",")
		if sensitiveHeaders[strings.ToLower(key)] {
			value = redactValue(value)
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}

func redactValue(value string) string {
	scheme, _, found := strings.Cut(strings.TrimSpace(value), " ")
	if found && scheme != "" && !strings.ContainsAny(scheme, "=;,") {
		return scheme + " " + redactedValue
	}
	return redactedValue
}
