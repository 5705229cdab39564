package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// maxPeriodDays bounds the dates listed by GET /api/v1/periods: a leap year,
// counted inclusively.
const maxPeriodDays = 366

// Period handles GET /api/v1/periods?start&end. Unusable dates yield an empty
// range; a range longer than maxPeriodDays is answered with 400.
func Period(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := strings.TrimSpace(q.Get("start"))
	end := strings.TrimSpace(q.Get("end"))

	if spanDays(start, end) > maxPeriodDays {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"end": fmt.Sprintf("range must not exceed %d days", maxPeriodDays)},
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPeriodResponse(start, end))
}

// spanDays counts the days from start to end inclusive, or 0 when the range
// is unusable.
func spanDays(start, end string) int {
	from, ok := timesheet.ParseDate(start)
	if !ok {
		return 0
	}
	to, ok := timesheet.ParseDate(end)
	if !ok || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
