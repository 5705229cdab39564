// Package display formats backend amounts and timestamps for people reading
// payslips: locale number grouping from golang.org/x/text and dates in the
// payroll office's time zone.
package display

import (
	"fmt"
	"math"
	"time"
	_ "time/tzdata" // the office time zone must resolve on hosts without zoneinfo

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
)

// Layouts matching en-AU short date and date-time rendering.
const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006, 03:04:05 pm"
)

// Formatter renders amounts and dates for a single locale and time zone.
// It is safe for concurrent use.
type Formatter struct {
	printer *message.Printer
	loc     *time.Location
}

// New creates a Formatter for cfg.Locale and cfg.Timezone.
func New(cfg *config.DisplayConfig) (*Formatter, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", cfg.Locale, err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), loc: loc}, nil
}

// Money formats v as a dollar amount with two decimals and locale grouping,
// e.g. "$1,234.50" or "-$12.00".
func (f *Formatter) Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}
	return sign + "$" + f.printer.Sprintf("%.2f", v)
}

// Hours formats a number of hours with up to two decimals.
func (f *Formatter) Hours(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Date formats t as a calendar date in the configured time zone.
func (f *Formatter) Date(t time.Time) string {
	return t.In(f.loc).Format(DateLayout)
}

// DateTime formats t as date and time in the configured time zone.
func (f *Formatter) DateTime(t time.Time) string {
	return t.In(f.loc).Format(DateTimeLayout)
}

// DateString formats a backend date string. Values that do not parse are
// returned unchanged.
func (f *Formatter) DateString(s string) string {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return f.Date(t)
		}
	}
	return s
}

// Location returns the configured time zone.
func (f *Formatter) Location() *time.Location {
	return f.loc
}
