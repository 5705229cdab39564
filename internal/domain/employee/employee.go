// Package employee holds the employee directory entity.
package employee

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// Type is the pay basis of an employee.
type Type string

// TypeHourly is the only pay basis the payroll backend supports.
const TypeHourly Type = "HOURLY"

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	return t == TypeHourly
}

// Status is the employment state of an employee.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// Bank holds the account payslips are paid into.
type Bank struct {
	BSB     string
	Account string
}

// Employee is a payroll employee record.
type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Type           Type
	BaseHourlyRate float64
	SuperRate      float64
	Bank           Bank
	Status         Status
}

// FullName returns "First Last", trimmed.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Validate checks business rules for the Employee entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (e *Employee) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.FirstName) == "" {
		fields["firstName"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.LastName) == "" {
		fields["lastName"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if !e.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", e.Type)
	}
	if e.BaseHourlyRate <= 0 {
		fields["baseHourlyRate"] = fmt.Sprintf("must be positive, got %v", e.BaseHourlyRate)
	}
	if e.SuperRate < 0 || e.SuperRate > 100 {
		fields["superRate"] = fmt.Sprintf("must be 0-100, got %v", e.SuperRate)
	}
	if strings.TrimSpace(e.Bank.BSB) == "" {
		fields["bank.bsb"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.Bank.Account) == "" {
		fields["bank.account"] = domain.MsgRequired
	}
	if e.Status != "" && !e.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", e.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
