package employee

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// Patch is a partial employee update. Nil fields are left unchanged.
type Patch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Type           *Type
	BaseHourlyRate *float64
	SuperRate      *float64
	Bank           *Bank
	Status         *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Type == nil &&
		p.BaseHourlyRate == nil && p.SuperRate == nil && p.Bank == nil && p.Status == nil
}

// Validate applies the Employee rules to every field the patch sets.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.IsEmpty() {
		fields["body"] = "at least one field must be set"
	}
	blank := func(s *string) bool { return s != nil && strings.TrimSpace(*s) == "" }
	if blank(p.FirstName) {
		fields["firstName"] = domain.MsgRequired
	}
	if blank(p.LastName) {
		fields["lastName"] = domain.MsgRequired
	}
	if blank(p.Email) {
		fields["email"] = domain.MsgRequired
	}
	if p.Type != nil && !p.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", *p.Type)
	}
	if p.BaseHourlyRate != nil && *p.BaseHourlyRate <= 0 {
		fields["baseHourlyRate"] = fmt.Sprintf("must be positive, got %v", *p.BaseHourlyRate)
	}
	if p.SuperRate != nil && (*p.SuperRate < 0 || *p.SuperRate > 100) {
		fields["superRate"] = fmt.Sprintf("must be 0-100, got %v", *p.SuperRate)
	}
	if p.Bank != nil {
		if strings.TrimSpace(p.Bank.BSB) == "" {
			fields["bank.bsb"] = domain.MsgRequired
		}
		if strings.TrimSpace(p.Bank.Account) == "" {
			fields["bank.account"] = domain.MsgRequired
		}
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *p.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
