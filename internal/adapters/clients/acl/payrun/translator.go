package payrun

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
)

// ToRunRequest converts a domain request to the POST /payrun/run body.
func ToRunRequest(r *payrun.Request) RunRequestDTO {
	return RunRequestDTO{
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		EmployeeIDs: r.EmployeeIDs,
	}
}

// ToDomainPayrun converts a backend payrun. createdAt is RFC 3339; an empty
// value leaves CreatedAt zero.
func ToDomainPayrun(dto *PayrunDTO) (payrun.Payrun, error) {
	pr := payrun.Payrun{
		ID:          dto.ID,
		PeriodStart: dto.PeriodStart,
		PeriodEnd:   dto.PeriodEnd,
		Payslips:    make([]payrun.Payslip, len(dto.Payslips)),
	}
	if dto.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, dto.CreatedAt)
		if err != nil {
			return payrun.Payrun{}, fmt.Errorf("payrun %s: parsing createdAt: %w", dto.ID, err)
		}
		pr.CreatedAt = t
	}
	for i := range dto.Payslips {
		pr.Payslips[i] = toDomainPayslip(&dto.Payslips[i])
	}
	return pr, nil
}

// ToDomainPayrunList converts backend payruns, stopping at the first bad
// record.
func ToDomainPayrunList(dtos []PayrunDTO) ([]payrun.Payrun, error) {
	list := make([]payrun.Payrun, 0, len(dtos))
	for i := range dtos {
		pr, err := ToDomainPayrun(&dtos[i])
		if err != nil {
			return nil, err
		}
		list = append(list, pr)
	}
	return list, nil
}

func toDomainPayslip(dto *PayslipDTO) payrun.Payslip {
	id := dto.Employee.ID
	if id == "" {
		id = dto.Employee.StoreID
	}
	return payrun.Payslip{
		Employee: payrun.EmployeeRef{
			ID:        id,
			FirstName: dto.Employee.FirstName,
			LastName:  dto.Employee.LastName,
			Email:     dto.Employee.Email,
		},
		Gross:         dto.Gross,
		Tax:           dto.Tax,
		Net:           dto.Net,
		Super:         dto.Super,
		NormalHours:   dto.NormalHours,
		OvertimeHours: dto.OvertimeHours,
	}
}
