package employee

import (
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
)

// ToDomainEmployee converts a backend EmployeeDTO to a domain Employee,
// falling back to _id when id is absent.
func ToDomainEmployee(dto *EmployeeDTO) employee.Employee {
	id := dto.ID
	if id == "" {
		id = dto.StoreID
	}
	return employee.Employee{
		ID:             id,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Type:           employee.Type(dto.Type),
		BaseHourlyRate: dto.BaseHourlyRate,
		SuperRate:      dto.SuperRate,
		Bank:           employee.Bank{BSB: dto.Bank.BSB, Account: dto.Bank.Account},
		Status:         employee.Status(dto.Status),
	}
}

// ToDomainEmployeeList converts backend records to domain employees. A nil
// list becomes an empty slice.
func ToDomainEmployeeList(dtos []EmployeeDTO) []employee.Employee {
	employees := make([]employee.Employee, len(dtos))
	for i := range dtos {
		employees[i] = ToDomainEmployee(&dtos[i])
	}
	return employees
}

// ToCreateEmployeeRequest converts a domain Employee to the POST /employee
// body. The id is assigned by the backend and is never sent.
func ToCreateEmployeeRequest(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Type:           string(e.Type),
		BaseHourlyRate: e.BaseHourlyRate,
		SuperRate:      e.SuperRate,
		Bank:           BankDTO{BSB: e.Bank.BSB, Account: e.Bank.Account},
		Status:         string(e.Status),
	}
}

// ToPatchEmployeeRequest converts a domain Patch to the PATCH body.
func ToPatchEmployeeRequest(p *employee.Patch) PatchEmployeeRequestDTO {
	dto := PatchEmployeeRequestDTO{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		BaseHourlyRate: p.BaseHourlyRate,
		SuperRate:      p.SuperRate,
	}
	if p.Type != nil {
		t := string(*p.Type)
		dto.Type = &t
	}
	if p.Status != nil {
		s := string(*p.Status)
		dto.Status = &s
	}
	if p.Bank != nil {
		dto.Bank = &BankDTO{BSB: p.Bank.BSB, Account: p.Bank.Account}
	}
	return dto
}
