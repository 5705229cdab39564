// Package payrun implements the Anti-Corruption Layer translators for the
// payroll backend's payrun resources.
package payrun

// RunRequestDTO is the POST /payrun/run body.
type RunRequestDTO struct {
	PeriodStart string   `json:"periodStart"`
	PeriodEnd   string   `json:"periodEnd"`
	EmployeeIDs []string `json:"employeeIds"`
}

// PayrunDTO matches a backend payrun record.
type PayrunDTO struct {
	ID          string       `json:"_id"`
	PeriodStart string       `json:"periodStart"`
	PeriodEnd   string       `json:"periodEnd"`
	Payslips    []PayslipDTO `json:"payslips"`
	CreatedAt   string       `json:"createdAt"`
}

// PayslipDTO matches a payslip. employeeId is populated by the backend with
// the employee's name and email.
type PayslipDTO struct {
	Employee      EmployeeRefDTO `json:"employeeId"`
	Gross         float64        `json:"gross"`
	Tax           float64        `json:"tax"`
	Net           float64        `json:"net"`
	Super         float64        `json:"super"`
	NormalHours   float64        `json:"normalHours"`
	OvertimeHours float64        `json:"overtimeHours"`
}

// EmployeeRefDTO is the populated employee on a payslip.
type EmployeeRefDTO struct {
	ID        string `json:"id"`
	StoreID   string `json:"_id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
