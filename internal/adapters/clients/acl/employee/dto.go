// Package employee implements the Anti-Corruption Layer translators for the
// payroll backend's employee resources.
package employee

// EmployeeDTO matches the backend employee record. Older records carry the
// store's _id instead of id.
type EmployeeDTO struct {
	ID             string  `json:"id,omitempty"`
	StoreID        string  `json:"_id,omitempty"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Type           string  `json:"type"`
	BaseHourlyRate float64 `json:"baseHourlyRate"`
	SuperRate      float64 `json:"superRate"`
	Bank           BankDTO `json:"bank"`
	Status         string  `json:"status,omitempty"`
}

// BankDTO matches the backend bank object.
type BankDTO struct {
	BSB     string `json:"bsb"`
	Account string `json:"account"`
}

// PatchEmployeeRequestDTO is the PATCH /employee/{id} body. Nil fields are
// left unchanged.
type PatchEmployeeRequestDTO struct {
	FirstName      *string  `json:"firstName,omitempty"`
	LastName       *string  `json:"lastName,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Type           *string  `json:"type,omitempty"`
	BaseHourlyRate *float64 `json:"baseHourlyRate,omitempty"`
	SuperRate      *float64 `json:"superRate,omitempty"`
	Bank           *BankDTO `json:"bank,omitempty"`
	Status         *string  `json:"status,omitempty"`
}
