// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/timesheet, domain/employee,
// domain/payrun). This root package holds sentinel errors, validation types, and
// domain-level interfaces (Action, WriteStager) shared across all entities.
package domain
