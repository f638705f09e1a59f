package employee

import (
	"time"
)

// Employee is a kiosk-visible worker identified on the punch clock by
// EmployeeCode (EMP001, EMP002, ...).
type Employee struct {
	ID           string
	Name         string
	EmployeeCode string
	Email        string
	Department   string
	Position     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
