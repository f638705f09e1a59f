package fixtures

import (
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
)

// ==========================================
// DEFAULT SEED DATA
// ==========================================

// DefaultEmployee is one seed employee row before IDs and timestamps are
// assigned by the seeder.
type DefaultEmployee struct {
	Name         string
	EmployeeCode string
	Email        string
	Department   string
	Position     string
}

// DefaultEmployees returns the roster provisioned on a fresh install.
func DefaultEmployees() []DefaultEmployee {
	return []DefaultEmployee{
		{Name: "John Smith", EmployeeCode: "EMP001", Email: "john.smith@company.com", Department: "Engineering", Position: "Software Developer"},
		{Name: "Sarah Johnson", EmployeeCode: "EMP002", Email: "sarah.johnson@company.com", Department: "Marketing", Position: "Marketing Manager"},
		{Name: "Michael Brown", EmployeeCode: "EMP003", Email: "michael.brown@company.com", Department: "Sales", Position: "Sales Representative"},
		{Name: "Roshan Alex Raj", EmployeeCode: "EMP004", Email: "roshanalexraj@gmail.com", Department: "Engineering", Position: "Senior Developer"},
		{Name: "Emily Davis", EmployeeCode: "EMP005", Email: "emily.davis@company.com", Department: "Human Resources", Position: "HR Manager"},
		{Name: "David Wilson", EmployeeCode: "EMP006", Email: "david.wilson@company.com", Department: "Finance", Position: "Financial Analyst"},
		{Name: "Lisa Chen", EmployeeCode: "EMP007", Email: "lisa.chen@company.com", Department: "Design", Position: "UX Designer"},
		{Name: "Robert Taylor", EmployeeCode: "EMP008", Email: "robert.taylor@company.com", Department: "Operations", Position: "Operations Manager"},
		{Name: "Jennifer Martinez", EmployeeCode: "EMP009", Email: "jennifer.martinez@company.com", Department: "Marketing", Position: "Content Specialist"},
		{Name: "Alex Thompson", EmployeeCode: "EMP010", Email: "alex.thompson@company.com", Department: "Engineering", Position: "DevOps Engineer"},
	}
}

// ToEmployee converts a seed row into a domain employee without ID or
// timestamps; the seeder fills those in.
func (d DefaultEmployee) ToEmployee() employee.Employee {
	return employee.Employee{
		Name:         d.Name,
		EmployeeCode: d.EmployeeCode,
		Email:        d.Email,
		Department:   d.Department,
		Position:     d.Position,
		IsActive:     true,
	}
}

// DefaultBusinessHours is the shift configuration provisioned on a fresh
// install: 9-to-5 with a one hour break and 15 minutes of grace.
func DefaultBusinessHours() businesshours.BusinessHours {
	return businesshours.BusinessHours{
		StartTime:     "09:00",
		EndTime:       "17:00",
		BreakDuration: 60,
		LateThreshold: 15,
	}
}

// DefaultAdmin describes the initial dashboard account. The password is
// read from SEED_ADMIN_PASSWORD at seed time, never stored here.
type DefaultAdmin struct {
	Email string
	Name  string
}

func DefaultAdminUser() DefaultAdmin {
	return DefaultAdmin{
		Email: "admin@gmail.com",
		Name:  "System Administrator",
	}
}
