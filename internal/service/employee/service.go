package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/clock"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	clock clock.Clock
}

func NewEmployeeService(repo employee.EmployeeRepository, clk clock.Clock) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: repo,
		clock:              clk,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	now := s.clock.Now()
	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		Department:   req.Department,
		Position:     req.Position,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode)

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	emp.UpdatedAt = s.clock.Now()

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// Deactivate soft-deletes: punch history must survive, so the row stays and
// only IsActive flips. The event service refuses punches from inactive
// employees.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.IsActive = false
	emp.UpdatedAt = s.clock.Now()

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to deactivate employee: %w", err)
	}

	slog.Info("employee deactivated", "employee_id", updated.ID, "employee_code", updated.EmployeeCode)

	return employee.ToResponse(updated), nil
}
