package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, employee_code, email, department, position, is_active, created_at, updated_at`

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, employee_code, email, department, position, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		e.ID,
		e.Name,
		e.EmployeeCode,
		e.Email,
		e.Department,
		e.Position,
		e.IsActive,
		e.CreatedAt,
		e.UpdatedAt,
	).Scan(
		&created.ID,
		&created.Name,
		&created.EmployeeCode,
		&created.Email,
		&created.Department,
		&created.Position,
		&created.IsActive,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`
	return r.get(ctx, query, code)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_code ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.EmployeeCode,
			&e.Email,
			&e.Department,
			&e.Position,
			&e.IsActive,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, department = $3, position = $4, is_active = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + employeeColumns

	var updated employee.Employee
	err := q.QueryRow(ctx, query,
		e.Name,
		e.Email,
		e.Department,
		e.Position,
		e.IsActive,
		e.UpdatedAt,
		e.ID,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.EmployeeCode,
		&updated.Email,
		&updated.Department,
		&updated.Position,
		&updated.IsActive,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}

	return updated, nil
}

func (r *employeeRepositoryImpl) get(ctx context.Context, query string, arg interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var e employee.Employee
	err := q.QueryRow(ctx, query, arg).Scan(
		&e.ID,
		&e.Name,
		&e.EmployeeCode,
		&e.Email,
		&e.Department,
		&e.Position,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}
