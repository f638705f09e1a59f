package employee

import (
	"errors"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrEmployeeInactive   = errors.New("employee is inactive")
)
