package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/timeclock-app/timeclock-backend-go/internal/config"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-app/timeclock-backend-go/internal/fixtures"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-app/timeclock-backend-go/internal/repository/postgresql"
)

// Provisions default data on a fresh install: the employee roster, the
// shift configuration, and one admin account. Safe to run repeatedly;
// existing rows are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	hoursRepo := postgresql.NewBusinessHoursRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	seeded := 0
	for _, def := range fixtures.DefaultEmployees() {
		if _, err := employeeRepo.GetByCode(ctx, def.EmployeeCode); err == nil {
			continue
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			log.Fatal("Failed to check employee: ", err)
		}

		emp := def.ToEmployee()
		emp.ID = uuid.New().String()
		emp.CreatedAt = time.Now()
		emp.UpdatedAt = time.Now()

		if _, err := employeeRepo.Create(ctx, emp); err != nil {
			log.Fatal("Failed to seed employee: ", err)
		}
		seeded++
	}
	fmt.Printf("Employees seeded: %d\n", seeded)

	if _, err := hoursRepo.Get(ctx); errors.Is(err, businesshours.ErrNotConfigured) {
		hours := fixtures.DefaultBusinessHours()
		hours.ID = uuid.New().String()
		hours.UpdatedAt = time.Now()
		if _, err := hoursRepo.Save(ctx, hours); err != nil {
			log.Fatal("Failed to seed business hours: ", err)
		}
		fmt.Println("Business hours seeded")
	} else if err != nil {
		log.Fatal("Failed to check business hours: ", err)
	}

	admin := fixtures.DefaultAdminUser()
	if _, err := userRepo.GetByEmail(ctx, admin.Email); errors.Is(err, user.ErrUserNotFound) {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			log.Fatal("SEED_ADMIN_PASSWORD is required to create the admin account")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash admin password: ", err)
		}

		_, err = userRepo.Create(ctx, user.User{
			ID:           uuid.New().String(),
			Email:        admin.Email,
			PasswordHash: string(hash),
			Name:         admin.Name,
			IsAdmin:      true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		})
		if err != nil {
			log.Fatal("Failed to seed admin user: ", err)
		}
		fmt.Println("Admin user seeded")
	} else if err != nil {
		log.Fatal("Failed to check admin user: ", err)
	}

	fmt.Println("Seed complete")
}
