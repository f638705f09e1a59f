package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/config"
	appHTTP "github.com/timeclock-app/timeclock-backend-go/internal/handler/http"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/clock"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/cron"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/sse"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/storage"
	"github.com/timeclock-app/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/timeclock-app/timeclock-backend-go/internal/service/auth"
	hoursService "github.com/timeclock-app/timeclock-backend-go/internal/service/businesshours"
	employeeService "github.com/timeclock-app/timeclock-backend-go/internal/service/employee"
	eventService "github.com/timeclock-app/timeclock-backend-go/internal/service/event"
	sessionService "github.com/timeclock-app/timeclock-backend-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	eventRepo := postgresql.NewEventRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	hoursRepo := postgresql.NewBusinessHoursRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Export.BasePath, cfg.Export.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize export storage:", err)
	}

	hub := sse.NewHub()
	clk := clock.System()

	eventSvc := eventService.NewEventService(eventRepo, employeeRepo, hoursRepo, clk, hub)
	sessionSvc := sessionService.NewSessionService(eventRepo, employeeRepo, clk, fileStorage)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clk)
	hoursSvc := hoursService.NewBusinessHoursService(hoursRepo, clk)
	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	sessionHandler := appHTTP.NewSessionHandler(sessionSvc, jwtService, hub)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	hoursHandler := appHTTP.NewBusinessHoursHandler(hoursSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("auto_close_open_days", time.Hour, func(ctx context.Context) error {
		closed, err := eventSvc.AutoCloseOpenDays(ctx)
		if closed > 0 {
			slog.Info("auto-close sweep finished", "days_closed", closed)
		}
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		eventHandler,
		sessionHandler,
		employeeHandler,
		hoursHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
