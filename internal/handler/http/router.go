package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/timeclock-app/timeclock-backend-go/internal/config"
	"github.com/timeclock-app/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	eventHandler EventHandler,
	sessionHandler SessionHandler,
	employeeHandler EmployeeHandler,
	hoursHandler BusinessHoursHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/stream-token", authHandler.StreamToken)
			})
		})

		// Kiosk surface: a shared terminal punches without credentials
		r.Post("/events", eventHandler.Record)
		r.Get("/events/today", eventHandler.GetToday)
		r.Get("/work-status", sessionHandler.GetWorkStatus)
		r.Get("/work-sessions", sessionHandler.ListWorkSessions)
		r.Get("/work-sessions/current", sessionHandler.GetCurrentSession)
		r.Get("/weekly-hours", sessionHandler.GetWeeklyHours)
		r.Get("/employees", employeeHandler.List)
		r.Get("/business-hours", hoursHandler.Get)

		// Live punch feed; authenticated by stream token in the query string
		r.Get("/events/stream", sessionHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/events", eventHandler.List)
				r.Get("/reports/export", sessionHandler.ExportCSV)

				// GET /employees stays public for the kiosk picker, so the
				// admin routes are registered flat instead of mounted
				r.Post("/employees", employeeHandler.Create)
				r.Get("/employees/{id}", employeeHandler.Get)
				r.Put("/employees/{id}", employeeHandler.Update)
				r.Delete("/employees/{id}", employeeHandler.Deactivate)

				r.Put("/business-hours", hoursHandler.Update)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
