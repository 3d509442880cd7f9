package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campuscal/internal/delivery/http/controllers"
	"campuscal/internal/delivery/http/middleware"
	"campuscal/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Reading the calendar is public; every mutation requires an admin token.
func NewRouter(eventController *controllers.EventController, authController *controllers.AuthController, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	adminOnly := middleware.RequireRole(verifier, domain.RoleAdmin, logger)

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", adminOnly(eventController.CreateEvent))
	mux.HandleFunc("PUT /events", adminOnly(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events", adminOnly(eventController.DeleteEvent))

	// Auth
	mux.HandleFunc("POST /login", authController.Login)

	// Health
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Backend is running!"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
