package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/rewax-co/survey-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger        *log.Logger
	authService   adminapp.AuthService
	surveyService adminapp.SurveyService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger        *log.Logger
	AuthService   adminapp.AuthService
	SurveyService adminapp.SurveyService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		authService:   cfg.AuthService,
		surveyService: cfg.SurveyService,
	}
}

// Register mounts admin routes onto router. El login queda fuera del
// middleware de sesión; todo lo demás exige token.
func (h *Handler) Register(authMiddleware func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/login", h.loginHandler())
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", h.meHandler())
			r.Post("/password", h.passwordChangeHandler())
			r.Get("/dashboard", h.dashboardHandler())
			r.Get("/surveys", h.surveyListHandler())
			r.Get("/surveys/{id}", h.surveyDetailHandler())
			r.Patch("/surveys/{id}/complete", h.surveyCompleteHandler())
		})
	}
}
