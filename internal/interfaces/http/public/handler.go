package public

import (
	"log"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/rewax-co/survey-services/api/internal/public/application"
)

// Handler wires the public survey endpoints to application services.
type Handler struct {
	logger         *log.Logger
	surveyCommands publicapp.SurveyCommandService
	stores         []string
}

// Config provides dependencies for Handler.
type Config struct {
	Logger         *log.Logger
	SurveyCommands publicapp.SurveyCommandService
	Stores         []string
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		surveyCommands: cfg.SurveyCommands,
		stores:         append([]string(nil), cfg.Stores...),
	}
}

// Register mounts public routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stores", h.storeListHandler())
	r.Post("/surveys", h.surveyCreateHandler())
}
