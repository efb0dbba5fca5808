package application

import (
	"context"
	"time"

	"github.com/rewax-co/survey-services/api/internal/public/domain"
)

// SurveyRepository handles survey writes for the public context.
// SurveyRepository es el puerto de escritura de encuestas del contexto público.
type SurveyRepository interface {
	Create(ctx context.Context, survey *domain.Survey) error
}

// SurveyCommandService handles the anonymous submission use-case.
type SurveyCommandService interface {
	Submit(ctx context.Context, cmd SubmitSurveyCommand) (*domain.Survey, error)
}

// SubmitSurveyCommand captures the raw answers of one respondent.
type SubmitSurveyCommand struct {
	Store        string
	Tiempo       string
	Presentacion int
	Calidad      string
	Confirmacion bool
}

// NewSurveyCommandService wires the submission use-case to its repository.
func NewSurveyCommandService(repo SurveyRepository, stores []string) SurveyCommandService {
	return &surveyCommandService{repo: repo, stores: append([]string(nil), stores...)}
}

type surveyCommandService struct {
	repo   SurveyRepository
	stores []string
}

// Submit validates the answer set, derives the global score exactly once and
// persists the record in pending state. The score is never recomputed after
// this point.
func (s *surveyCommandService) Submit(ctx context.Context, cmd SubmitSurveyCommand) (*domain.Survey, error) {
	tiempo, err := domain.NewTiempo(cmd.Tiempo)
	if err != nil {
		return nil, err
	}
	presentacion, err := domain.NewPresentacion(cmd.Presentacion)
	if err != nil {
		return nil, err
	}
	calidad, err := domain.NewCalidad(cmd.Calidad)
	if err != nil {
		return nil, err
	}

	answers := domain.Answers{
		Tiempo:       tiempo,
		Presentacion: presentacion,
		Calidad:      calidad,
		Confirmacion: cmd.Confirmacion,
	}
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	survey := &domain.Survey{
		Store:       domain.NormalizeStore(cmd.Store, s.stores),
		Answers:     answers,
		GlobalScore: domain.Score(answers),
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	return survey, s.repo.Create(ctx, survey)
}
