package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewax-co/survey-services/api/internal/public/domain"
)

type stubSurveyRepository struct {
	created []*domain.Survey
	err     error
}

func (r *stubSurveyRepository) Create(_ context.Context, survey *domain.Survey) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, survey)
	return nil
}

var catalogue = []string{"fontanar", "andino", "unicentro", "calle90"}

func validCommand() SubmitSurveyCommand {
	return SubmitSurveyCommand{
		Store:        "andino",
		Tiempo:       domain.TiempoJusto,
		Presentacion: 4,
		Calidad:      domain.CalidadUniforme,
		Confirmacion: true,
	}
}

func TestSubmitPersistsScoredPendingSurvey(t *testing.T) {
	repo := &stubSurveyRepository{}
	service := NewSurveyCommandService(repo, catalogue)

	survey, err := service.Submit(context.Background(), validCommand())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, "andino", survey.Store)
	assert.Equal(t, domain.StatusPending, survey.Status)
	// (5 + 4 + 5) / 3 = 4.666... -> 4.7
	assert.Equal(t, 4.7, survey.GlobalScore)
	assert.False(t, survey.CreatedAt.IsZero())
}

func TestSubmitMapsUnknownStoreToGeneral(t *testing.T) {
	repo := &stubSurveyRepository{}
	service := NewSurveyCommandService(repo, catalogue)

	cmd := validCommand()
	cmd.Store = "sucursal-fantasma"

	survey, err := service.Submit(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, domain.GeneralStore, survey.Store)
}

func TestSubmitRejectsInvalidAnswersWithoutWriting(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *SubmitSurveyCommand)
	}{
		{name: "unknown time option", mutate: func(cmd *SubmitSurveyCommand) { cmd.Tiempo = "rapidísimo" }},
		{name: "stars out of range", mutate: func(cmd *SubmitSurveyCommand) { cmd.Presentacion = 0 }},
		{name: "unknown quality option", mutate: func(cmd *SubmitSurveyCommand) { cmd.Calidad = "más o menos" }},
		{name: "missing confirmation", mutate: func(cmd *SubmitSurveyCommand) { cmd.Confirmacion = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubSurveyRepository{}
			service := NewSurveyCommandService(repo, catalogue)

			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := service.Submit(context.Background(), cmd)
			require.Error(t, err)
			var vErr domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Empty(t, repo.created, "a rejected submission must not reach the repository")
		})
	}
}

func TestSubmitPropagatesRepositoryFailure(t *testing.T) {
	repo := &stubSurveyRepository{err: errors.New("conexión perdida")}
	service := NewSurveyCommandService(repo, catalogue)

	_, err := service.Submit(context.Background(), validCommand())
	assert.Error(t, err)
	var vErr domain.ValidationError
	assert.False(t, errors.As(err, &vErr), "storage failures are not validation failures")
}
