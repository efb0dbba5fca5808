package application

import (
	"context"
	"time"

	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
)

type surveyService struct {
	repo     SurveyRepository
	location *time.Location
}

// NewSurveyService builds the dashboard service. The location drives the
// local-calendar month bucketing.
func NewSurveyService(repo SurveyRepository, location *time.Location) SurveyService {
	return &surveyService{repo: repo, location: location}
}

func (s *surveyService) Dashboard(ctx context.Context, viewer admindomain.Viewer, month, storeFilter string) (admindomain.Dashboard, error) {
	records, err := s.repo.Find(ctx)
	if err != nil {
		return admindomain.Dashboard{}, err
	}
	return admindomain.BuildDashboard(records, viewer, month, storeFilter, s.location), nil
}

func (s *surveyService) List(ctx context.Context, viewer admindomain.Viewer, month, storeFilter string) ([]admindomain.Survey, error) {
	dashboard, err := s.Dashboard(ctx, viewer, month, storeFilter)
	if err != nil {
		return nil, err
	}
	return dashboard.Records, nil
}

func (s *surveyService) Detail(ctx context.Context, viewer admindomain.Viewer, id string) (*admindomain.Survey, error) {
	survey, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.CanSee(*survey) {
		return nil, ErrSurveyNotVisible
	}
	return survey, nil
}

// Complete validates the form fields, re-checks visibility and status, and
// performs the single pending→completed transition. Validation failures
// reject the operation before any write happens.
func (s *surveyService) Complete(ctx context.Context, viewer admindomain.Viewer, id string, cmd CompleteSurveyCommand) (*admindomain.Survey, error) {
	if viewer.Manager {
		return nil, ErrManagerCannotComplete
	}

	completion, err := admindomain.NewCompletion(cmd.ClientName, cmd.ReceptionDate, cmd.DeliveryDate)
	if err != nil {
		return nil, err
	}

	survey, err := s.Detail(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if survey.Completed() {
		return nil, admindomain.ErrAlreadyCompleted
	}

	if err := s.repo.Complete(ctx, id, completion); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}
