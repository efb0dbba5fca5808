package admin

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/rewax-co/survey-services/api/internal/admin/application"
	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
)

type stubAuthService struct {
	token     string
	viewer    admindomain.Viewer
	loginErr  error
	changeErr error
}

func (s *stubAuthService) Login(context.Context, string, string, bool) (string, admindomain.Viewer, error) {
	if s.loginErr != nil {
		return "", admindomain.Viewer{}, s.loginErr
	}
	return s.token, s.viewer, nil
}

func (s *stubAuthService) ChangePassword(context.Context, string, time.Time, string) error {
	return s.changeErr
}

type stubSurveyService struct {
	dashboard   admindomain.Dashboard
	surveys     []admindomain.Survey
	detail      *admindomain.Survey
	detailErr   error
	completeErr error
}

func (s *stubSurveyService) Dashboard(context.Context, admindomain.Viewer, string, string) (admindomain.Dashboard, error) {
	return s.dashboard, nil
}

func (s *stubSurveyService) List(context.Context, admindomain.Viewer, string, string) ([]admindomain.Survey, error) {
	return s.surveys, nil
}

func (s *stubSurveyService) Detail(context.Context, admindomain.Viewer, string) (*admindomain.Survey, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func (s *stubSurveyService) Complete(context.Context, admindomain.Viewer, string, adminapp.CompleteSurveyCommand) (*admindomain.Survey, error) {
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	return s.detail, nil
}

// fakeAuthMiddleware injects a fixed principal, standing in for the JWT
// middleware of the server.
func fakeAuthMiddleware(user common.AuthenticatedUser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(common.ContextWithUser(r.Context(), user)))
		})
	}
}

func storeUser() common.AuthenticatedUser {
	return common.AuthenticatedUser{
		ID:       "u1",
		Email:    "andino@rewax.co",
		Store:    "andino",
		Manager:  false,
		IssuedAt: time.Now(),
	}
}

func newTestRouter(auth adminapp.AuthService, surveys adminapp.SurveyService, user common.AuthenticatedUser) chi.Router {
	handler := NewHandler(Config{
		Logger:        log.New(io.Discard, "", 0),
		AuthService:   auth,
		SurveyService: surveys,
	})
	router := chi.NewRouter()
	router.Route("/admin", handler.Register(fakeAuthMiddleware(user)))
	return router
}

func pendingSurvey() *admindomain.Survey {
	score := 4.7
	return &admindomain.Survey{
		ID:           "663a1f2e8b4c9d0012345678",
		Store:        "andino",
		Tiempo:       "Justo a tiempo",
		Presentacion: 4,
		Calidad:      "Uniforme y renovado",
		Confirmacion: true,
		GlobalScore:  &score,
		Status:       admindomain.StatusPending,
		CreatedAt:    time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC),
	}
}

func TestLoginHandler(t *testing.T) {
	t.Run("valid credentials answer the token and viewer", func(t *testing.T) {
		auth := &stubAuthService{
			token:  "jwt-token",
			viewer: admindomain.Viewer{Email: "andino@rewax.co", Store: "andino"},
		}
		router := newTestRouter(auth, &stubSurveyService{}, storeUser())

		body := `{"email":"andino@rewax.co","password":"secreta1","remember":true}`
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
		assert.Equal(t, "andino", resp.Viewer.Store)
	})

	t.Run("bad credentials answer 401", func(t *testing.T) {
		auth := &stubAuthService{loginErr: adminapp.ErrInvalidCredentials}
		router := newTestRouter(auth, &stubSurveyService{}, storeUser())

		body := `{"email":"andino@rewax.co","password":"mala"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		router := newTestRouter(&stubAuthService{}, &stubSurveyService{}, storeUser())

		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMeHandler(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubSurveyService{}, storeUser())

	req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp viewerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "andino@rewax.co", resp.Email)
	assert.Equal(t, "andino", resp.Store)
	assert.False(t, resp.Manager)
}

func TestPasswordChangeHandler(t *testing.T) {
	tests := []struct {
		name       string
		changeErr  error
		wantStatus int
	}{
		{name: "success answers 200", changeErr: nil, wantStatus: http.StatusOK},
		{name: "weak password answers 400", changeErr: adminapp.ErrWeakPassword, wantStatus: http.StatusBadRequest},
		{name: "stale session answers 403", changeErr: adminapp.ErrStaleSession, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuthService{changeErr: tt.changeErr}
			router := newTestRouter(auth, &stubSurveyService{}, storeUser())

			body := `{"newPassword":"nuevaclave"}`
			req := httptest.NewRequest(http.MethodPost, "/admin/password", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDashboardHandler(t *testing.T) {
	score := 4.0
	service := &stubSurveyService{dashboard: admindomain.Dashboard{
		Months:        []string{"2026-04", "2026-03"},
		SelectedMonth: "2026-04",
		KPIs:          admindomain.KPIs{SurveyCount: 2, AvgScore: 4.0, AvgDays: 3.0, PendingCount: 1},
		Records: []admindomain.Survey{
			{ID: "s1", Store: "andino", GlobalScore: &score, Status: admindomain.StatusPending},
		},
	}}
	router := newTestRouter(&stubAuthService{}, service, storeUser())

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard?month=2026-04", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2026-04", "2026-03"}, resp.Months)
	assert.Equal(t, "2026-04", resp.SelectedMonth)
	assert.Equal(t, 2, resp.KPIs.SurveyCount)
	assert.Equal(t, 1, resp.KPIs.PendingCount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 4.0, resp.Items[0].Score)
}

func TestSurveyDetailHandler(t *testing.T) {
	t.Run("visible record answers its row", func(t *testing.T) {
		service := &stubSurveyService{detail: pendingSurvey()}
		router := newTestRouter(&stubAuthService{}, service, storeUser())

		req := httptest.NewRequest(http.MethodGet, "/admin/surveys/663a1f2e8b4c9d0012345678", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp surveyItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "andino", resp.Store)
		assert.Equal(t, 4.7, resp.Score)
		assert.False(t, resp.LowScore)
	})

	t.Run("hidden and missing records both answer 404", func(t *testing.T) {
		for _, detailErr := range []error{adminapp.ErrSurveyNotVisible, mongo.ErrNoDocuments} {
			service := &stubSurveyService{detailErr: detailErr}
			router := newTestRouter(&stubAuthService{}, service, storeUser())

			req := httptest.NewRequest(http.MethodGet, "/admin/surveys/663a1f2e8b4c9d0012345678", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		}
	})
}

func TestSurveyCompleteHandler(t *testing.T) {
	body := `{"clientName":"Laura Méndez","receptionDate":"2026-04-18","deliveryDate":"2026-04-21"}`

	completeRequest := func(router chi.Router) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/admin/surveys/663a1f2e8b4c9d0012345678/complete", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("completion answers the updated row", func(t *testing.T) {
		completed := pendingSurvey()
		completed.Status = admindomain.StatusCompleted
		completed.ClientName = "Laura Méndez"
		completed.DaysProcess = 3

		service := &stubSurveyService{detail: completed}
		router := newTestRouter(&stubAuthService{}, service, storeUser())

		rec := completeRequest(router)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp surveyItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, 3, resp.DaysProcess)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{name: "already completed answers 409", err: admindomain.ErrAlreadyCompleted, wantStatus: http.StatusConflict},
			{name: "manager answers 403", err: adminapp.ErrManagerCannotComplete, wantStatus: http.StatusForbidden},
			{name: "hidden record answers 404", err: adminapp.ErrSurveyNotVisible, wantStatus: http.StatusNotFound},
			{name: "missing record answers 404", err: mongo.ErrNoDocuments, wantStatus: http.StatusNotFound},
			{name: "form validation answers 400", err: admindomain.ValidationError("la fecha de entrega es obligatoria"), wantStatus: http.StatusBadRequest},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service := &stubSurveyService{completeErr: tt.err}
				router := newTestRouter(&stubAuthService{}, service, storeUser())
				assert.Equal(t, tt.wantStatus, completeRequest(router).Code)
			})
		}
	})
}
