package application

import (
	"context"
	"errors"
	"time"

	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
)

var (
	// ErrSurveyNotVisible hides records outside the viewer's store scope.
	// Para la tienda es indistinguible de un registro inexistente.
	ErrSurveyNotVisible = errors.New("la encuesta no existe")
	// ErrManagerCannotComplete keeps completion a store-side operation.
	ErrManagerCannotComplete = errors.New("la tienda debe completar el servicio")
	// ErrInvalidCredentials covers both unknown accounts and bad passwords.
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
	// ErrStaleSession is returned when a password change arrives on a session
	// older than the recent-auth window.
	ErrStaleSession = errors.New("cierra sesión y vuelve a entrar para cambiar la clave")
	// ErrWeakPassword rejects passwords below the minimum length.
	ErrWeakPassword = errors.New("la contraseña debe tener al menos 6 caracteres")
)

// SurveyRepository exposes the survey collection to the admin context.
// Find devuelve siempre orden descendente por fecha de creación; el tablero
// depende de ese orden para derivar la lista de meses.
type SurveyRepository interface {
	Find(ctx context.Context) ([]admindomain.Survey, error)
	FindByID(ctx context.Context, id string) (*admindomain.Survey, error)
	Complete(ctx context.Context, id string, completion admindomain.Completion) error
}

// UserRepository exposes staff accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*admindomain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash []byte) error
}

// TokenIssuer mints session tokens for authenticated staff.
type TokenIssuer interface {
	Issue(userID, email, store string, manager, remember bool) (string, error)
}

// SurveyService describes the dashboard use-cases.
type SurveyService interface {
	Dashboard(ctx context.Context, viewer admindomain.Viewer, month, storeFilter string) (admindomain.Dashboard, error)
	List(ctx context.Context, viewer admindomain.Viewer, month, storeFilter string) ([]admindomain.Survey, error)
	Detail(ctx context.Context, viewer admindomain.Viewer, id string) (*admindomain.Survey, error)
	Complete(ctx context.Context, viewer admindomain.Viewer, id string, cmd CompleteSurveyCommand) (*admindomain.Survey, error)
}

// CompleteSurveyCommand carries the completion form fields. The dates exist
// only to derive the turnaround and are not persisted.
type CompleteSurveyCommand struct {
	ClientName    string
	ReceptionDate string
	DeliveryDate  string
}

// AuthService describes staff authentication use-cases.
type AuthService interface {
	Login(ctx context.Context, email, password string, remember bool) (string, admindomain.Viewer, error)
	ChangePassword(ctx context.Context, email string, issuedAt time.Time, newPassword string) error
}
