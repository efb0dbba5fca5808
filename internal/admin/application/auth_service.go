package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

const minPasswordLength = 6

type authService struct {
	users            UserRepository
	tokens           TokenIssuer
	recentAuthWindow time.Duration
}

// NewAuthService wires staff authentication to its user store and token
// issuer.
func NewAuthService(users UserRepository, tokens TokenIssuer, recentAuthWindow time.Duration) AuthService {
	return &authService{users: users, tokens: tokens, recentAuthWindow: recentAuthWindow}
}

// Login checks credentials and mints a session token. The remember flag
// selects durable (long TTL) versus session-scoped (short TTL) persistence.
// Cuenta desconocida y contraseña mala responden idéntico para no filtrar
// qué correos existen.
func (s *authService) Login(ctx context.Context, email, password string, remember bool) (string, admindomain.Viewer, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || password == "" {
		return "", admindomain.Viewer{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", admindomain.Viewer{}, ErrInvalidCredentials
		}
		return "", admindomain.Viewer{}, err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", admindomain.Viewer{}, ErrInvalidCredentials
	}

	viewer := user.Viewer()
	token, err := s.tokens.Issue(user.ID, user.Email, viewer.Store, viewer.Manager, remember)
	if err != nil {
		return "", admindomain.Viewer{}, err
	}
	return token, viewer, nil
}

// ChangePassword rehashes and stores a new password for the authenticated
// account. Sessions older than the recent-auth window are rejected with the
// sign-out-and-back-in advisory instead of silently re-authenticating.
func (s *authService) ChangePassword(ctx context.Context, email string, issuedAt time.Time, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	if s.recentAuthWindow > 0 && time.Since(issuedAt) > s.recentAuthWindow {
		return ErrStaleSession
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}
