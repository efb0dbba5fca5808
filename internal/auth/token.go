package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload. Manager flag and store scope travel
// in the token so the visibility rule needs no extra lookup per request.
type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Store   string `json:"store"`
	Manager bool   `json:"manager"`
}

// Service mints and verifies HS256 session tokens for staff accounts.
type Service struct {
	secret      []byte
	issuer      string
	audience    string
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// New builds a token service. rememberTTL backs the durable persistence mode
// of the login form; sessionTTL backs the session-scoped mode.
func New(secret []byte, issuer, audience string, sessionTTL, rememberTTL time.Duration) *Service {
	return &Service{
		secret:      secret,
		issuer:      issuer,
		audience:    audience,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

// Issue mints a token for the given principal.
func (s *Service) Issue(userID, email, store string, manager, remember bool) (string, error) {
	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:   email,
		Store:   store,
		Manager: manager,
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, enforcing the signing method and the
// issuer/audience pairing, with a small leeway for clock drift.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("el token de acceso no es válido")
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("el token de acceso no es válido")
	}
	if s.audience != "" && !containsAudience(claims.Audience, s.audience) {
		return nil, fmt.Errorf("el token de acceso no es válido")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("el token de acceso no es válido")
	}

	return claims, nil
}

func containsAudience(audience jwt.ClaimStrings, expected string) bool {
	for _, value := range audience {
		if value == expected {
			return true
		}
	}
	return false
}
