package domain

import "strings"

// Viewer is the identity a dashboard request acts as. Managers see every
// store; anyone else is scoped to exactly one.
type Viewer struct {
	Email   string
	Manager bool
	Store   string
}

// NewViewerFromEmail derives the viewer from a staff email address: the
// account is a manager when the address contains "gerencia", and otherwise
// is scoped to the store named by the local part.
// La cuenta de cada tienda es <slug>@<dominio>, así que el scope sale del
// correo sin tabla de roles aparte.
func NewViewerFromEmail(email string) Viewer {
	normalized := strings.ToLower(strings.TrimSpace(email))
	local := normalized
	if at := strings.Index(normalized, "@"); at >= 0 {
		local = normalized[:at]
	}
	return Viewer{
		Email:   normalized,
		Manager: strings.Contains(normalized, "gerencia"),
		Store:   local,
	}
}

// CanSee applies the store-scoped access rule: a non-manager never sees
// another store's records, regardless of any filter state.
func (v Viewer) CanSee(survey Survey) bool {
	if v.Manager {
		return true
	}
	return survey.Store == v.Store
}
