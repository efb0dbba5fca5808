package domain

import "time"

// Status is the lifecycle state of a survey record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Survey is the persisted record as the staff dashboard sees it.
// El registro se crea desde el flujo público y sólo muta una vez, al
// completarlo la tienda; store nunca cambia y es la única llave de acceso.
type Survey struct {
	ID           string
	Store        string
	Tiempo       string
	Presentacion int
	Calidad      string
	Confirmacion bool
	GlobalScore  *float64
	Status       Status
	ClientName   string
	DaysProcess  int
	CreatedAt    time.Time
}

// EffectiveScore returns the global score, falling back to the raw
// presentation stars for records created before scoring existed.
func (s Survey) EffectiveScore() float64 {
	if s.GlobalScore != nil {
		return *s.GlobalScore
	}
	return float64(s.Presentacion)
}

// LowScore flags rows highlighted as low satisfaction. Legacy records without
// a stored score are never flagged, matching the original dashboard.
func (s Survey) LowScore() bool {
	return s.GlobalScore != nil && *s.GlobalScore < 3
}

// Completed reports whether the record reached its terminal state.
func (s Survey) Completed() bool {
	return s.Status == StatusCompleted
}
