package domain

import (
	"fmt"
	"strings"
	"time"
)

// Opciones de respuesta tal como aparecen en el formulario. El texto literal
// importa: la calificación de calidad se decide por subcadenas (ver score.go).
const (
	TiempoAntes  = "Antes de la fecha"
	TiempoJusto  = "Justo a tiempo"
	TiempoDemora = "Hubo demora"

	CalidadUniforme     = "Uniforme y renovado"
	CalidadCumple       = "Cumple, pero esperaba más"
	CalidadNoSatisfecho = "No estoy satisfecho"
)

// GeneralStore tags submissions whose QR carried no recognised store slug.
const GeneralStore = "general"

// StatusPending is the lifecycle state every new submission starts in.
const StatusPending = "pending"

// ValidationError marks answer-set failures the caller can fix, as opposed
// to storage errors. Los handlers responden 400 con el mensaje literal.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

type Tiempo string

func NewTiempo(value string) (Tiempo, error) {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case TiempoAntes, TiempoJusto, TiempoDemora:
		return Tiempo(trimmed), nil
	}
	return "", ValidationError(fmt.Sprintf("respuesta de tiempo de entrega no reconocida: %q", value))
}

func (t Tiempo) String() string {
	return string(t)
}

type Calidad string

func NewCalidad(value string) (Calidad, error) {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case CalidadUniforme, CalidadCumple, CalidadNoSatisfecho:
		return Calidad(trimmed), nil
	}
	return "", ValidationError(fmt.Sprintf("respuesta de calidad no reconocida: %q", value))
}

func (c Calidad) String() string {
	return string(c)
}

// Presentacion is the 1-5 star rating for garment presentation.
type Presentacion int

func NewPresentacion(value int) (Presentacion, error) {
	if value < 1 || value > 5 {
		return 0, ValidationError("la presentación debe estar entre 1 y 5 estrellas")
	}
	return Presentacion(value), nil
}

func (p Presentacion) Int() int {
	return int(p)
}

// Answers is the complete answer set collected by the multi-step form.
type Answers struct {
	Tiempo       Tiempo
	Presentacion Presentacion
	Calidad      Calidad
	Confirmacion bool
}

// Validate re-checks the preconditions the form UI enforces by disabling
// controls, so the invariants hold even without that UI in front.
func (a Answers) Validate() error {
	if _, err := NewTiempo(a.Tiempo.String()); err != nil {
		return err
	}
	if _, err := NewPresentacion(a.Presentacion.Int()); err != nil {
		return err
	}
	if _, err := NewCalidad(a.Calidad.String()); err != nil {
		return err
	}
	if !a.Confirmacion {
		return ValidationError("debes confirmar el recibido antes de enviar")
	}
	return nil
}

// NormalizeStore lowercases a raw store parameter and maps anything outside
// the catalogue (including an absent parameter) to GeneralStore.
func NormalizeStore(raw string, catalogue []string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	for _, known := range catalogue {
		if slug == known {
			return slug
		}
	}
	return GeneralStore
}

// Survey is a freshly submitted record as seen by the public context.
type Survey struct {
	ID          string
	Store       string
	Answers     Answers
	GlobalScore float64
	Status      string
	CreatedAt   time.Time
}
