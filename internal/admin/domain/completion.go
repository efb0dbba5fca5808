package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrAlreadyCompleted marks a completion attempt on a record that already
// left the pending state. The transition is one-way and happens once.
var ErrAlreadyCompleted = errors.New("la encuesta ya fue completada")

// ValidationError marks completion-form failures the caller can fix; the
// handlers answer 400 with the literal message.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const completionDateLayout = "2006-01-02"

// Completion is the validated outcome of the staff completion form: the
// client name plus the derived turnaround, ready to persist. The two dates
// are consumed here and never stored.
type Completion struct {
	ClientName  string
	DaysProcess int
}

// NewCompletion validates the three required fields and derives the
// turnaround days. Any missing field rejects the operation before a write
// can happen; partial updates never occur.
//
// El orden de las fechas no se valida a propósito: el cálculo usa el valor
// absoluto, igual que el tablero original.
func NewCompletion(clientName, receptionDate, deliveryDate string) (Completion, error) {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return Completion{}, ValidationError("el nombre del cliente es obligatorio")
	}

	reception, err := parseCompletionDate(receptionDate, "la fecha de recepción")
	if err != nil {
		return Completion{}, err
	}
	delivery, err := parseCompletionDate(deliveryDate, "la fecha de entrega")
	if err != nil {
		return Completion{}, err
	}

	return Completion{
		ClientName:  name,
		DaysProcess: TurnaroundDays(reception, delivery),
	}, nil
}

// TurnaroundDays computes whole days between the two instants, order
// independent, with fractional days rounding up.
func TurnaroundDays(reception, delivery time.Time) int {
	diff := delivery.Sub(reception)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func parseCompletionDate(value, label string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ValidationError(fmt.Sprintf("%s es obligatoria", label))
	}
	parsed, err := time.Parse(completionDateLayout, trimmed)
	if err != nil {
		return time.Time{}, ValidationError(fmt.Sprintf("%s no tiene el formato AAAA-MM-DD", label))
	}
	return parsed, nil
}
