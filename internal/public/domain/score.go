package domain

import (
	"math"
	"strings"
)

// Score converts a completed answer set into the global satisfaction score,
// a value in [1.0, 5.0] rounded to one decimal.
//
// El tiempo de entrega puntúa binario: cualquier demora vale 1, entregar a
// tiempo o antes vale 5 por igual. La calidad se decide por contención de
// subcadena sobre el texto de la opción, no por igualdad estricta; ambos
// chequeos corren en orden para que "No estoy" gane si llegara a aparecer
// junto a "esperaba más".
func Score(answers Answers) float64 {
	timeScore := 5
	if answers.Tiempo == TiempoDemora {
		timeScore = 1
	}

	qualityScore := 5
	if strings.Contains(answers.Calidad.String(), "esperaba más") {
		qualityScore = 3
	}
	if strings.Contains(answers.Calidad.String(), "No estoy") {
		qualityScore = 1
	}

	total := float64(timeScore + answers.Presentacion.Int() + qualityScore)
	return Round1(total / 3)
}

// Round1 rounds to one decimal place, the precision every score and KPI in
// the system is reported with.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}
