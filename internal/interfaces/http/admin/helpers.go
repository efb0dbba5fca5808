package admin

import (
	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
)

// surveyDomainToResponse proyecta el registro de dominio a la fila que pinta
// el tablero, con el puntaje efectivo y la marca de baja satisfacción.
func surveyDomainToResponse(survey admindomain.Survey) surveyItemResponse {
	return surveyItemResponse{
		ID:           survey.ID,
		Store:        survey.Store,
		Tiempo:       survey.Tiempo,
		Presentacion: survey.Presentacion,
		Calidad:      survey.Calidad,
		Confirmacion: survey.Confirmacion,
		GlobalScore:  survey.GlobalScore,
		Score:        survey.EffectiveScore(),
		LowScore:     survey.LowScore(),
		Status:       string(survey.Status),
		ClientName:   survey.ClientName,
		DaysProcess:  survey.DaysProcess,
		Timestamp:    survey.CreatedAt,
	}
}

func surveyItemsFromDomain(surveys []admindomain.Survey) []surveyItemResponse {
	items := make([]surveyItemResponse, 0, len(surveys))
	for _, survey := range surveys {
		items = append(items, surveyDomainToResponse(survey))
	}
	return items
}

// viewerFromUser reconstruye el Viewer de dominio a partir del principal del
// token.
func viewerFromUser(user common.AuthenticatedUser) admindomain.Viewer {
	return admindomain.Viewer{
		Email:   user.Email,
		Manager: user.Manager,
		Store:   user.Store,
	}
}
