package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
	publicapp "github.com/rewax-co/survey-services/api/internal/public/application"
	"github.com/rewax-co/survey-services/api/internal/public/domain"
)

// surveyCreateHandler recibe el formulario público. El slug de tienda puede
// venir en el cuerpo o como query param ?store= (el QR de cada tienda apunta
// a la encuesta con ese parámetro).
func (h *Handler) surveyCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createSurveyRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, fmt.Sprintf("el formato de la solicitud no es válido: %v", err))
			return
		}

		store := strings.TrimSpace(req.Store)
		if store == "" {
			store = strings.TrimSpace(r.URL.Query().Get("store"))
		}

		cmd := publicapp.SubmitSurveyCommand{
			Store:        store,
			Tiempo:       req.Tiempo,
			Presentacion: req.Presentacion,
			Calidad:      req.Calidad,
			Confirmacion: req.Confirmacion,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		survey, err := h.surveyCommands.Submit(ctx, cmd)
		if err != nil {
			var vErr domain.ValidationError
			if errors.As(err, &vErr) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("no se pudo guardar la encuesta: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo guardar la encuesta, intenta de nuevo")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, surveyResponse{
			ID:           survey.ID,
			Store:        survey.Store,
			Tiempo:       survey.Answers.Tiempo.String(),
			Presentacion: survey.Answers.Presentacion.Int(),
			Calidad:      survey.Answers.Calidad.String(),
			Confirmacion: survey.Answers.Confirmacion,
			GlobalScore:  survey.GlobalScore,
			Status:       survey.Status,
			Timestamp:    survey.CreatedAt,
		})
	}
}
