package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/rewax-co/survey-services/api/internal/admin/application"
	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *Handler) surveyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo leer la sesión")
			return
		}

		query := r.URL.Query()
		month := strings.TrimSpace(query.Get("month"))
		storeFilter := strings.TrimSpace(query.Get("store"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		surveys, err := h.surveyService.List(ctx, viewerFromUser(user), month, storeFilter)
		if err != nil {
			h.logger.Printf("fallo al listar encuestas: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudieron cargar las encuestas")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, surveyListResponse{Items: surveyItemsFromDomain(surveys)})
	}
}

func (h *Handler) surveyDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo leer la sesión")
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "no se indicó la encuesta")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		survey, err := h.surveyService.Detail(ctx, viewerFromUser(user), idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, adminapp.ErrSurveyNotVisible) {
				common.WriteError(h.logger, w, http.StatusNotFound, "la encuesta no existe")
				return
			}
			h.logger.Printf("fallo al cargar encuesta id=%s err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo cargar la encuesta")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, surveyDomainToResponse(*survey))
	}
}

// surveyCompleteHandler cierra un registro pendiente: nombre del cliente y
// las dos fechas son obligatorios y se rechazan antes de cualquier escritura.
func (h *Handler) surveyCompleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo leer la sesión")
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "no se indicó la encuesta")
			return
		}

		defer r.Body.Close()
		var req completeSurveyRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "el formato de la solicitud no es válido")
			return
		}

		cmd := adminapp.CompleteSurveyCommand{
			ClientName:    req.ClientName,
			ReceptionDate: req.ReceptionDate,
			DeliveryDate:  req.DeliveryDate,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		survey, err := h.surveyService.Complete(ctx, viewerFromUser(user), idParam, cmd)
		switch {
		case err == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, surveyDomainToResponse(*survey))
		case errors.Is(err, mongo.ErrNoDocuments), errors.Is(err, adminapp.ErrSurveyNotVisible):
			common.WriteError(h.logger, w, http.StatusNotFound, "la encuesta no existe")
		case errors.Is(err, admindomain.ErrAlreadyCompleted):
			common.WriteError(h.logger, w, http.StatusConflict, err.Error())
		case errors.Is(err, adminapp.ErrManagerCannotComplete):
			common.WriteError(h.logger, w, http.StatusForbidden, err.Error())
		default:
			var vErr admindomain.ValidationError
			if errors.As(err, &vErr) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("fallo al completar encuesta id=%s err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo completar la encuesta")
		}
	}
}
