package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	adminapp "github.com/rewax-co/survey-services/api/internal/admin/application"
	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
)

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req loginRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "el formato de la solicitud no es válido")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		token, viewer, err := h.authService.Login(ctx, req.Email, req.Password, req.Remember)
		if err != nil {
			if errors.Is(err, adminapp.ErrInvalidCredentials) {
				common.WriteError(h.logger, w, http.StatusUnauthorized, err.Error())
				return
			}
			h.logger.Printf("fallo de login para %s: %v", req.Email, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo iniciar sesión, intenta de nuevo")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, loginResponse{
			Token: token,
			Viewer: viewerResponse{
				Email:   viewer.Email,
				Store:   viewer.Store,
				Manager: viewer.Manager,
			},
		})
	}
}

// meHandler expone la identidad vigente; el frontend la observa al cargar
// para decidir entre login y tablero.
func (h *Handler) meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo leer la sesión")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, viewerResponse{
			Email:   user.Email,
			Store:   user.Store,
			Manager: user.Manager,
		})
	}
}

func (h *Handler) passwordChangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo leer la sesión")
			return
		}

		defer r.Body.Close()
		var req passwordChangeRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "el formato de la solicitud no es válido")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := h.authService.ChangePassword(ctx, user.Email, user.IssuedAt, req.NewPassword)
		switch {
		case err == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
		case errors.Is(err, adminapp.ErrWeakPassword):
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminapp.ErrStaleSession):
			common.WriteError(h.logger, w, http.StatusForbidden, err.Error())
		default:
			h.logger.Printf("fallo al cambiar contraseña de %s: %v", user.Email, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo actualizar la contraseña")
		}
	}
}
