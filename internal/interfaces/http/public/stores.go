package public

import (
	"net/http"

	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
)

// storeListHandler publica el catálogo de slugs de tienda con que se etiquetan
// las encuestas; lo consume la herramienta que genera los códigos QR.
func (h *Handler) storeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, storeListResponse{Stores: h.stores})
	}
}
