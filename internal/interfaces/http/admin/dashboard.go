package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
)

// dashboardHandler corre el motor de agregación completo para el viewer del
// token: visibilidad por tienda, lista de meses, filtro de mes y KPIs.
func (h *Handler) dashboardHandler() http.HandlerFunc {
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

		dashboard, err := h.surveyService.Dashboard(ctx, viewerFromUser(user), month, storeFilter)
		if err != nil {
			h.logger.Printf("fallo al armar el tablero: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "no se pudo cargar el tablero")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, dashboardResponse{
			Months:        dashboard.Months,
			SelectedMonth: dashboard.SelectedMonth,
			KPIs: kpiResponse{
				SurveyCount:  dashboard.KPIs.SurveyCount,
				AvgScore:     dashboard.KPIs.AvgScore,
				Alert:        dashboard.KPIs.Alert,
				AvgDays:      dashboard.KPIs.AvgDays,
				PendingCount: dashboard.KPIs.PendingCount,
			},
			Items: surveyItemsFromDomain(dashboard.Records),
		})
	}
}
