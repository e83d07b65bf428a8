package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	week := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("week")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: week must be an integer", usecase.ErrInvalidInput))
			return
		}
		week = value
	}

	dashboard, err := h.dashboardService.Get(ctx, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		Week:     dashboard.Week,
		User:     lineupToDTO(dashboard.User),
		Opponent: lineupToDTO(dashboard.Opponent),
		Pairs:    pairsToDTO(dashboard.Pairs),
		Games:    gamesToDTO(dashboard.Games),
	})
}
