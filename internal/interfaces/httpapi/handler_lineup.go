package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

func (h *Handler) GetLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineups")
	defer span.End()

	mode, err := usecase.ParseLineupMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := h.resolveWeek(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.lineupService.Get(ctx, mode, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineups failed", "mode", mode, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := lineupsDTO{
		Week:     result.Week,
		Mode:     string(result.Mode),
		User:     lineupToDTO(result.User),
		Opponent: lineupToDTO(result.Opponent),
	}
	if result.Mode == usecase.LineupModeBoth {
		out.Pairs = pairsToDTO(result.Pairs)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
