package httpapi

import "net/http"

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	week, err := h.resolveWeek(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.gameService.ListByWeek(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(games))
}
