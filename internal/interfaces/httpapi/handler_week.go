package httpapi

import "net/http"

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeek")
	defer span.End()

	current, err := h.weekService.Current(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get week failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekDTO{Week: current, MaxWeek: h.weekService.MaxWeek()})
}

func (h *Handler) SelectWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectWeek")
	defer span.End()

	var req selectWeekRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	selected, err := h.weekService.Select(ctx, req.Week)
	if err != nil {
		h.logger.WarnContext(ctx, "select week failed", "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekDTO{Week: selected, MaxWeek: h.weekService.MaxWeek()})
}
