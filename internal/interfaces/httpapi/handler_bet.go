package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

func (h *Handler) GetBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBets")
	defer span.End()

	week, err := h.resolveWeek(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ledger, err := h.betService.Initialize(ctx, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "load bets failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ledgerToDTO(week, ledger))
}

func (h *Handler) SubmitBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBet")
	defer span.End()

	var req submitBetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	week := req.Week
	if week == 0 {
		current, err := h.weekService.Current(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		week = current
	} else if err := h.weekService.Validate(week); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.betService.Submit(ctx, usecase.SubmitBetInput{
		Week:   week,
		Team:   req.Team,
		Spread: req.spreadText(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit bet failed", "week", week, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := submitBetResponseDTO{Week: week, Accepted: result.Accepted, Team: result.Team, Display: result.Display}
	if result.Accepted {
		spread := result.Spread
		placedAt := result.PlacedAt
		out.Spread = &spread
		out.PlacedAt = &placedAt
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ClearBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearBets")
	defer span.End()

	week, err := h.resolveWeek(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ledger, err := h.betService.Clear(ctx, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "clear bets failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ledgerToDTO(week, ledger))
}
