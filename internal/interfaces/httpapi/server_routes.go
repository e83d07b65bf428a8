package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/week", handler.GetWeek)
	mux.HandleFunc("PUT /v1/week", handler.SelectWeek)

	mux.HandleFunc("GET /v1/lineups", handler.GetLineups)
	mux.HandleFunc("GET /v1/games", handler.ListGames)

	mux.HandleFunc("GET /v1/bets", handler.GetBets)
	mux.HandleFunc("POST /v1/bets", handler.SubmitBet)
	mux.HandleFunc("DELETE /v1/bets", handler.ClearBets)

	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
}
