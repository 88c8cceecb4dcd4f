package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{season}/standings", handler.GetSeasonStandings)
	mux.HandleFunc("GET /v1/seasons/{season}/leagues/{league}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/players/{discordID}", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/players/{discordID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/players/{discordID}/history", handler.GetPlayerHistory)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/ingest", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunIngestJob)))
	mux.Handle("POST /v1/internal/jobs/resync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunResyncJob)))
}
