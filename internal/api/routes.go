package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/erc7540/vault-api-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Get("/v1/session", registerHandler(handlers.GetSession))
	r.Post("/v1/session/connect", registerHandler(handlers.ConnectWallet))
	r.Post("/v1/session/disconnect", registerHandler(handlers.DisconnectWallet))

	r.Get("/v1/vaults", registerHandler(handlers.ListVaults))
	r.Get("/v1/vaults/{vault_id}", registerHandler(handlers.GetVault))
	r.Get("/v1/vaults/{vault_id}/convert", registerHandler(handlers.ConvertAmount))
	r.Get("/v1/vaults/{vault_id}/requests", registerHandler(handlers.ListRequests))
	r.Post("/v1/vaults/{vault_id}/requests", registerHandler(handlers.SubmitRequest))
	r.Post("/v1/vaults/{vault_id}/requests/finalize", registerHandler(handlers.FinalizeRequest))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
