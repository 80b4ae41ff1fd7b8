package handlers

import (
	"net/http"

	"github.com/erc7540/vault-api-service/internal/types"
)

// HealthCheck @Summary Health check
// @Description Pings the database and the chain node
// @Produce json
// @Success 200 {object} PublicResponse[string] "Server is up and running"
// @Failure 500 {object} types.Error "Error: Internal Service Error"
// @Router /healthcheck [get]
func (h *Handler) HealthCheck(request *http.Request) (*Result, *types.Error) {
	err := h.services.DoHealthCheck(request.Context())
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	return NewResult("Server is up and running"), nil
}
