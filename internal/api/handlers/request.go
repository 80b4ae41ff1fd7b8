package handlers

import (
	"net/http"

	"github.com/erc7540/vault-api-service/internal/services"
	"github.com/erc7540/vault-api-service/internal/types"
)

type SubmitRequestPayload struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type FinalizeRequestPayload struct {
	Type      string `json:"type"`
	RequestId string `json:"request_id"`
}

// ListRequests @Summary List user requests
// @Description Lists the deposit and redeem requests of a user in a vault, newest first
// @Produce json
// @Param vault_id path string true "Vault id or vault address"
// @Param user query string false "User address, defaults to the connected account"
// @Param status query string false "Request status" Enums(all, pending, approved, finalized, rejected)
// @Param type query string false "Request type" Enums(all, deposit, redeem)
// @Param search query string false "Matches request id, amount or transaction hashes"
// @Param timeframe query string false "Only requests made within the timeframe" Enums(all, 1d, 7d, 30d)
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Page size"
// @Param pagination_key query string false "Pagination key to fetch the next page"
// @Success 200 {object} PublicResponse[[]services.VaultRequestPublic]{array} "List of requests and pagination"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/vaults/{vault_id}/requests [get]
func (h *Handler) ListRequests(request *http.Request) (*Result, *types.Error) {
	vaultId, err := parseVaultIdParam(request)
	if err != nil {
		return nil, err
	}
	page, err := parseOptionalIntQuery(request, "page")
	if err != nil {
		return nil, err
	}
	pageSize, err := parseOptionalIntQuery(request, "page_size")
	if err != nil {
		return nil, err
	}

	query := request.URL.Query()
	requests, pagination, err := h.services.ListRequests(request.Context(), vaultId, services.ListRequestsParams{
		User:          query.Get("user"),
		Status:        query.Get("status"),
		Type:          query.Get("type"),
		Search:        query.Get("search"),
		Timeframe:     query.Get("timeframe"),
		Page:          page,
		PageSize:      pageSize,
		PaginationKey: query.Get("pagination_key"),
	})
	if err != nil {
		return nil, err
	}
	return NewResultWithPagination(requests, pagination), nil
}

// SubmitRequest godoc
// @Summary Submit a request
// @Description Approves the vault and submits a deposit or redeem request for the connected account.
// @Description Waits for the new request to show up on chain, up to the poll timeout.
// @Accept json
// @Produce json
// @Param vault_id path string true "Vault id or vault address"
// @Param payload body SubmitRequestPayload true "Request payload"
// @Success 200 {object} PublicResponse[services.SubmitRequestResult] "Submitted request"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 412 {object} types.Error "Error: Wallet not connected"
// @Failure 422 {object} types.Error "Error: Transaction reverted"
// @Router /v1/vaults/{vault_id}/requests [post]
func (h *Handler) SubmitRequest(request *http.Request) (*Result, *types.Error) {
	vaultId, err := parseVaultIdParam(request)
	if err != nil {
		return nil, err
	}
	payload, err := parseJSONPayload[SubmitRequestPayload](request)
	if err != nil {
		return nil, err
	}
	result, err := h.services.SubmitRequest(request.Context(), vaultId, payload.Type, payload.Amount)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// FinalizeRequest godoc
// @Summary Finalize a request
// @Description Claims an approved request of the connected account and returns the refreshed request list
// @Accept json
// @Produce json
// @Param vault_id path string true "Vault id or vault address"
// @Param payload body FinalizeRequestPayload true "Finalize payload"
// @Success 200 {object} PublicResponse[services.FinalizeRequestResult] "Finalized request"
// @Failure 403 {object} types.Error "Error: Request is not ready to be finalized"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Failure 412 {object} types.Error "Error: Wallet not connected"
// @Router /v1/vaults/{vault_id}/requests/finalize [post]
func (h *Handler) FinalizeRequest(request *http.Request) (*Result, *types.Error) {
	vaultId, err := parseVaultIdParam(request)
	if err != nil {
		return nil, err
	}
	payload, err := parseJSONPayload[FinalizeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	result, err := h.services.FinalizeRequest(request.Context(), vaultId, payload.Type, payload.RequestId)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}
