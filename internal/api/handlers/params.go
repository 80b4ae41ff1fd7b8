package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"

	"github.com/erc7540/vault-api-service/internal/types"
)

const vaultIdParam = "vault_id"

func parseVaultIdParam(request *http.Request) (string, *types.Error) {
	vaultId := strings.TrimSpace(chi.URLParam(request, vaultIdParam))
	if vaultId == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "vault_id is required")
	}
	return vaultId, nil
}

// parseOptionalIntQuery returns 0 for an absent parameter.
func parseOptionalIntQuery(request *http.Request, name string) (int, *types.Error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, name+" must be a positive integer",
		)
	}
	return value, nil
}

func parseRequiredQuery(request *http.Request, name string) (string, *types.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, name+" is required")
	}
	return value, nil
}

func parseJSONPayload[T any](request *http.Request) (*T, *types.Error) {
	payload := new(T)
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return payload, nil
}
