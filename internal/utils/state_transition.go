package utils

import (
	"github.com/erc7540/vault-api-service/internal/types"
)

// QualifiedStatusesToFinalize returns the statuses a request must be in before
// the vault accepts a deposit/redeem settlement call for it.
func QualifiedStatusesToFinalize() []types.RequestStatus {
	return []types.RequestStatus{types.Approved}
}

// List of statuses to be ignored for finalize as it means the request has been settled already
var OutdatedStatusesForFinalize = []types.RequestStatus{types.Finalized}

// TerminalStatuses returns the statuses a request can no longer move out of
func TerminalStatuses() []types.RequestStatus {
	return []types.RequestStatus{types.Finalized, types.Rejected}
}
