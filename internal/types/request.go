package types

import "fmt"

type RequestStatus string

const (
	Pending   RequestStatus = "pending"
	Approved  RequestStatus = "approved"
	Finalized RequestStatus = "finalized"
	// Rejected has no contract signal yet, DeriveRequestStatus never returns it.
	Rejected RequestStatus = "rejected"
)

func (s RequestStatus) ToString() string {
	return string(s)
}

func FromStringToRequestStatus(s string) (RequestStatus, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "approved":
		return Approved, nil
	case "finalized":
		return Finalized, nil
	case "rejected":
		return Rejected, nil
	default:
		return "", fmt.Errorf("invalid request status: %s", s)
	}
}

// DeriveRequestStatus maps the two flags reported by the investment manager
// onto the display status. processed wins over claimable.
func DeriveRequestStatus(processed, claimable bool) RequestStatus {
	if processed {
		return Finalized
	}
	if claimable {
		return Approved
	}
	return Pending
}

// CanFinalize reports whether the finalize action may be offered for a request.
func CanFinalize(status RequestStatus) bool {
	return status == Approved
}

type RequestType string

const (
	DepositRequest RequestType = "deposit"
	RedeemRequest  RequestType = "redeem"
)

func (t RequestType) ToString() string {
	return string(t)
}

func FromStringToRequestType(s string) (RequestType, error) {
	switch s {
	case DepositRequest.ToString():
		return DepositRequest, nil
	case RedeemRequest.ToString():
		return RedeemRequest, nil
	default:
		return "", fmt.Errorf("invalid request type: %s", s)
	}
}
