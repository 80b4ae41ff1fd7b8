package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/erc7540/vault-api-service/internal/types"
)

const filterAll = "all"

// RequestFilter narrows a request list. Zero values match everything.
type RequestFilter struct {
	Status types.RequestStatus
	Type   types.RequestType
	Search string
	From   time.Time
}

// FilterableRequest exposes the fields RequestFilter looks at.
type FilterableRequest interface {
	GetStatus() types.RequestStatus
	GetType() types.RequestType
	GetRequestedAt() time.Time
	// SearchableFields returns the values a search term is matched against.
	SearchableFields() []string
}

func NewRequestFilter(status, requestType, search, timeframe string, now time.Time) (*RequestFilter, error) {
	filter := &RequestFilter{Search: strings.ToLower(strings.TrimSpace(search))}

	if status != "" && status != filterAll {
		s, err := types.FromStringToRequestStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = s
	}

	if requestType != "" && requestType != filterAll {
		t, err := types.FromStringToRequestType(requestType)
		if err != nil {
			return nil, err
		}
		filter.Type = t
	}

	from, err := GetTimeframeStart(timeframe, now)
	if err != nil {
		return nil, fmt.Errorf("invalid timeframe %q, expected 1d, 7d, 30d or all", timeframe)
	}
	filter.From = from

	return filter, nil
}

func (f *RequestFilter) Matches(r FilterableRequest) bool {
	if f.Status != "" && r.GetStatus() != f.Status {
		return false
	}
	if f.Type != "" && r.GetType() != f.Type {
		return false
	}
	if !f.From.IsZero() && r.GetRequestedAt().Before(f.From) {
		return false
	}
	if f.Search != "" {
		for _, field := range r.SearchableFields() {
			if strings.Contains(strings.ToLower(field), f.Search) {
				return true
			}
		}
		return false
	}
	return true
}

// FilterRequests keeps the items matching every criterion of the filter,
// preserving their order.
func FilterRequests[T FilterableRequest](items []T, filter *RequestFilter) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if filter == nil || filter.Matches(item) {
			result = append(result, item)
		}
	}
	return result
}
