package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7540/vault-api-service/internal/types"
)

type testRequest struct {
	id          string
	status      types.RequestStatus
	kind        types.RequestType
	amount      string
	txHash      string
	requestedAt time.Time
}

func (r testRequest) GetStatus() types.RequestStatus { return r.status }
func (r testRequest) GetType() types.RequestType     { return r.kind }
func (r testRequest) GetRequestedAt() time.Time      { return r.requestedAt }
func (r testRequest) SearchableFields() []string {
	return []string{r.id, r.amount, r.txHash}
}

var filterNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sampleRequests() []testRequest {
	return []testRequest{
		{id: "1", status: types.Pending, kind: types.DepositRequest, amount: "10", requestedAt: filterNow.Add(-time.Hour)},
		{id: "2", status: types.Approved, kind: types.DepositRequest, amount: "2.5", requestedAt: filterNow.Add(-48 * time.Hour)},
		{id: "3", status: types.Pending, kind: types.RedeemRequest, amount: "7", txHash: "0xABCdef", requestedAt: filterNow.Add(-10 * 24 * time.Hour)},
		{id: "4", status: types.Finalized, kind: types.RedeemRequest, amount: "100", requestedAt: filterNow.Add(-40 * 24 * time.Hour)},
	}
}

func ids(items []testRequest) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.id)
	}
	return out
}

func TestStatusFilter(t *testing.T) {
	filter, err := NewRequestFilter("pending", "all", "", "all", filterNow)
	require.NoError(t, err)
	result := FilterRequests(sampleRequests(), filter)
	assert.Equal(t, []string{"1", "3"}, ids(result))
	for _, r := range result {
		assert.Equal(t, types.Pending, r.status)
	}
}

func TestTypeFilter(t *testing.T) {
	filter, err := NewRequestFilter("", "redeem", "", "", filterNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, ids(FilterRequests(sampleRequests(), filter)))
}

func TestCombinedFiltersIntersect(t *testing.T) {
	statusOnly, err := NewRequestFilter("pending", "", "", "", filterNow)
	require.NoError(t, err)
	typeOnly, err := NewRequestFilter("", "deposit", "", "", filterNow)
	require.NoError(t, err)
	both, err := NewRequestFilter("pending", "deposit", "", "", filterNow)
	require.NoError(t, err)

	requests := sampleRequests()
	byStatus := ids(FilterRequests(requests, statusOnly))
	byType := ids(FilterRequests(requests, typeOnly))

	var intersection []string
	for _, id := range byStatus {
		if Contains(byType, id) {
			intersection = append(intersection, id)
		}
	}
	assert.Equal(t, intersection, ids(FilterRequests(requests, both)))
	assert.Equal(t, []string{"1"}, intersection)
}

func TestSearchFilter(t *testing.T) {
	filter, err := NewRequestFilter("", "", "abcDEF", "", filterNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(FilterRequests(sampleRequests(), filter)))

	filter, err = NewRequestFilter("", "", "2.5", "", filterNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(FilterRequests(sampleRequests(), filter)))
}

func TestTimeframeFilter(t *testing.T) {
	tests := map[string][]string{
		"1d":  {"1"},
		"7d":  {"1", "2"},
		"30d": {"1", "2", "3"},
		"all": {"1", "2", "3", "4"},
	}
	for timeframe, expected := range tests {
		filter, err := NewRequestFilter("", "", "", timeframe, filterNow)
		require.NoError(t, err)
		assert.Equal(t, expected, ids(FilterRequests(sampleRequests(), filter)), timeframe)
	}
}

func TestInvalidFilterValues(t *testing.T) {
	_, err := NewRequestFilter("unknown", "", "", "", filterNow)
	assert.Error(t, err)
	_, err = NewRequestFilter("", "mint", "", "", filterNow)
	assert.Error(t, err)
	_, err = NewRequestFilter("", "", "", "2d", filterNow)
	assert.Error(t, err)
}
