package services

import (
	"context"
	"net/http"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/db/model"
	"github.com/erc7540/vault-api-service/internal/observability/tracing"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
)

type ListRequestsParams struct {
	User          string
	Status        string
	Type          string
	Search        string
	Timeframe     string
	Page          int
	PageSize      int
	PaginationKey string
}

type RequestsPagination struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	NextKey    string `json:"next_key"`
}

// ListRequests returns one page of the user's requests in the vault, newest
// first, after applying the filters. Every call reads the contracts.
func (s *Services) ListRequests(
	ctx context.Context, vaultId string, params ListRequestsParams,
) ([]VaultRequestPublic, *RequestsPagination, *types.Error) {
	filter, filterErr := utils.NewRequestFilter(params.Status, params.Type, params.Search, params.Timeframe, s.now())
	if filterErr != nil {
		return nil, nil, types.NewError(http.StatusBadRequest, types.BadRequest, filterErr)
	}
	page, pageSize, err := s.resolvePage(params)
	if err != nil {
		return nil, nil, err
	}
	user, _, err := s.resolveUser(params.User, true)
	if err != nil {
		return nil, nil, err
	}
	info, err := s.resolveVault(ctx, vaultId)
	if err != nil {
		return nil, nil, err
	}

	requests, err := tracing.WrapWithSpan(ctx, "fetchUserRequests", func() ([]VaultRequestPublic, *types.Error) {
		return s.fetchUserRequests(ctx, *info, user)
	})
	if err != nil {
		return nil, nil, err
	}

	result := utils.Paginate(utils.FilterRequests(requests, filter), page, pageSize)
	pagination := &RequestsPagination{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}
	if result.Page < result.TotalPages {
		token, tokenErr := utils.GetPaginationToken(utils.PageToken{Page: result.Page + 1})
		if tokenErr != nil {
			return nil, nil, types.NewInternalServiceError(tokenErr)
		}
		pagination.NextKey = token
	}
	return result.Items, pagination, nil
}

func (s *Services) resolvePage(params ListRequestsParams) (int, int, *types.Error) {
	page := params.Page
	if params.PaginationKey != "" {
		token, err := utils.DecodePaginationToken[utils.PageToken](params.PaginationKey)
		if err != nil || token.Page < 1 {
			return 0, 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid pagination key")
		}
		page = token.Page
	}
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return 0, 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "page must be positive")
	}

	pageSize := params.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.Requests.DefaultPageSize
	}
	if pageSize < 0 {
		return 0, 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "page_size must be positive")
	}
	if pageSize > s.cfg.Requests.MaxPageSize {
		pageSize = s.cfg.Requests.MaxPageSize
	}
	return page, pageSize, nil
}

// fetchUserRequests reads both request kinds of user and the token decimals
// concurrently, reconciles them and attaches the journaled tx hashes.
func (s *Services) fetchUserRequests(
	ctx context.Context, info chain.VaultInfo, user common.Address,
) ([]VaultRequestPublic, *types.Error) {
	var (
		tokens   *vaultTokens
		deposits []chain.RequestRecord
		redeems  []chain.RequestRecord
		journal  []model.RequestJournalDocument
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.loadVaultTokens(gctx, info)
		if err != nil {
			return err
		}
		tokens = t
		return nil
	})
	g.Go(func() error {
		records, err := s.ChainClient.GetRequestsByUser(gctx, types.DepositRequest, info.VaultAddress, user)
		if err != nil {
			return err
		}
		deposits = records
		return nil
	})
	g.Go(func() error {
		records, err := s.ChainClient.GetRequestsByUser(gctx, types.RedeemRequest, info.VaultAddress, user)
		if err != nil {
			return err
		}
		redeems = records
		return nil
	})
	g.Go(func() error {
		entries, err := s.DbClient.FindJournalEntries(gctx, info.VaultAddress.Hex(), user.Hex())
		if err != nil {
			// hashes are optional, the chain stays the source of truth
			log.Ctx(ctx).Warn().Err(err).Msg("failed to read request journal")
			return nil
		}
		journal = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, toTypesError(err)
	}

	entries := make(map[string]*model.RequestJournalDocument, len(journal))
	for i := range journal {
		entries[journal[i].Id] = &journal[i]
	}

	now := s.now()
	requests := make([]VaultRequestPublic, 0, len(deposits)+len(redeems))
	for _, records := range [][]chain.RequestRecord{deposits, redeems} {
		for _, record := range records {
			request := reconcileRequest(record, tokens.tokenFor(record.Kind).Decimals, now)
			id := model.BuildJournalId(info.VaultAddress.Hex(), record.Kind.ToString(), request.RequestId)
			applyJournal(&request, entries[id])
			requests = append(requests, request)
		}
	}
	sortRequests(requests)
	return requests, nil
}

// sortRequests orders by timestamp descending, ties broken by request id descending.
func sortRequests(requests []VaultRequestPublic) {
	sort.SliceStable(requests, func(i, j int) bool {
		if requests[i].Timestamp != requests[j].Timestamp {
			return requests[i].Timestamp > requests[j].Timestamp
		}
		return requests[i].id.Cmp(requests[j].id) > 0
	})
}

func findRequest(requests []VaultRequestPublic, kind types.RequestType, requestId string) *VaultRequestPublic {
	for i := range requests {
		if requests[i].Type == kind && requests[i].RequestId == requestId {
			return &requests[i]
		}
	}
	return nil
}
