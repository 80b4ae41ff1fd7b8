package handlers

import (
	"context"
	"net/http"

	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/services"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data       T                            `json:"data"`
	Pagination *services.RequestsPagination `json:"pagination,omitempty"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResultWithPagination returns a successful result carrying the page details
func NewResultWithPagination[T any](data T, pagination *services.RequestsPagination) *Result {
	res := &PublicResponse[T]{Data: data, Pagination: pagination}
	return &Result{Data: res, Status: http.StatusOK}
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}
