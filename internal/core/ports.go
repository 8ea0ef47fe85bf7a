package core

import (
	"context"
	"walletscan/internal/etherscan"
	"walletscan/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveQueryResult(ctx context.Context, query *repository.SearchQuery, transactions []repository.Transaction) (int64, error)
	ReadPage(ctx context.Context, address string, start, end uint64, offset, limit int) ([]repository.Transaction, int64, error)
	DeleteQuery(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name HeadResolver . HeadResolver
type HeadResolver interface {
	CurrentHead(ctx context.Context) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name TransactionFetcher . TransactionFetcher
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, address string, start, end uint64) (etherscan.FetchResult, error)
}

//counterfeiter:generate -o fake -fake-name PayloadCache . PayloadCache
type PayloadCache interface {
	Store(address string, start, end uint64, payload []byte) (string, error)
	Load(address string, start, end uint64) ([]byte, error)
}
