package handler

import (
	"context"
	"net/http"
	"walletscan/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Ingest(ctx context.Context, address string, start, end any) (core.IngestResult, error)
	Page(ctx context.Context, address string, start, end any, page int) (core.PageView, error)
	CachedPayload(ctx context.Context, address string, start, end any) ([]byte, error)
	DeleteQuery(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name HealthChecker . HealthChecker
type HealthChecker interface {
	Ping(ctx context.Context) error
}
