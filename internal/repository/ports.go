package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	SaveToTable(ctx context.Context, records any) error
	InsertOnConflictDoNothing(ctx context.Context, conflictColumn string, records any) (int64, error)
	DeleteBy(ctx context.Context, column string, value any, model any) error
	CountWhere(ctx context.Context, model any, query string, args ...any) (int64, error)
	FindWhere(ctx context.Context, dest any, order string, offset, limit int, query string, args ...any) error
}
