package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// rows per INSERT statement, well below postgres' 65535 bind parameter limit
const insertBatchSize = 1000

// pgIntegrityClass is the SQLSTATE class for integrity constraint violations.
const pgIntegrityClass = "23"

type txKey struct{}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

// Ping checks that the database is reachable.
func (f *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// WithTransaction runs fn inside a database transaction. Storage calls made
// with the context passed to fn join that transaction; any error returned by
// fn rolls it back.
func (f *PostgresDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := f.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		return fmt.Errorf("transaction: %w", err)
	}

	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if err := f.conn(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", classify(err))
	}

	return nil
}

// InsertOnConflictDoNothing inserts records and silently skips every row that
// collides on conflictColumn. It returns the number of rows inserted.
func (f *PostgresDB) InsertOnConflictDoNothing(ctx context.Context, conflictColumn string, records any) (int64, error) {
	tx := f.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: conflictColumn}},
			DoNothing: true,
		}).
		CreateInBatches(records, insertBatchSize)
	if tx.Error != nil {
		return 0, fmt.Errorf("insert on conflict: %w", classify(tx.Error))
	}

	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteBy(ctx context.Context, column string, value any, model any) error {
	tx := f.conn(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting record by %q: %w", column, classify(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (f *PostgresDB) CountWhere(ctx context.Context, model any, query string, args ...any) (int64, error) {
	var count int64
	err := f.conn(ctx).Model(model).Where(query, args...).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}

	return count, nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, dest any, order string, offset, limit int, query string, args ...any) error {
	tx := f.conn(ctx).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("getting records: %w", err)
	}

	return nil
}

func (f *PostgresDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return f.DB.WithContext(ctx)
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgIntegrityClass {
		return fmt.Errorf("%w: %s (%s): %w", ErrConstraintViolation, pgErr.ConstraintName, pgErr.Code, err)
	}
	return err
}
