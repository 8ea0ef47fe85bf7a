package repository

import (
	"context"
	"errors"
	"fmt"
	"walletscan/internal/db"
)

var ErrQueryNotFound error = errors.New("search query not found")

const rangeFilter = "searched_wallet_address = ? AND block_number BETWEEN ? AND ?"

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) MigrateTables() error {
	err := r.db.MigrateTable(&SearchQuery{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SaveQueryResult stores the query row and every transaction whose hash is not
// stored yet in a single database transaction. It returns the number of rows
// actually inserted.
func (r *TransactionRepository) SaveQueryResult(ctx context.Context, query *SearchQuery, transactions []Transaction) (int64, error) {
	var inserted int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context) error {
		if err := createQuery(ctx, r.db, query); err != nil {
			return err
		}

		var err error
		inserted, err = bulkUpsert(ctx, r.db, query.ID, query.WalletAddress, transactions)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("save query result: %w", err)
	}

	return inserted, nil
}

func (r *TransactionRepository) CreateQuery(ctx context.Context, query *SearchQuery) error {
	return createQuery(ctx, r.db, query)
}

// BulkUpsert inserts transactions under queryID, skipping hashes that are
// already stored. Existing rows keep their original values and query.
func (r *TransactionRepository) BulkUpsert(ctx context.Context, queryID uint, address string, transactions []Transaction) (int64, error) {
	return bulkUpsert(ctx, r.db, queryID, address, transactions)
}

// ReadPage returns the transactions stored for the searched address with a
// block number in [start, end], newest block first, together with the total
// number of matching rows.
func (r *TransactionRepository) ReadPage(ctx context.Context, address string, start, end uint64, offset, limit int) ([]Transaction, int64, error) {
	total, err := r.db.CountWhere(ctx, &Transaction{}, rangeFilter, address, start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	transactions := []Transaction{}
	if total == 0 || offset < 0 || int64(offset) >= total {
		return transactions, total, nil
	}

	err = r.db.FindWhere(ctx, &transactions, "block_number DESC, id DESC", offset, limit, rangeFilter, address, start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("find transactions: %w", err)
	}

	return transactions, total, nil
}

// DeleteQuery removes a query; the database cascades the delete to the
// transactions it owns.
func (r *TransactionRepository) DeleteQuery(ctx context.Context, id uint) error {
	err := r.db.DeleteBy(ctx, "id", id, &SearchQuery{})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrQueryNotFound
		}
		return fmt.Errorf("delete query: %w", err)
	}

	return nil
}

func createQuery(ctx context.Context, store Storage, query *SearchQuery) error {
	err := store.SaveToTable(ctx, query)
	if err != nil {
		return fmt.Errorf("create query: %w", err)
	}

	return nil
}

func bulkUpsert(ctx context.Context, store Storage, queryID uint, address string, transactions []Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	records := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		tx.ID = 0
		tx.QueryID = queryID
		tx.SearchedWalletAddress = address
		records[i] = tx
	}

	inserted, err := store.InsertOnConflictDoNothing(ctx, "hash", &records)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert transactions: %w", err)
	}

	return inserted, nil
}
