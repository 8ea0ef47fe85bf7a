package core

import (
	"context"
	"errors"
	"fmt"
	"walletscan/internal/cache"
	"walletscan/internal/etherscan"
	"walletscan/internal/metrics"
	"walletscan/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ingester pulls an address's transactions for a block range from the
// explorer, classifies them and stores them, and serves stored transactions
// back page by page.
type Ingester struct {
	logs         *zap.SugaredLogger
	repo         Repository
	headResolver HeadResolver
	fetcher      TransactionFetcher
	cache        PayloadCache
	metrics      *metrics.Collector
	opts         Options
}

// NewIngester is a constructor function for the Ingester type.
func NewIngester(
	logger *zap.SugaredLogger,
	repo Repository,
	headResolver HeadResolver,
	fetcher TransactionFetcher,
	cache PayloadCache,
	collector *metrics.Collector,
	opts Options,
) *Ingester {
	return &Ingester{
		logs:         logger,
		repo:         repo,
		headResolver: headResolver,
		fetcher:      fetcher,
		cache:        cache,
		metrics:      collector,
		opts:         opts,
	}
}

// Ingest validates the request, caps the end block at the chain head when the
// range reaches past the recency threshold, fetches the address's transactions
// and persists them under a new search query. Hashes that are already stored
// are skipped. The returned Count is the number of records the explorer
// returned.
func (i *Ingester) Ingest(ctx context.Context, address string, start, end any) (IngestResult, error) {
	wallet, err := NormalizeAddress(address)
	if err != nil {
		return IngestResult{}, err
	}

	blocks, err := ValidateBlockRange(start, end)
	if err != nil {
		return IngestResult{}, err
	}

	blocks, err = i.capAtHead(ctx, blocks)
	if err != nil {
		i.metrics.IngestionOutcome(failureOutcome(err))
		return IngestResult{}, err
	}

	fetched, err := i.fetcher.FetchTransactions(ctx, wallet, blocks.Start, blocks.End)
	if err != nil {
		i.metrics.IngestionOutcome(failureOutcome(err))
		return IngestResult{}, fmt.Errorf("fetch transactions: %w", err)
	}

	i.logs.Infow("transactions fetched from explorer",
		"wallet_address", wallet,
		"start_block", blocks.Start,
		"end_block", blocks.End,
		"outcome", fetched.Outcome.String(),
		"count", len(fetched.Transactions))
	i.metrics.UpstreamRecords(len(fetched.Transactions))

	i.cachePayload(wallet, blocks, fetched)

	query := &repository.SearchQuery{
		WalletAddress: wallet,
		StartBlock:    blocks.Start,
		EndBlock:      blocks.End,
	}

	inserted, err := i.repo.SaveQueryResult(ctx, query, i.toRepoTransactions(wallet, fetched.Transactions))
	if err != nil {
		i.metrics.IngestionOutcome("error")
		return IngestResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	i.logs.Infow("search query stored",
		"query_id", query.ID,
		"wallet_address", wallet,
		"fetched", len(fetched.Transactions),
		"inserted", inserted)
	i.metrics.IngestionOutcome(fetched.Outcome.String())

	return IngestResult{
		QueryID:       query.ID,
		WalletAddress: wallet,
		StartBlock:    blocks.Start,
		EndBlock:      blocks.End,
		Count:         len(fetched.Transactions),
		Inserted:      inserted,
	}, nil
}

// DeleteQuery removes a stored query and the transactions it first stored.
func (i *Ingester) DeleteQuery(ctx context.Context, id uint) error {
	err := i.repo.DeleteQuery(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQueryNotFound) {
			return ErrQueryNotFound
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	i.logs.Infow("search query deleted", "query_id", id)
	return nil
}

// CachedPayload returns the explorer payload cached by an earlier ingestion of
// exactly this address and range, after the end block was capped.
func (i *Ingester) CachedPayload(ctx context.Context, address string, start, end any) ([]byte, error) {
	wallet, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	blocks, err := ValidateBlockRange(start, end)
	if err != nil {
		return nil, err
	}

	payload, err := i.cache.Load(wallet, blocks.Start, blocks.End)
	if err != nil {
		if errors.Is(err, cache.ErrNotCached) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("load cached payload: %w", err)
	}

	return payload, nil
}

func (i *Ingester) capAtHead(ctx context.Context, blocks BlockRange) (BlockRange, error) {
	if blocks.End <= i.opts.RecentBlockThreshold {
		return blocks, nil
	}

	head, err := i.headResolver.CurrentHead(ctx)
	if err != nil {
		return BlockRange{}, fmt.Errorf("resolve chain head: %w", err)
	}

	if head < blocks.End {
		i.logs.Infow("end block capped at chain head", "requested_end_block", blocks.End, "head", head)
		blocks.End = head
	}

	if blocks.Start > blocks.End {
		return BlockRange{}, fmt.Errorf("%w: start block %d, head %d", ErrStartBeyondHead, blocks.Start, head)
	}

	return blocks, nil
}

func (i *Ingester) cachePayload(wallet string, blocks BlockRange, fetched etherscan.FetchResult) {
	payload := []byte(fetched.Payload)
	if fetched.Outcome == etherscan.OutcomeEmpty || len(payload) == 0 {
		payload = []byte("[]")
	}

	path, err := i.cache.Store(wallet, blocks.Start, blocks.End, payload)
	if err != nil {
		i.logs.Errorw("failed to cache explorer payload",
			"error", err,
			"wallet_address", wallet,
			"start_block", blocks.Start,
			"end_block", blocks.End)
		return
	}

	i.logs.Debugw("explorer payload cached", "path", path)
}

func failureOutcome(err error) string {
	if etherscan.IsUpstreamError(err) {
		return "upstream_error"
	}
	return "error"
}

// toRepoTransactions classifies each record and drops repeated hashes, keeping
// the first occurrence.
func (i *Ingester) toRepoTransactions(wallet string, transactions []etherscan.Transaction) []repository.Transaction {
	seen := make(map[string]struct{}, len(transactions))
	records := make([]repository.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if _, ok := seen[tx.Hash]; ok {
			continue
		}
		seen[tx.Hash] = struct{}{}

		value := decimal.Zero
		if tx.Value != nil {
			value = decimal.NewFromBigInt(tx.Value, 0)
		}

		records = append(records, repository.Transaction{
			SearchedWalletAddress: wallet,
			Hash:                  tx.Hash,
			FromAddress:           tx.From,
			ToAddress:             tx.To,
			Value:                 value,
			Timestamp:             tx.Timestamp,
			BlockNumber:           tx.BlockNumber,
			TxReceiptStatus:       tx.TxReceiptStatus,
			GasUsed:               tx.GasUsed,
			TransactionType:       string(Classify(tx)),
		})
	}

	if dropped := len(transactions) - len(records); dropped > 0 {
		i.logs.Warnw("duplicate hashes in explorer response", "wallet_address", wallet, "dropped", dropped)
	}

	return records
}
