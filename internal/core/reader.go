package core

import (
	"context"
	"fmt"
	"math"
	"walletscan/internal/repository"

	"github.com/shopspring/decimal"
)

const weiDecimals = 18

// Page returns one page of stored transactions for the address and range,
// newest block first. Page numbers below 1 are treated as page 1; pages past
// the end come back empty with the totals still filled in.
func (i *Ingester) Page(ctx context.Context, address string, start, end any, page int) (PageView, error) {
	wallet, err := NormalizeAddress(address)
	if err != nil {
		return PageView{}, err
	}

	blocks, err := ValidateBlockRange(start, end)
	if err != nil {
		return PageView{}, err
	}

	if page < 1 {
		page = 1
	}
	pageSize := i.opts.PageSize
	offset := math.MaxInt
	if page-1 <= math.MaxInt/pageSize {
		offset = (page - 1) * pageSize
	}

	transactions, total, err := i.repo.ReadPage(ctx, wallet, blocks.Start, blocks.End, offset, pageSize)
	if err != nil {
		return PageView{}, fmt.Errorf("%w: read page: %w", ErrPersistence, err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	items := make([]TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, toView(tx))
	}

	i.metrics.PageServed()

	return PageView{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

func toView(tx repository.Transaction) TransactionView {
	return TransactionView{
		Hash:            tx.Hash,
		From:            tx.FromAddress,
		To:              tx.ToAddress,
		ValueEth:        WeiToEther(tx.Value),
		Timestamp:       tx.Timestamp.UTC().Format(TimestampLayout),
		BlockNumber:     tx.BlockNumber,
		Status:          statusLabel(tx.TxReceiptStatus),
		GasUsed:         tx.GasUsed,
		TransactionType: TransactionType(tx.TransactionType),
	}
}

// WeiToEther converts a wei amount to ether without rounding. A zero or unset
// amount yields zero.
func WeiToEther(wei decimal.Decimal) decimal.Decimal {
	if wei.IsZero() {
		return decimal.Zero
	}
	return wei.Shift(-weiDecimals)
}

func statusLabel(receiptStatus string) string {
	if receiptStatus == "1" {
		return StatusSuccess
	}
	return StatusFailed
}
