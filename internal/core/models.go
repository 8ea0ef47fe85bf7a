package core

import (
	"github.com/shopspring/decimal"
)

const TimestampLayout = "2006-01-02 15:04:05"

const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

type Options struct {
	// RecentBlockThreshold is the newest block assumed to exist without asking
	// the explorer for the chain head.
	RecentBlockThreshold uint64
	PageSize             int
}

type IngestResult struct {
	QueryID       uint   `json:"query_id"`
	WalletAddress string `json:"wallet_address"`
	StartBlock    uint64 `json:"start_block"`
	EndBlock      uint64 `json:"end_block"`
	// Count is the number of records the explorer returned, including ones
	// that were already stored.
	Count    int   `json:"count"`
	Inserted int64 `json:"inserted"`
}

type PageView struct {
	Items      []TransactionView `json:"transactions"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
	HasPrev    bool              `json:"has_prev"`
	HasNext    bool              `json:"has_next"`
}

type TransactionView struct {
	Hash            string          `json:"hash"`
	From            string          `json:"from"`
	To              *string         `json:"to"`
	ValueEth        decimal.Decimal `json:"value_eth"`
	Timestamp       string          `json:"timestamp"`
	BlockNumber     uint64          `json:"block"`
	Status          string          `json:"status"`
	GasUsed         uint64          `json:"gas_used"`
	TransactionType TransactionType `json:"transaction_type"`
}
