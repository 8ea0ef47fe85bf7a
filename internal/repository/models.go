package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type SearchQuery struct {
	ID            uint          `gorm:"primaryKey"`
	WalletAddress string        `gorm:"size:42;not null;index"` // 0x + 40 hex chars
	StartBlock    uint64        `gorm:"not null"`
	EndBlock      uint64        `gorm:"not null"`
	CreatedAt     time.Time     `gorm:"not null"`
	Transactions  []Transaction `gorm:"foreignKey:QueryID;constraint:OnDelete:CASCADE"`
}

type Transaction struct {
	ID                    uint            `gorm:"primaryKey"`
	QueryID               uint            `gorm:"not null;index"`               // query that first stored this hash
	SearchedWalletAddress string          `gorm:"size:42;not null;index"`       // address the query asked for
	Hash                  string          `gorm:"size:66;not null;uniqueIndex"` // 0x + 64 hex chars
	FromAddress           string          `gorm:"size:42;not null"`
	ToAddress             *string         `gorm:"size:42"`                     // nil for contract creation
	Value                 decimal.Decimal `gorm:"type:numeric(78,0);not null"` // wei
	Timestamp             time.Time       `gorm:"not null"`
	BlockNumber           uint64          `gorm:"not null;index"`
	TxReceiptStatus       string          `gorm:"size:1;not null"` // 1 (success) or 0 (failure)
	GasUsed               uint64          `gorm:"not null"`
	TransactionType       string          `gorm:"size:50;not null"`
}
