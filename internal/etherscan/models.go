package etherscan

import (
	"encoding/json"
	"math/big"
	"time"
)

// Outcome distinguishes a non-empty transaction list from an explicit
// "no transactions" answer. Errors are reported through the error return.
type Outcome int

const (
	OutcomeFound Outcome = iota + 1
	OutcomeEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

type FetchResult struct {
	Outcome      Outcome
	Transactions []Transaction
	// Payload is the upstream result array exactly as received.
	Payload json.RawMessage
}

// Transaction is an explorer record with its numeric fields already parsed.
type Transaction struct {
	Hash            string
	From            string
	To              *string
	Value           *big.Int // wei
	Timestamp       time.Time
	BlockNumber     uint64
	TxReceiptStatus string // "1" success, "0" failure, "" before receipts carried a status
	GasUsed         uint64
	Input           string
	MethodID        string
	FunctionName    string
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rawTransaction struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	TimeStamp       string `json:"timeStamp"`
	BlockNumber     string `json:"blockNumber"`
	TxReceiptStatus string `json:"txreceipt_status"`
	GasUsed         string `json:"gasUsed"`
	Input           string `json:"input"`
	MethodID        string `json:"methodId"`
	FunctionName    string `json:"functionName"`
}
