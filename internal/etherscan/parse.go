package etherscan

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

func parseTransaction(raw rawTransaction) (Transaction, error) {
	if raw.Hash == "" {
		return Transaction{}, fmt.Errorf("%w: transaction without hash", ErrMalformedResponse)
	}

	value := new(big.Int)
	if raw.Value != "" {
		if _, ok := value.SetString(raw.Value, 10); !ok || value.Sign() < 0 {
			return Transaction{}, fmt.Errorf("%w: transaction %s: value %q", ErrMalformedResponse, raw.Hash, raw.Value)
		}
	}

	ts, err := strconv.ParseInt(raw.TimeStamp, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: transaction %s: timestamp %q", ErrMalformedResponse, raw.Hash, raw.TimeStamp)
	}

	blockNumber, err := strconv.ParseUint(raw.BlockNumber, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: transaction %s: block number %q", ErrMalformedResponse, raw.Hash, raw.BlockNumber)
	}

	gasUsed, err := strconv.ParseUint(raw.GasUsed, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: transaction %s: gas used %q", ErrMalformedResponse, raw.Hash, raw.GasUsed)
	}

	return Transaction{
		Hash:            strings.ToLower(raw.Hash),
		From:            strings.ToLower(raw.From),
		To:              toPtr(strings.ToLower(raw.To)),
		Value:           value,
		Timestamp:       time.Unix(ts, 0).UTC(),
		BlockNumber:     blockNumber,
		TxReceiptStatus: raw.TxReceiptStatus,
		GasUsed:         gasUsed,
		Input:           raw.Input,
		MethodID:        raw.MethodID,
		FunctionName:    raw.FunctionName,
	}, nil
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
