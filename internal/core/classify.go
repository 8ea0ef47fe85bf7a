package core

import (
	"strings"
	"walletscan/internal/etherscan"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

type TransactionType string

const (
	SimpleTransfer TransactionType = "simple_transfer"
	TokenTransfer  TransactionType = "token_transfer"
	ContractCall   TransactionType = "contract_call"
	Unknown        TransactionType = "unknown"
)

const emptyHex = "0x"

// ERC-20 transfer and transferFrom selectors (0xa9059cbb, 0x23b872dd).
var tokenTransferSelectors = map[string]struct{}{
	selector("transfer(address,uint256)"):             {},
	selector("transferFrom(address,address,uint256)"): {},
}

// Classify maps an explorer transaction to its type. Checks run in a fixed
// order and the first match wins; zero-value calls without data are Unknown.
func Classify(tx etherscan.Transaction) TransactionType {
	hasData := !isEmptyHex(tx.Input)
	hasMethod := !isEmptyHex(tx.MethodID)
	hasFunction := tx.FunctionName != ""
	hasValue := tx.Value != nil && tx.Value.Sign() > 0

	switch {
	case !hasData && !hasMethod && !hasFunction && hasValue:
		return SimpleTransfer
	case isTokenTransferSelector(tx.MethodID) && strings.Contains(strings.ToLower(tx.FunctionName), "transfer"):
		return TokenTransfer
	case hasData && hasMethod && hasFunction:
		return ContractCall
	default:
		return Unknown
	}
}

func isEmptyHex(s string) bool {
	return s == "" || s == emptyHex
}

func isTokenTransferSelector(methodID string) bool {
	_, ok := tokenTransferSelectors[strings.ToLower(methodID)]
	return ok
}

func selector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}
