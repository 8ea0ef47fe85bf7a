package core

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// maxBlock is the largest block number the store's bigint columns can hold.
var maxBlock = big.NewInt(math.MaxInt64)

type BlockRange struct {
	Start uint64
	End   uint64
}

// ValidateBlockRange checks a requested range and returns it typed. Rules are
// applied in order and the first failure wins: both values integer-typed,
// start >= 0, end >= 0, start <= end, end fits in an int64. Accepted integer
// types are Go's integer kinds and json.Number holding an integer literal.
func ValidateBlockRange(start, end any) (BlockRange, error) {
	startInt, startOK := toBigInt(start)
	endInt, endOK := toBigInt(end)
	if !startOK || !endOK {
		return BlockRange{}, fmt.Errorf("%w, got start_block: %s, end_block: %s", ErrBlockNotInteger, typeName(start), typeName(end))
	}

	if startInt.Sign() < 0 {
		return BlockRange{}, fmt.Errorf("%w: start block %s", ErrNegativeBlock, startInt)
	}
	if endInt.Sign() < 0 {
		return BlockRange{}, fmt.Errorf("%w: end block %s", ErrNegativeBlock, endInt)
	}

	if startInt.Cmp(endInt) > 0 {
		return BlockRange{}, fmt.Errorf("%w: start block (%s), end block (%s)", ErrStartAfterEnd, startInt, endInt)
	}

	if endInt.Cmp(maxBlock) > 0 {
		return BlockRange{}, fmt.Errorf("%w: end block %s", ErrBlockTooLarge, endInt)
	}

	return BlockRange{
		Start: startInt.Uint64(),
		End:   endInt.Uint64(),
	}, nil
}

// CheckBlockRange is ValidateBlockRange for callers that want a verdict and a
// reason instead of an error.
func CheckBlockRange(start, end any) (bool, string) {
	if _, err := ValidateBlockRange(start, end); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func toBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case json.Number:
		return new(big.Int).SetString(n.String(), 10)
	default:
		return nil, false
	}
}

func typeName(v any) string {
	if n, ok := v.(json.Number); ok {
		if _, isInt := new(big.Int).SetString(n.String(), 10); !isInt {
			return "non-integer number"
		}
		return "integer"
	}
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

// NormalizeAddress validates a 0x-prefixed hex address and lower-cases it so
// lookups do not depend on checksum casing.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(address), nil
}
