package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange    error = errors.New("invalid block range")
	ErrBlockNotInteger error = fmt.Errorf("%w: block numbers must be integers", ErrInvalidRange)
	ErrNegativeBlock   error = fmt.Errorf("%w: block number cannot be negative", ErrInvalidRange)
	ErrBlockTooLarge   error = fmt.Errorf("%w: block number out of range", ErrInvalidRange)
	ErrStartAfterEnd   error = fmt.Errorf("%w: start block must be less than or equal to end block", ErrInvalidRange)
	ErrStartBeyondHead error = fmt.Errorf("%w: start block is beyond the chain head", ErrInvalidRange)

	ErrInvalidAddress error = errors.New("invalid wallet address")
	ErrPersistence    error = errors.New("persistence failure")
	ErrQueryNotFound  error = errors.New("search query not found")
	ErrNotCached      error = errors.New("no cached payload for range")
)
