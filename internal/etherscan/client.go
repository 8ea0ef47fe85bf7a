package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"walletscan/internal/metrics"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

const (
	actionBlockNumber = "eth_blockNumber"
	actionTxList      = "txlist"

	noTransactionsMessage = "No transactions found"
	// upper bound on a response body; txlist pages top out at 10k records
	maxResponseBytes = 64 << 20
)

type Options struct {
	BaseURL      string
	APIKey       string
	ChainID      uint64
	HeadTimeout  time.Duration
	FetchTimeout time.Duration
}

// Client talks to an Etherscan-compatible explorer API. It resolves the
// current chain head and lists an address's transactions for a block range.
type Client struct {
	logs       *zap.SugaredLogger
	httpClient *http.Client
	opts       Options
	metrics    *metrics.Collector
}

func NewClient(logger *zap.SugaredLogger, httpClient *http.Client, opts Options, collector *metrics.Collector) *Client {
	return &Client{
		logs:       logger,
		httpClient: httpClient,
		opts:       opts,
		metrics:    collector,
	}
}

// CurrentHead returns the latest block height reported by the explorer.
func (c *Client) CurrentHead(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.HeadTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", actionBlockNumber)

	env, body, err := c.get(ctx, actionBlockNumber, params)
	if err != nil {
		return 0, err
	}

	if env.Error != nil {
		return 0, &RejectedError{Message: env.Error.Message, Payload: body}
	}
	if env.Status == "0" {
		return 0, &RejectedError{Message: rejectionMessage(env), Payload: body}
	}

	var hexHead string
	if err := json.Unmarshal(env.Result, &hexHead); err != nil {
		return 0, fmt.Errorf("%w: block number result: %s", ErrMalformedResponse, string(env.Result))
	}

	head, err := hexutil.DecodeUint64(hexHead)
	if err != nil {
		return 0, fmt.Errorf("%w: block number %q: %w", ErrMalformedResponse, hexHead, err)
	}

	c.logs.Debugw("chain head resolved", "head", head)
	return head, nil
}

// FetchTransactions lists the normal transactions of address between start
// and end inclusive, oldest first.
func (c *Client) FetchTransactions(ctx context.Context, address string, start, end uint64) (FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.FetchTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", actionTxList)
	params.Set("address", address)
	params.Set("startblock", strconv.FormatUint(start, 10))
	params.Set("endblock", strconv.FormatUint(end, 10))
	params.Set("sort", "asc")

	env, body, err := c.get(ctx, actionTxList, params)
	if err != nil {
		return FetchResult{}, err
	}

	switch {
	case env.Status == "1" || env.Message == "OK":
		var raws []rawTransaction
		if err := json.Unmarshal(env.Result, &raws); err != nil {
			return FetchResult{}, fmt.Errorf("%w: transaction list: %w", ErrMalformedResponse, err)
		}

		transactions := make([]Transaction, 0, len(raws))
		for _, raw := range raws {
			tx, err := parseTransaction(raw)
			if err != nil {
				return FetchResult{}, err
			}
			transactions = append(transactions, tx)
		}

		outcome := OutcomeFound
		if len(transactions) == 0 {
			outcome = OutcomeEmpty
		}

		return FetchResult{
			Outcome:      outcome,
			Transactions: transactions,
			Payload:      env.Result,
		}, nil

	case env.Message == noTransactionsMessage:
		return FetchResult{
			Outcome:      OutcomeEmpty,
			Transactions: []Transaction{},
			Payload:      json.RawMessage("[]"),
		}, nil

	default:
		c.logs.Warnw("explorer rejected transaction list request",
			"address", address,
			"start_block", start,
			"end_block", end,
			"message", env.Message)
		return FetchResult{}, &RejectedError{Message: rejectionMessage(env), Payload: body}
	}
}

func (c *Client) get(ctx context.Context, action string, params url.Values) (envelope, []byte, error) {
	if c.opts.APIKey == "" {
		return envelope{}, nil, ErrUnauthenticated
	}

	params.Set("chainid", strconv.FormatUint(c.opts.ChainID, 10))
	params.Set("apikey", c.opts.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return envelope{}, nil, fmt.Errorf("build %s request: %w", action, err)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamRequest(action, "network_error", time.Since(started))
		return envelope{}, nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.metrics.UpstreamRequest(action, strconv.Itoa(resp.StatusCode), time.Since(started))
	if err != nil {
		return envelope{}, nil, fmt.Errorf("%w: read %s response: %w", ErrUnavailable, action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelope{}, body, fmt.Errorf("%w: %s: status code %d", ErrUnavailable, action, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, body, fmt.Errorf("%w: decode %s response: %w", ErrMalformedResponse, action, err)
	}

	if env.Result == nil && env.Error == nil && env.Message == "" {
		return envelope{}, body, errUnexpectedEnvelope
	}

	return env, body, nil
}

func rejectionMessage(env envelope) string {
	var detail string
	if err := json.Unmarshal(env.Result, &detail); err != nil || detail == "" {
		if env.Message == "" {
			return "unknown error"
		}
		return env.Message
	}
	if env.Message == "" {
		return detail
	}
	return env.Message + ": " + detail
}

// IsUpstreamError reports whether err originates from the explorer rather
// than from local configuration.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrRejected) ||
		errors.Is(err, ErrMalformedResponse)
}
