package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// QueryRequest is the body of an ingestion request. Block values stay
// untyped here; their integer checks belong to range validation.
type QueryRequest struct {
	WalletAddress string `json:"wallet_address"`
	StartBlock    any    `json:"start_block"`
	EndBlock      any    `json:"end_block"`
}

func (q *QueryRequest) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.WalletAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&q.StartBlock, validation.NotNil),
		validation.Field(&q.EndBlock, validation.NotNil),
	)
}

// RangeRequest selects stored data by address and block range from URL
// query parameters.
type RangeRequest struct {
	WalletAddress string
	StartBlock    json.Number
	EndBlock      json.Number
}

func (r RangeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.StartBlock, validation.Required),
		validation.Field(&r.EndBlock, validation.Required),
	)
}

type PageRequest struct {
	RangeRequest
	Page int
}

func ParseRangeRequest(values url.Values) RangeRequest {
	return RangeRequest{
		WalletAddress: values.Get("wallet_address"),
		StartBlock:    json.Number(values.Get("start_block")),
		EndBlock:      json.Number(values.Get("end_block")),
	}
}

// ParsePageRequest reads a page request from query parameters. A missing
// page parameter means the first page.
func ParsePageRequest(values url.Values) (PageRequest, error) {
	req := PageRequest{
		RangeRequest: ParseRangeRequest(values),
		Page:         1,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return PageRequest{}, fmt.Errorf("parse page %q: %w", raw, err)
		}
		req.Page = page
	}

	if err := req.Validate(); err != nil {
		return PageRequest{}, err
	}

	return req, nil
}
