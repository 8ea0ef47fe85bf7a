package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"walletscan/internal/core"
	"walletscan/internal/etherscan"
	"walletscan/internal/http/handler"
	"walletscan/internal/http/handler/fake"
	"walletscan/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const address = "0x9aa99c23f67c81701c772b106b4f83f6e858dd2e"

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

var _ = Describe("QueryHandler", func() {
	var (
		qh            *handler.QueryHandler
		fakeService   *fake.TransactionService
		fakeValidator *fake.RequestValidator
		fakeHealth    *fake.HealthChecker
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		response      envelope
	)

	decodeResponse := func() {
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.TransactionService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload
		fakeHealth = new(fake.HealthChecker)
		response = envelope{}

		w = httptest.NewRecorder()
		qh = handler.NewQueryHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, fakeHealth)
	})

	Describe("HandleSubmitQuery", func() {
		var body string

		BeforeEach(func() {
			body = fmt.Sprintf(`{"wallet_address":"%s","start_block":100,"end_block":200}`, address)
			fakeService.IngestReturns(core.IngestResult{
				QueryID:       4,
				WalletAddress: address,
				StartBlock:    100,
				EndBlock:      200,
				Count:         3,
				Inserted:      2,
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/queries", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			qh.HandleSubmitQuery(w, req)
		})

		When("ingestion succeeds", func() {
			It("should return the result", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				decodeResponse()
				Expect(response.Message).To(Equal("3 transactions found"))

				var result core.IngestResult
				Expect(json.Unmarshal(response.Data, &result)).To(Succeed())
				Expect(result.Count).To(Equal(3))
				Expect(result.QueryID).To(BeEquivalentTo(4))

				Expect(fakeService.IngestCallCount()).To(Equal(1))
				_, addr, start, end := fakeService.IngestArgsForCall(0)
				Expect(addr).To(Equal(address))
				Expect(start).To(Equal(json.Number("100")))
				Expect(end).To(Equal(json.Number("200")))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				body = `{"wallet_address":"nope"}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				decodeResponse()
				Expect(response.Error).To(ContainSubstring("invalid request payload"))
				Expect(fakeService.IngestCallCount()).To(Equal(0))
			})
		})

		DescribeTable("service errors",
			func(serviceErr error, expectedCode int, exposed bool) {
				fakeService.IngestReturns(core.IngestResult{}, serviceErr)
				req = httptest.NewRequest("POST", "/queries", strings.NewReader(body))
				w = httptest.NewRecorder()
				qh.HandleSubmitQuery(w, req)

				Expect(w.Code).To(Equal(expectedCode))
				decodeResponse()
				if exposed {
					Expect(response.Error).To(Equal(serviceErr.Error()))
				} else {
					Expect(response.Error).To(Equal("unexpected error occurred"))
				}
			},
			Entry("invalid range", core.ErrStartAfterEnd, http.StatusBadRequest, true),
			Entry("start beyond head", fmt.Errorf("%w: start block 9, head 5", core.ErrStartBeyondHead), http.StatusBadRequest, true),
			Entry("upstream unavailable", fmt.Errorf("fetch transactions: %w", etherscan.ErrUnavailable), http.StatusServiceUnavailable, true),
			Entry("upstream rejected", &etherscan.RejectedError{Message: "NOTOK: Max rate limit reached"}, http.StatusBadGateway, true),
			Entry("upstream malformed", etherscan.ErrMalformedResponse, http.StatusBadGateway, true),
			Entry("missing api key", etherscan.ErrUnauthenticated, http.StatusInternalServerError, false),
			Entry("persistence failure", fmt.Errorf("%w: %w", core.ErrPersistence, errors.New("deadlock")), http.StatusInternalServerError, false),
		)
	})

	Describe("HandleGetTransactions", func() {
		var target string

		BeforeEach(func() {
			target = fmt.Sprintf("/transactions?wallet_address=%s&start_block=0&end_block=2000&page=3", address)
			fakeService.PageReturns(core.PageView{
				Items:      []core.TransactionView{{Hash: "0xaa", BlockNumber: 150}},
				Page:       3,
				PageSize:   20,
				Total:      41,
				TotalPages: 3,
				HasPrev:    true,
				HasNext:    false,
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", target, nil)
			qh.HandleGetTransactions(w, req)
		})

		When("the page is read", func() {
			It("should return the page view", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decodeResponse()

				var view map[string]any
				Expect(json.Unmarshal(response.Data, &view)).To(Succeed())
				Expect(view["transactions"]).To(HaveLen(1))
				Expect(view["total"]).To(BeEquivalentTo(41))
				Expect(view["has_prev"]).To(BeTrue())
				Expect(view["has_next"]).To(BeFalse())

				_, addr, start, end, page := fakeService.PageArgsForCall(0)
				Expect(addr).To(Equal(address))
				Expect(start).To(Equal(json.Number("0")))
				Expect(end).To(Equal(json.Number("2000")))
				Expect(page).To(Equal(3))
			})
		})

		When("the page parameter is not a number", func() {
			BeforeEach(func() {
				target = fmt.Sprintf("/transactions?wallet_address=%s&start_block=0&end_block=2000&page=x", address)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.PageCallCount()).To(Equal(0))
			})
		})

		When("parameters are missing", func() {
			BeforeEach(func() {
				target = "/transactions?start_block=0"
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.PageCallCount()).To(Equal(0))
			})
		})

		When("the range is rejected", func() {
			BeforeEach(func() {
				fakeService.PageReturns(core.PageView{}, core.ErrBlockNotInteger)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				decodeResponse()
				Expect(response.Error).To(ContainSubstring("block numbers must be integers"))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.PageReturns(core.PageView{}, fmt.Errorf("%w: %w", core.ErrPersistence, fakeErr))
			})

			It("should return 500 without details", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetCachedPayload", func() {
		var target string

		BeforeEach(func() {
			target = fmt.Sprintf("/cache?wallet_address=%s&start_block=1&end_block=2", address)
			fakeService.CachedPayloadReturns([]byte(`[{"hash":"0xaa"}]`), nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", target, nil)
			qh.HandleGetCachedPayload(w, req)
		})

		It("should return the raw payload", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			decodeResponse()
			Expect(string(response.Data)).To(MatchJSON(`[{"hash":"0xaa"}]`))
		})

		When("nothing was cached", func() {
			BeforeEach(func() {
				fakeService.CachedPayloadReturns(nil, core.ErrNotCached)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the address is missing", func() {
			BeforeEach(func() {
				target = "/cache?start_block=1&end_block=2"
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CachedPayloadCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDeleteQuery", func() {
		var id string

		BeforeEach(func() {
			id = "12"
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/queries/"+id, nil)
			req.SetPathValue("id", id)
			qh.HandleDeleteQuery(w, req)
		})

		It("should delete the query", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))
			_, got := fakeService.DeleteQueryArgsForCall(0)
			Expect(got).To(BeEquivalentTo(12))
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				id = "abc"
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DeleteQueryCallCount()).To(Equal(0))
			})
		})

		When("the query does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteQueryReturns(core.ErrQueryNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleHealth", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/healthz", nil)
			qh.HandleHealth(w, req)
		})

		It("should report ok", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeHealth.PingCallCount()).To(Equal(1))
		})

		When("the database is unreachable", func() {
			BeforeEach(func() {
				fakeHealth.PingReturns(fakeErr)
			})

			It("should return 503 Service Unavailable", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})
})
