package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"walletscan/internal/http/middleware"
	"walletscan/internal/http/payload"

	"go.uber.org/zap"
)

var (
	SubmitQuery     = "POST /queries"
	DeleteQuery     = "DELETE /queries/{id}"
	GetTransactions = "GET /transactions"
	GetCache        = "GET /cache"
	Health          = "GET /healthz"
)

const healthTimeout = 2 * time.Second

type QueryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          TransactionService
	health           HealthChecker
}

func NewQueryHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	transactionService TransactionService,
	healthChecker HealthChecker,
) *QueryHandler {
	return &QueryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          transactionService,
		health:           healthChecker,
	}
}

func (h *QueryHandler) HandleSubmitQuery(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.QueryRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not submit query",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitQuery,
			"request_id", requestId)
		return
	}

	h.logs.Infow("query request received",
		"wallet_address", req.WalletAddress,
		"start_block", req.StartBlock,
		"end_block", req.EndBlock,
		"handler", SubmitQuery,
		"request_id", requestId)

	result, err := h.service.Ingest(r.Context(), req.WalletAddress, req.StartBlock, req.EndBlock)
	if err != nil {
		code, detail := errorStatus(err)
		h.respond(w, Response{
			Message: "Could not ingest transactions",
			Error:   detail,
		}, code,
			requestId)
		h.logs.Errorw("failed to ingest transactions",
			"error", err,
			"status", code,
			"handler", SubmitQuery,
			"request_id", requestId)
		return
	}

	h.logs.Infow("query ingested",
		"query_id", result.QueryID,
		"count", result.Count,
		"inserted", result.Inserted,
		"handler", SubmitQuery,
		"request_id", requestId)

	h.respond(w, Response{
		Message: fmt.Sprintf("%d transactions found", result.Count),
		Data:    result,
	}, http.StatusCreated,
		requestId)
}

func (h *QueryHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req, err := payload.ParsePageRequest(r.URL.Query())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	view, err := h.service.Page(r.Context(), req.WalletAddress, req.StartBlock, req.EndBlock, req.Page)
	if err != nil {
		code, detail := errorStatus(err)
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   detail,
		}, code,
			requestId)
		h.logs.Errorw("failed to read transactions page",
			"error", err,
			"status", code,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions page served",
		"wallet_address", req.WalletAddress,
		"page", view.Page,
		"items", len(view.Items),
		"total", view.Total,
		"handler", GetTransactions,
		"request_id", requestId)

	h.respond(w, Response{Data: view}, http.StatusOK, requestId)
}

func (h *QueryHandler) HandleGetCachedPayload(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.ParseRangeRequest(r.URL.Query())
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not load cached payload",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetCache,
			"request_id", requestId)
		return
	}

	cached, err := h.service.CachedPayload(r.Context(), req.WalletAddress, req.StartBlock, req.EndBlock)
	if err != nil {
		code, detail := errorStatus(err)
		h.respond(w, Response{
			Message: "Could not load cached payload",
			Error:   detail,
		}, code,
			requestId)
		h.logs.Errorw("failed to load cached payload",
			"error", err,
			"status", code,
			"handler", GetCache,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: json.RawMessage(cached)}, http.StatusOK, requestId)
}

func (h *QueryHandler) HandleDeleteQuery(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil || id == 0 {
		h.respond(w, Response{
			Message: "Could not delete query",
			Error:   fmt.Sprintf("invalid query id %q", r.PathValue("id")),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid query id",
			"id", r.PathValue("id"),
			"handler", DeleteQuery,
			"request_id", requestId)
		return
	}

	if err := h.service.DeleteQuery(r.Context(), uint(id)); err != nil {
		code, detail := errorStatus(err)
		h.respond(w, Response{
			Message: "Could not delete query",
			Error:   detail,
		}, code,
			requestId)
		h.logs.Errorw("failed to delete query",
			"error", err,
			"query_id", id,
			"handler", DeleteQuery,
			"request_id", requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *QueryHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		h.respond(w, Response{
			Message: "unhealthy",
			Error:   "database unreachable",
		}, http.StatusServiceUnavailable,
			requestId)
		h.logs.Errorw("health check failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "ok"}, http.StatusOK, requestId)
}

func (h *QueryHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
