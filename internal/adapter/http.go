package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"
	retryWait     = 200 * time.Millisecond
)

type httpServerAdapter struct {
	// reads retries idempotent GETs; writes never retries.
	reads  *utils.HTTPClient
	writes *utils.HTTPClient

	signBodies bool

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The address may be host:port or a full URL. When appCfg.HashKey is set,
// request bodies are signed with the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	reads := utils.NewHTTPClient().WithRetries(adapterCfg.RetryCount, retryWait)
	reads.SetBaseURL(baseURL).SetTimeout(adapterCfg.RequestTimeout)

	writes := utils.NewHTTPClient()
	writes.SetBaseURL(baseURL).SetTimeout(adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{
		reads:      reads,
		writes:     writes,
		signBodies: appCfg.HashKey != "",
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Ping(ctx context.Context) (models.PingResponse, error) {
	return get[models.PingResponse](ctx, h, "/ping")
}

func (h *httpServerAdapter) Info(ctx context.Context) (models.InfoResponse, error) {
	return get[models.InfoResponse](ctx, h, "/info")
}

func (h *httpServerAdapter) GetAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	return get[[]models.AccountSummary](ctx, h, "/accounts")
}

func (h *httpServerAdapter) GetAccountTransactions(ctx context.Context, accountID int64) ([]models.SyncTransaction, error) {
	return get[[]models.SyncTransaction](ctx, h, "/transactions/"+strconv.FormatInt(accountID, 10))
}

func (h *httpServerAdapter) GetAllTransactions(ctx context.Context) ([]models.AccountTransactions, error) {
	return get[[]models.AccountTransactions](ctx, h, "/transactions")
}

func (h *httpServerAdapter) Prepare(ctx context.Context, request models.SyncPrepareRequest) (models.SyncPrepareResponse, error) {
	return post[models.SyncPrepareResponse](ctx, h, "/sync/prepare", request)
}

func (h *httpServerAdapter) Execute(ctx context.Context, request models.SyncExecuteRequest) (models.SyncExecuteResponse, error) {
	return post[models.SyncExecuteResponse](ctx, h, "/sync/execute", request)
}

func (h *httpServerAdapter) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	return get[[]models.BackupInfo](ctx, h, "/backups")
}

func (h *httpServerAdapter) Restore(ctx context.Context, path string) (models.RestoreResponse, error) {
	return post[models.RestoreResponse](ctx, h, "/backups/restore", models.RestoreRequest{Path: path})
}

// ── plumbing ──

func (h *httpServerAdapter) request(ctx context.Context, client *utils.HTTPClient) *resty.Request {
	req := client.R().SetContext(ctx).SetHeader("Accept", "application/json")
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func get[T any](ctx context.Context, h *httpServerAdapter, path string) (T, error) {
	var out T

	resp, err := h.request(ctx, h.reads).Get(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpServerAdapter.get").Str("path", path).Msg("request failed")
		return out, fmt.Errorf("%w: GET %s: %w", ErrServerUnreachable, path, err)
	}

	return decode[T](resp)
}

// post marshals body once so the signature covers exactly the bytes sent.
func post[T any](ctx context.Context, h *httpServerAdapter, path string, body any) (T, error) {
	var out T

	payload, err := json.Marshal(body)
	if err != nil {
		return out, fmt.Errorf("encode %s request: %w", path, err)
	}

	req := h.request(ctx, h.writes).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.signBodies {
		req.SetHeader(utils.HashHeader, utils.HashHex(payload))
	}

	resp, err := req.Post(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpServerAdapter.post").Str("path", path).Msg("request failed")
		return out, fmt.Errorf("%w: POST %s: %w", ErrServerUnreachable, path, err)
	}

	return decode[T](resp)
}

func decode[T any](resp *resty.Response) (T, error) {
	var out T

	if err := mapHTTPError(resp); err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrDecodingResponse, resp.Request.URL, err)
	}

	return out, nil
}
