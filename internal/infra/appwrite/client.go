// Package appwrite implements the gateway ports against an Appwrite-compatible
// REST endpoint. One Client serves the account, database and storage subsystems.
package appwrite

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/gateway"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Header names understood by the backend.
const (
	HeaderProject        = "X-Appwrite-Project"
	HeaderSession        = "X-Appwrite-Session"
	HeaderResponseFormat = "X-Appwrite-Response-Format"
	HeaderFallbackCookie = "X-Fallback-Cookies"
	HeaderRequestID      = "X-Request-Id"
)

// TypeSessionStore marks RemoteErrors raised by the local session store.
const TypeSessionStore = "session_store"

const (
	responseFormat = "1.5.0"
	defaultTimeout = 30 * time.Second
)

// Settings locate the backend project and its resources.
type Settings struct {
	Endpoint    string // Base URL including the API version path, e.g. https://cloud.appwrite.io/v1.
	ProjectID   string
	DatabaseID  string
	BucketID    string
	Collections map[gateway.Collection]string
	Timeout     time.Duration
	SelfSigned  bool // Accept self-signed TLS certificates.
}

// SessionCookieName is the cookie the backend sets on session creation.
func (s Settings) SessionCookieName() string {
	return "a_session_" + s.ProjectID
}

func (s Settings) collectionID(c gateway.Collection) string {
	if id, ok := s.Collections[c]; ok && id != "" {
		return id
	}

	return string(c)
}

// Client is safe for concurrent use.
type Client struct {
	http     *resty.Client
	settings Settings
	sessions SessionStore
	logger   *slog.Logger
}

var _ gateway.Gateway = (*Client)(nil)

// NewClient creates a Client. Session secrets are read from and written to store.
func NewClient(settings Settings, store SessionStore, logger *slog.Logger) (*Client, error) {
	if settings.Endpoint == "" {
		return nil, errors.New("appwrite endpoint is required")
	}
	if settings.ProjectID == "" {
		return nil, errors.New("appwrite project id is required")
	}
	if store == nil {
		store = NewMemorySessionStore()
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	settings.Endpoint = strings.TrimRight(settings.Endpoint, "/")

	httpClient := resty.New().
		SetBaseURL(settings.Endpoint).
		SetHeader(HeaderProject, settings.ProjectID).
		SetHeader(HeaderResponseFormat, responseFormat).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	if settings.SelfSigned {
		httpClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in for local backends
	}

	return &Client{
		http:     httpClient,
		settings: settings,
		sessions: store,
		logger:   logger,
	}, nil
}

// request starts a call carrying the stored session, if any.
func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	req := c.http.R().SetContext(ctx)
	if operationID := deliverycontext.GetOperationID(ctx); operationID != "" {
		req.SetHeader(HeaderRequestID, operationID)
	}

	secret, err := c.sessions.Load()
	if err != nil {
		return nil, storeError(errors.Wrap(err, "failed to load session secret"))
	}
	if secret != "" {
		req.SetHeader(HeaderSession, secret)
	}

	return req, nil
}

// execute sends req and turns transport failures and error statuses into RemoteErrors.
func (c *Client) execute(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, gateway.NewNetworkError(err)
	}
	if resp.IsError() {
		return nil, decodeRemoteError(resp)
	}

	return resp, nil
}

// call sends a JSON request and decodes a JSON response into out when out is non-nil.
func (c *Client) call(ctx context.Context, method, path string, body, out any) (*resty.Response, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := c.execute(req, method, path)
	if err != nil {
		return nil, err
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return nil, &gateway.RemoteError{
				Code:    resp.StatusCode(),
				Type:    "general_server_error",
				Message: "malformed response body",
				Err:     errors.WithStack(err),
			}
		}
	}

	return resp, nil
}

type errorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func decodeRemoteError(resp *resty.Response) *gateway.RemoteError {
	remoteErr := &gateway.RemoteError{Code: resp.StatusCode()}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Message == "" {
		remoteErr.Message = strings.TrimSpace(resp.String())
		if remoteErr.Message == "" {
			remoteErr.Message = http.StatusText(resp.StatusCode())
		}

		return remoteErr
	}

	remoteErr.Type = body.Type
	remoteErr.Message = body.Message
	if body.Code != 0 {
		remoteErr.Code = body.Code
	}

	return remoteErr
}

// storeError reports a local session store failure through the gateway error type.
func storeError(err error) *gateway.RemoteError {
	return &gateway.RemoteError{Type: TypeSessionStore, Message: err.Error(), Err: err}
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}
