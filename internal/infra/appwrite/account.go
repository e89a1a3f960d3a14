package appwrite

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"

	"github.com/go-resty/resty/v2"
)

type accountResponse struct {
	ID        string `json:"$id"`
	CreatedAt string `json:"$createdAt"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

func (r *accountResponse) toEntity() *entity.Account {
	return &entity.Account{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		CreatedAt: parseTimestamp(r.CreatedAt),
	}
}

type sessionResponse struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Expire string `json:"expire"`
	Secret string `json:"secret"`
}

// CreateAccount registers a new account under id.
func (c *Client) CreateAccount(ctx context.Context, id, email, password, name string) (*entity.Account, error) {
	body := map[string]string{
		"userId":   id,
		"email":    email,
		"password": password,
		"name":     name,
	}

	var out accountResponse
	if _, err := c.call(ctx, http.MethodPost, "/account", body, &out); err != nil {
		return nil, err
	}

	return out.toEntity(), nil
}

// CreateSession signs in and stores the session secret for later calls.
func (c *Client) CreateSession(ctx context.Context, email, password string) (*entity.Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var out sessionResponse
	resp, err := c.call(ctx, http.MethodPost, "/account/sessions/email", body, &out)
	if err != nil {
		return nil, err
	}

	secret := c.sessionSecret(resp, out.Secret)
	if secret == "" {
		c.logger.Warn("Session created without a secret; later calls will be anonymous",
			slog.String("session_id", out.ID),
		)
	}
	if err := c.sessions.Save(secret); err != nil {
		return nil, storeError(err)
	}

	return &entity.Session{
		ID:        out.ID,
		AccountID: out.UserID,
		Secret:    secret,
		ExpiresAt: parseTimestamp(out.Expire),
	}, nil
}

// sessionSecret picks the secret from the response body, the session cookie or
// the fallback cookie header, in that order.
func (c *Client) sessionSecret(resp *resty.Response, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}

	name := c.settings.SessionCookieName()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			return cookie.Value
		}
	}

	if raw := resp.Header().Get(HeaderFallbackCookie); raw != "" {
		var fallback map[string]string
		if err := json.Unmarshal([]byte(raw), &fallback); err == nil {
			return fallback[name]
		}
	}

	return ""
}

// DeleteSession signs out. Deleting the current session also forgets the stored secret.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := c.call(ctx, http.MethodDelete, "/account/sessions/"+url.PathEscape(sessionID), nil, nil); err != nil {
		return err
	}
	if sessionID != gateway.CurrentSession {
		return nil
	}
	if err := c.sessions.Clear(); err != nil {
		return storeError(err)
	}

	return nil
}

// GetAccount returns the account of the stored session.
func (c *Client) GetAccount(ctx context.Context) (*entity.Account, error) {
	var out accountResponse
	if _, err := c.call(ctx, http.MethodGet, "/account", nil, &out); err != nil {
		return nil, err
	}

	return out.toEntity(), nil
}

// InitialsAvatarURL derives the avatar URL from name without I/O.
func (c *Client) InitialsAvatarURL(name string) (string, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("project", c.settings.ProjectID)

	return c.settings.Endpoint + "/avatars/initials?" + q.Encode(), nil
}
