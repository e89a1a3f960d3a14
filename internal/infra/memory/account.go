package memory

import (
	"context"
	"net/url"
	"strings"
	"time"

	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"

	"github.com/google/uuid"
)

const sessionLifetime = 365 * 24 * time.Hour

type accountRecord struct {
	account  entity.Account
	password string
}

type sessionRecord struct {
	session entity.Session
}

// CreateAccount registers an account. Ids and emails are unique.
func (b *Backend) CreateAccount(_ context.Context, id, email, password, name string) (*entity.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpCreateAccount); err != nil {
		return nil, err
	}
	if id == "" || email == "" || password == "" {
		return nil, badRequest("general_argument_invalid", "id, email and password are required")
	}
	if _, ok := b.accounts[id]; ok {
		return nil, conflict("user_already_exists", "A user with the same id already exists.")
	}
	for _, rec := range b.accounts {
		if strings.EqualFold(rec.account.Email, email) {
			return nil, conflict("user_already_exists", "A user with the same email already exists.")
		}
	}

	rec := &accountRecord{
		account: entity.Account{
			ID:        id,
			Email:     email,
			Name:      name,
			CreatedAt: b.nowLocked(),
		},
		password: password,
	}
	b.accounts[id] = rec

	account := rec.account

	return &account, nil
}

// CreateSession signs in and makes the new session current.
func (b *Backend) CreateSession(_ context.Context, email, password string) (*entity.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpCreateSession); err != nil {
		return nil, err
	}

	for _, id := range sortedKeys(b.accounts) {
		rec := b.accounts[id]
		if !strings.EqualFold(rec.account.Email, email) || rec.password != password {
			continue
		}

		now := b.nowLocked()
		sess := &sessionRecord{session: entity.Session{
			ID:        strings.ReplaceAll(uuid.NewString(), "-", ""),
			AccountID: rec.account.ID,
			Secret:    uuid.NewString(),
			ExpiresAt: now.Add(sessionLifetime),
		}}
		b.sessions[sess.session.ID] = sess
		b.current = sess.session.ID

		session := sess.session

		return &session, nil
	}

	return nil, unauthorized("user_invalid_credentials", "Invalid credentials. Please check the email and password.")
}

// DeleteSession deletes a session. gateway.CurrentSession addresses the active one.
func (b *Backend) DeleteSession(_ context.Context, sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpDeleteSession); err != nil {
		return err
	}
	if b.current == "" {
		return unauthorized("general_unauthorized_scope", "User (role: guests) missing scope (account)")
	}
	if sessionID == gateway.CurrentSession {
		sessionID = b.current
	}
	if _, ok := b.sessions[sessionID]; !ok {
		return notFound("user_session_not_found", "The current user session could not be found.")
	}

	delete(b.sessions, sessionID)
	if b.current == sessionID {
		b.current = ""
	}

	return nil
}

// GetAccount returns the account of the current session.
func (b *Backend) GetAccount(_ context.Context) (*entity.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpGetAccount); err != nil {
		return nil, err
	}

	sess, ok := b.sessions[b.current]
	if !ok {
		return nil, unauthorized("general_unauthorized_scope", "User (role: guests) missing scope (account)")
	}
	rec, ok := b.accounts[sess.session.AccountID]
	if !ok {
		return nil, notFound("user_not_found", "User with the requested ID could not be found.")
	}

	account := rec.account

	return &account, nil
}

// InitialsAvatarURL derives the avatar URL from the name.
func (b *Backend) InitialsAvatarURL(name string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpAvatarURL); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("project", b.project)

	return b.baseURL + "/avatars/initials?" + q.Encode(), nil
}
