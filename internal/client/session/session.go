// Package session keeps the caller's access token. The token is persisted in
// the local metadata store so a login survives restarts of the client.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/contactbook/internal/dbx"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Metadata keys owned by the session.
const (
	KeyAccessToken = "access_token"
	KeyUsername    = "username"
)

var ErrNoSession = errors.New("not logged in")

// Info describes the current session for display purposes.
type Info struct {
	Username string
	Subject  string
	// ExpiresAt is zero when the token carries no expiry claim.
	ExpiresAt time.Time
}

// Expired reports whether the token expiry lies before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Manager holds the in-memory copy of the session and writes it through to
// the metadata store. It is safe for concurrent use.
type Manager struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger

	mu       sync.RWMutex
	token    string
	username string
}

func NewManager(db *sql.DB, log logging.Logger) *Manager {
	return &Manager{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log.With("component", "session"),
	}
}

// Load reads a previously saved session. A missing session is not an error.
func (m *Manager) Load(ctx context.Context) error {
	token, _, err := m.repo.Get(ctx, KeyAccessToken)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	username, _, err := m.repo.Get(ctx, KeyUsername)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	m.mu.Lock()
	m.token, m.username = token, username
	m.mu.Unlock()

	if token != "" {
		m.log.Debug(ctx, "session restored", "username", username)
	}
	return nil
}

// Save stores the token and username atomically and makes them current.
func (m *Manager) Save(ctx context.Context, username, token string) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAccessToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUsername, username)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.mu.Lock()
	m.token, m.username = token, username
	m.mu.Unlock()
	return nil
}

// Clear forgets the session. The in-memory state is cleared even when the
// store fails, so the caller is logged out either way.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.token, m.username = "", ""
	m.mu.Unlock()

	if err := m.repo.Delete(ctx, KeyAccessToken, KeyUsername); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is present. Expiry is not checked;
// the backend rejects stale tokens.
func (m *Manager) IsAuthenticated() bool {
	return m.AccessToken() != ""
}

func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username
}

// Describe inspects the token claims without verifying the signature. The
// result is informational only. When the token cannot be parsed the
// username is still returned together with the error.
func (m *Manager) Describe() (Info, error) {
	m.mu.RLock()
	token, username := m.token, m.username
	m.mu.RUnlock()

	if token == "" {
		return Info{}, ErrNoSession
	}

	info := Info{Username: username}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return info, fmt.Errorf("inspect token: %w", err)
	}

	info.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
