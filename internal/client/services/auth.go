// Package services contains the application services of the contactbook
// client that sit between the CLI and the backend client.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/client/client"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// Form field names reported by FormError.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnreachable        = errors.New("could not reach the server")
	ErrLoginFailed        = errors.New("login failed")
	ErrRegisterFailed     = errors.New("registration failed")
)

// FormError carries per-field messages of a rejected registration.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// SessionStore persists the outcome of a login.
type SessionStore interface {
	Save(ctx context.Context, username, token string) error
	Clear(ctx context.Context) error
}

// AuthService defines the authentication operations of the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the access token.
//   - Register: create a new account; the user logs in separately.
//   - Logout: forget the local session. The server is not contacted.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password, confirm []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session SessionStore
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and session store.
func NewAuthService(c client.Client, session SessionStore, log logging.Logger) AuthService {
	return &authService{client: c, session: session, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			return ErrInvalidCredentials
		case errors.Is(err, client.ErrUnavailable):
			return ErrUnreachable
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		}
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err := a.session.Save(ctx, username, token); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

func (a *authService) Register(ctx context.Context, username string, password, confirm []byte) error {
	if !common.EqualBytes(password, confirm) {
		return &FormError{Fields: map[string]string{FieldPassword: "passwords do not match"}}
	}

	err := a.client.Register(ctx, username, password)
	if err == nil {
		a.log.Info(ctx, "registered", "username", username)
		return nil
	}

	a.log.Warn(ctx, "registration failed", "username", username, "error", err)
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		field := strings.ToLower(apiErr.Field)
		if field == "" {
			field = FieldUsername
		}
		return &FormError{Fields: map[string]string{field: apiErr.Message}}
	case errors.Is(err, client.ErrUnavailable):
		return ErrUnreachable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return fmt.Errorf("%w: %v", ErrRegisterFailed, err)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}
