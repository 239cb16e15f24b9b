package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

type credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// HTTPClient talks to the contactbook backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient returns a client for the backend at baseURL
// (e.g. "http://localhost:5000"). tokens may be nil for anonymous use.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

func (c *HTTPClient) accessToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.AccessToken()
}

// do sends a request and returns the response for a 2xx status.
// For any other status the body is consumed and the response closed.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, withToken bool) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeaderName, requestID)

	if withToken {
		if token := c.accessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, c.mapTransportError(ctx, err)
	}

	c.log.Debug(ctx, "request done", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	return nil, c.mapError(method, path, resp)
}

func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// mapError converts a non-2xx response into a package error.
func (c *HTTPClient) mapError(method, path string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != nil {
			return env.Error
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func contactPath(id models.ContactID) string {
	return "/api/contacts/" + url.PathEscape(id.String())
}

// Login exchanges credentials for an access token.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Username: username, Password: string(password)}, false)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// login has no structured error contract
			return "", &StatusError{Method: http.MethodPost, Path: "/api/auth/login", StatusCode: http.StatusBadRequest}
		}
		return "", err
	}

	var lr loginResponse
	if err := decodeInto(resp, &lr); err != nil {
		return "", err
	}
	if lr.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token")
	}
	return lr.AccessToken, nil
}

// Register creates a new account.
func (c *HTTPClient) Register(ctx context.Context, username string, password []byte) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/register", credentials{Username: username, Password: string(password)}, false)
	if err != nil {
		return err
	}
	discard(resp)
	return nil
}

// ListContacts returns the contact directory in server order. The bearer
// token is attached when present but is not required.
func (c *HTTPClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/contacts/", nil, true)
	if err != nil {
		return nil, err
	}
	var out []models.Contact
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Contact{}
	}
	return out, nil
}

func (c *HTTPClient) CreateContact(ctx context.Context, p models.ContactPayload) (models.Contact, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/contacts", p, true)
	if err != nil {
		return models.Contact{}, err
	}
	var created models.Contact
	if err := decodeInto(resp, &created); err != nil && !errors.Is(err, io.EOF) {
		return models.Contact{}, err
	}
	return created, nil
}

func (c *HTTPClient) UpdateContact(ctx context.Context, id models.ContactID, p models.ContactPayload) error {
	resp, err := c.do(ctx, http.MethodPut, contactPath(id), p, true)
	if err != nil {
		return err
	}
	discard(resp)
	return nil
}

func (c *HTTPClient) DeleteContact(ctx context.Context, id models.ContactID) error {
	resp, err := c.do(ctx, http.MethodDelete, contactPath(id), nil, true)
	if err != nil {
		return err
	}
	discard(resp)
	return nil
}
