package client

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

// Client is the transport-agnostic contract of the contactbook backend.
type Client interface {
	Login(ctx context.Context, username string, password []byte) (string, error)
	Register(ctx context.Context, username string, password []byte) error
	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, p models.ContactPayload) (models.Contact, error)
	UpdateContact(ctx context.Context, id models.ContactID, p models.ContactPayload) error
	DeleteContact(ctx context.Context, id models.ContactID) error
}

// TokenSource supplies the access token attached to outgoing requests.
// An empty token means the caller is anonymous.
type TokenSource interface {
	AccessToken() string
}
