package contacts

import (
	"errors"

	"github.com/dmitrijs2005/contactbook/internal/client/client"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid dialog transition")
	ErrBusy              = errors.New("operation in progress")
)

// Page-level messages.
const (
	MsgUnreachable          = "could not reach the server"
	MsgLoadFailed           = "failed to load contacts"
	MsgSaveFailed           = "failed to save contact"
	MsgDeleteFailed         = "failed to delete contact"
	MsgPasswordChangeFailed = "failed to change password"
)

// Action names a mutating intent guarded by authentication.
type Action string

const (
	ActionAdd            Action = "add contacts"
	ActionEdit           Action = "edit"
	ActionSave           Action = "save changes"
	ActionDelete         Action = "delete"
	ActionChangePassword Action = "change passwords"
)

// DeniedError is returned when a mutating intent is issued without an
// authenticated session. It matches ErrNotAuthenticated.
type DeniedError struct {
	Action Action
}

func (e *DeniedError) Error() string {
	return "must be logged in to " + string(e.Action)
}

func (e *DeniedError) Unwrap() error {
	return ErrNotAuthenticated
}

// UserMessage turns a gateway failure into page text. Structured backend
// messages win, connectivity problems get a fixed text, anything else
// (including 401 on contact operations) falls back to the given message.
func UserMessage(err error, fallback string) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return MsgUnreachable
	default:
		return fallback
	}
}
