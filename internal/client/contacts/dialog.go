package contacts

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// Kind names a dialog state.
type Kind string

const (
	KindClosed           Kind = "closed"
	KindViewing          Kind = "viewing"
	KindEditing          Kind = "editing"
	KindConfirmingDelete Kind = "confirming_delete"
	KindChangingPassword Kind = "changing_password"
)

// State is a snapshot of the dialog controller.
//
// Contact is the record the dialog operates on; it is nil when closed and
// when editing a new contact. Draft and FieldErrors are meaningful only in
// KindEditing, PasswordError only in KindChangingPassword. Busy is set while
// a mutating gateway call is in flight.
type State struct {
	Kind          Kind
	Contact       *models.Contact
	Draft         models.Draft
	FieldErrors   models.FieldErrors
	PasswordError string
	Busy          bool
}

// CreateMode reports whether the state edits a contact that does not exist yet.
func (s State) CreateMode() bool {
	return s.Kind == KindEditing && s.Contact == nil
}

// Session answers whether the current caller is authenticated.
type Session interface {
	IsAuthenticated() bool
}

// Gateway is the backend capability set the contact core depends on.
type Gateway interface {
	Lister
	CreateContact(ctx context.Context, p models.ContactPayload) (models.Contact, error)
	UpdateContact(ctx context.Context, id models.ContactID, p models.ContactPayload) error
	DeleteContact(ctx context.Context, id models.ContactID) error
}

// PageErrors receives page-level messages produced by dialog transitions.
type PageErrors interface {
	SetPageError(msg string)
	ClearPageError()
}

// Controller is the dialog state machine. Only one dialog is open at a
// time; every transition replaces the whole state under the lock, and
// gateway calls run outside of it.
type Controller struct {
	session Session
	gw      Gateway
	pages   PageErrors
	log     logging.Logger

	mu    sync.Mutex
	state State
	busy  bool
	// gen changes with every state replacement. A gateway result closes
	// the dialog only if it is still the one that issued the call.
	gen uint64
}

func NewController(gw Gateway, session Session, pages PageErrors, log logging.Logger) *Controller {
	return &Controller{
		session: session,
		gw:      gw,
		pages:   pages,
		log:     log.With("component", "dialog"),
		state:   State{Kind: KindClosed},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Busy = c.busy
	s.FieldErrors = s.FieldErrors.Clone()
	if s.Contact != nil {
		cp := *s.Contact
		s.Contact = &cp
	}
	return s
}

// replace must be called with mu held.
func (c *Controller) replace(next State) {
	if next.FieldErrors == nil {
		next.FieldErrors = models.FieldErrors{}
	}
	c.state = next
	c.gen++
}

// canOpen must be called with mu held. Dialogs open from the list or on
// top of the read-only view.
func (c *Controller) canOpen() bool {
	return c.state.Kind == KindClosed || c.state.Kind == KindViewing
}

// deny must be called with mu held.
func (c *Controller) deny(action Action) error {
	err := &DeniedError{Action: action}
	c.pages.SetPageError(err.Error())
	return err
}

// RequestView shows a contact read-only. No authentication is needed.
func (c *Controller) RequestView(contact models.Contact) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.canOpen() {
		return ErrInvalidTransition
	}
	c.replace(State{Kind: KindViewing, Contact: &contact})
	return nil
}

func (c *Controller) open(action Action, next State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.canOpen() {
		return ErrInvalidTransition
	}
	if !c.session.IsAuthenticated() {
		return c.deny(action)
	}
	c.replace(next)
	return nil
}

// RequestCreate opens the editor with a blank draft.
func (c *Controller) RequestCreate() error {
	return c.open(ActionAdd, State{Kind: KindEditing})
}

// RequestEdit opens the editor pre-populated from contact.
func (c *Controller) RequestEdit(contact models.Contact) error {
	return c.open(ActionEdit, State{
		Kind:    KindEditing,
		Contact: &contact,
		Draft:   models.DraftFromContact(contact),
	})
}

// RequestDelete asks for confirmation before deleting contact.
func (c *Controller) RequestDelete(contact models.Contact) error {
	return c.open(ActionDelete, State{Kind: KindConfirmingDelete, Contact: &contact})
}

// RequestPasswordChange opens the password dialog for contact.
func (c *Controller) RequestPasswordChange(contact models.Contact) error {
	return c.open(ActionChangePassword, State{Kind: KindChangingPassword, Contact: &contact})
}

// Cancel closes any open dialog and discards the draft. An in-flight
// gateway call is not aborted.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind == KindClosed {
		return
	}
	c.replace(State{Kind: KindClosed})
}

// SetDraftField edits one field of the open editor and clears its error.
// The password of an existing contact is changed only through
// RequestPasswordChange, so the edit form rejects it.
func (c *Controller) SetDraftField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != KindEditing {
		return ErrInvalidTransition
	}
	if c.busy {
		return ErrBusy
	}
	if field == models.FieldPassword && !c.state.CreateMode() {
		return fmt.Errorf("%w: %s", models.ErrFieldDisabled, field)
	}

	next := c.state
	if err := next.Draft.SetField(field, value); err != nil {
		return err
	}
	next.FieldErrors = c.state.FieldErrors.Clone()
	delete(next.FieldErrors, field)
	c.replace(next)
	return nil
}

// begin marks the controller busy and clears the page error before a
// gateway call. It must be called with mu held and returns the generation
// the result belongs to.
func (c *Controller) begin() uint64 {
	c.busy = true
	c.pages.ClearPageError()
	return c.gen
}

// finish applies the gateway result: success closes the issuing dialog,
// failure leaves the dialog open and reports the error at page level.
func (c *Controller) finish(ctx context.Context, gen uint64, op, fallback string, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		c.pages.SetPageError(UserMessage(err, fallback))
		c.log.Warn(ctx, op+" failed", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if c.gen == gen {
		c.replace(State{Kind: KindClosed})
	}
	c.log.Info(ctx, op+" done")
	return nil
}

// ConfirmEdit validates the draft and creates or updates the contact.
// Validation errors keep the editor open and nothing is sent.
func (c *Controller) ConfirmEdit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Kind != KindEditing {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if !c.session.IsAuthenticated() {
		err := c.deny(ActionSave)
		c.mu.Unlock()
		return err
	}

	createMode := c.state.Contact == nil
	errs := Validate(c.state.Draft, createMode)
	var payload models.ContactPayload
	if len(errs) == 0 {
		var err error
		if payload, err = c.state.Draft.Payload(); err != nil {
			errs[models.FieldDateOfBirth] = MsgDateOfBirthInvalid
		}
	}
	if len(errs) > 0 {
		next := c.state
		next.FieldErrors = errs
		c.replace(next)
		c.mu.Unlock()
		return ErrValidation
	}

	next := c.state
	next.FieldErrors = models.FieldErrors{}
	c.replace(next)

	var id models.ContactID
	if !createMode {
		id = c.state.Contact.ID
		payload.Password = ""
	}
	gen := c.begin()
	c.mu.Unlock()

	var err error
	if createMode {
		_, err = c.gw.CreateContact(ctx, payload)
		return c.finish(ctx, gen, "create contact", MsgSaveFailed, err)
	}
	err = c.gw.UpdateContact(ctx, id, payload)
	return c.finish(ctx, gen, "update contact", MsgSaveFailed, err)
}

// ConfirmDelete deletes the contact awaiting confirmation.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Kind != KindConfirmingDelete {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if !c.session.IsAuthenticated() {
		err := c.deny(ActionDelete)
		c.replace(State{Kind: KindClosed})
		c.mu.Unlock()
		return err
	}

	id := c.state.Contact.ID
	gen := c.begin()
	c.mu.Unlock()

	err := c.gw.DeleteContact(ctx, id)
	return c.finish(ctx, gen, "delete contact", MsgDeleteFailed, err)
}

// ConfirmPasswordChange resubmits the full contact with newPassword.
// An empty password sets the password error and sends nothing.
func (c *Controller) ConfirmPasswordChange(ctx context.Context, newPassword string) error {
	c.mu.Lock()
	if c.state.Kind != KindChangingPassword {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if strings.TrimSpace(newPassword) == "" {
		next := c.state
		next.PasswordError = MsgPasswordRequired
		c.replace(next)
		c.mu.Unlock()
		return ErrValidation
	}
	if !c.session.IsAuthenticated() {
		err := c.deny(ActionChangePassword)
		c.replace(State{Kind: KindClosed})
		c.mu.Unlock()
		return err
	}

	next := c.state
	next.PasswordError = ""
	c.replace(next)

	target := *c.state.Contact
	gen := c.begin()
	c.mu.Unlock()

	err := c.gw.UpdateContact(ctx, target.ID, target.Payload(newPassword))
	return c.finish(ctx, gen, "change password", MsgPasswordChangeFailed, err)
}
