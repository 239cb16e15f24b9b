package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// Manager is the surface the presentation layer works with. It owns the
// Store and the dialog Controller and refreshes the list after every
// successful mutation.
type Manager struct {
	store  *Store
	dialog *Controller
	log    logging.Logger
}

// NewManager wires a Store and a Controller around the same gateway.
// Page errors of the controller land in the store.
func NewManager(gw Gateway, session Session, log logging.Logger) *Manager {
	store := NewStore(gw, log)
	return &Manager{
		store:  store,
		dialog: NewController(gw, session, store, log),
		log:    log,
	}
}

// Start performs the initial load of the list.
func (m *Manager) Start(ctx context.Context) error {
	return m.store.Refresh(ctx)
}

// Refresh reloads the list on demand.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.store.Refresh(ctx)
}

func (m *Manager) Snapshot() Snapshot {
	return m.store.Snapshot()
}

func (m *Manager) Dialog() State {
	return m.dialog.State()
}

func (m *Manager) RequestView(c models.Contact) error {
	return m.dialog.RequestView(c)
}

func (m *Manager) RequestCreate() error {
	return m.dialog.RequestCreate()
}

func (m *Manager) RequestEdit(c models.Contact) error {
	return m.dialog.RequestEdit(c)
}

func (m *Manager) RequestDelete(c models.Contact) error {
	return m.dialog.RequestDelete(c)
}

func (m *Manager) RequestPasswordChange(c models.Contact) error {
	return m.dialog.RequestPasswordChange(c)
}

func (m *Manager) Cancel() {
	m.dialog.Cancel()
}

func (m *Manager) SetDraftField(field, value string) error {
	return m.dialog.SetDraftField(field, value)
}

func (m *Manager) ConfirmEdit(ctx context.Context) error {
	return m.afterMutation(ctx, m.dialog.ConfirmEdit(ctx))
}

func (m *Manager) ConfirmDelete(ctx context.Context) error {
	return m.afterMutation(ctx, m.dialog.ConfirmDelete(ctx))
}

func (m *Manager) ConfirmPasswordChange(ctx context.Context, newPassword string) error {
	return m.afterMutation(ctx, m.dialog.ConfirmPasswordChange(ctx, newPassword))
}

// afterMutation refreshes the list once when the mutation succeeded. A
// failed refresh is reported through the store's page error only; the
// mutation itself already went through.
func (m *Manager) afterMutation(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	if rerr := m.store.Refresh(ctx); rerr != nil {
		m.log.Warn(ctx, "refresh after mutation failed", "error", rerr)
	}
	return nil
}
