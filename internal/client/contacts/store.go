package contacts

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// Lister is the read side of the gateway used by the Store.
type Lister interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

// Snapshot is an immutable copy of the Store state.
type Snapshot struct {
	Records   []models.Contact
	Loading   bool
	PageError string
}

// Store holds the last fetched contact list together with the loading flag
// and the page-level error message.
//
// Refresh calls are not serialized: overlapping refreshes each replace the
// records when their response arrives, so the last response wins.
type Store struct {
	gw  Lister
	log logging.Logger

	mu        sync.Mutex
	records   []models.Contact
	loading   bool
	pageError string
}

func NewStore(gw Lister, log logging.Logger) *Store {
	return &Store{gw: gw, log: log.With("component", "store")}
}

// Refresh reloads the whole list from the gateway. On failure the previous
// records are kept and the page error is set; the error is also returned.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.pageError = ""
	s.mu.Unlock()

	records, err := s.gw.ListContacts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.pageError = UserMessage(err, MsgLoadFailed)
		s.log.Warn(ctx, "refresh failed", "error", err)
		return err
	}
	s.records = records
	s.log.Debug(ctx, "contacts refreshed", "count", len(records))
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Records:   slices.Clone(s.records),
		Loading:   s.loading,
		PageError: s.pageError,
	}
}

// SetPageError replaces the page-level error message.
func (s *Store) SetPageError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageError = msg
}

// ClearPageError removes the page-level error message.
func (s *Store) ClearPageError() {
	s.SetPageError("")
}
