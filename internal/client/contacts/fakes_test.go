package contacts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

// fakeGateway records calls and returns canned results.
type fakeGateway struct {
	mu sync.Mutex

	ListRet []models.Contact
	ListErr error

	CreateRet models.Contact
	CreateErr error
	UpdateErr error
	DeleteErr error

	// block, when set, is received from before every mutating call returns.
	block chan struct{}
	// entered, when set, is signalled when a mutating call starts.
	entered chan struct{}

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	LastCreate   models.ContactPayload
	LastUpdateID models.ContactID
	LastUpdate   models.ContactPayload
	LastDeleteID models.ContactID
}

func (f *fakeGateway) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeGateway) ListContacts(ctx context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.Contact(nil), f.ListRet...), nil
}

func (f *fakeGateway) CreateContact(ctx context.Context, p models.ContactPayload) (models.Contact, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	f.LastCreate = p
	return f.CreateRet, f.CreateErr
}

func (f *fakeGateway) UpdateContact(ctx context.Context, id models.ContactID, p models.ContactPayload) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastUpdateID = id
	f.LastUpdate = p
	return f.UpdateErr
}

func (f *fakeGateway) DeleteContact(ctx context.Context, id models.ContactID) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeGateway) mutations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CreateCalls + f.UpdateCalls + f.DeleteCalls
}

type fakeSession struct {
	authenticated bool
}

func (s *fakeSession) IsAuthenticated() bool { return s.authenticated }

type fakePages struct {
	msg     string
	sets    int
	clears  int
	history []string
}

func (p *fakePages) SetPageError(msg string) {
	p.msg = msg
	p.sets++
	p.history = append(p.history, msg)
}

func (p *fakePages) ClearPageError() {
	p.msg = ""
	p.clears++
}

func sampleContact() models.Contact {
	return models.Contact{
		ID:          "17",
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Email:       "jan@x.pl",
		PhoneNumber: "123456789",
		Category:    models.CategoryBusiness,
		Subcategory: "Szef",
		DateOfBirth: models.Instant{Time: mustDate("2000-01-01")},
	}
}

func validDraft() models.Draft {
	return models.Draft{
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Email:       "jan@x.pl",
		Category:    models.CategoryPrivate,
		PhoneNumber: "123456789",
		DateOfBirth: "2000-01-01",
		Password:    "secret",
	}
}

func mustDate(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
