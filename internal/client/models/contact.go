package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Category groups contacts. The set of categories is fixed by the backend.
type Category string

const (
	CategoryBusiness Category = "Służbowy"
	CategoryPrivate  Category = "Prywatny"
	CategoryOther    Category = "Inny"
)

// Categories lists the categories offered by the contact form, in display order.
var Categories = []Category{CategoryBusiness, CategoryPrivate, CategoryOther}

// BusinessSubcategories is the closed option list for CategoryBusiness.
var BusinessSubcategories = []string{"Szef", "Klient", "Współpracownik"}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ContactID is the backend-assigned identifier of a contact. The backend may
// encode it as a JSON string or a JSON number; both decode to the same text.
type ContactID string

func (id *ContactID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ContactID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("contact id: %w", err)
	}
	*id = ContactID(n.String())
	return nil
}

func (id ContactID) String() string {
	return string(id)
}

// instantLayouts are tried in order when decoding an Instant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Instant is a point in time transmitted as an ISO-8601 string.
// The zero value encodes as JSON null.
type Instant struct {
	time.Time
}

func (t Instant) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.UTC().Format(time.RFC3339Nano))), nil
}

func (t *Instant) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("instant: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range instantLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("instant: unsupported format %q", s)
}

// Contact is a directory record as returned by the backend.
// Password is write-only and therefore absent here.
type Contact struct {
	ID          ContactID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Category    Category  `json:"category"`
	Subcategory string    `json:"subcategory"`
	DateOfBirth Instant   `json:"dateOfBirth"`
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Payload builds the write body resubmitting every stored field of c,
// with password set as given. An empty password is omitted from the body.
func (c Contact) Payload(password string) ContactPayload {
	return ContactPayload{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Category:    c.Category,
		Subcategory: c.Subcategory,
		DateOfBirth: c.DateOfBirth,
		Password:    password,
	}
}

// ContactPayload is the request body of create and update calls.
// The id travels in the URL, never in the body.
type ContactPayload struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory"`
	DateOfBirth Instant  `json:"dateOfBirth"`
	Password    string   `json:"password,omitempty"`
}
