package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar-date representation used by drafts.
const DateLayout = "2006-01-02"

// Form field names. They double as keys of FieldErrors.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldDateOfBirth = "dateOfBirth"
	FieldPassword    = "password"
)

// DraftFields lists the form fields in display order.
var DraftFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldCategory,
	FieldSubcategory,
	FieldDateOfBirth,
	FieldPassword,
}

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrFieldDisabled     = errors.New("field is disabled")
	ErrOptionNotOffered  = errors.New("option is not offered")
	ErrInvalidDateFormat = errors.New("invalid date")
)

// SubcategoryMode describes how the subcategory input behaves for a category.
type SubcategoryMode int

const (
	// SubcategoryFreeText accepts any text.
	SubcategoryFreeText SubcategoryMode = iota
	// SubcategoryChoice accepts only one of the offered options.
	SubcategoryChoice
	// SubcategoryDisabled accepts nothing; the value is always empty.
	SubcategoryDisabled
)

// Subcategories describes the subcategory selector for category.
// Options is non-nil only in SubcategoryChoice mode.
func Subcategories(category Category) (SubcategoryMode, []string) {
	switch category {
	case CategoryBusiness:
		return SubcategoryChoice, slices.Clone(BusinessSubcategories)
	case CategoryPrivate:
		return SubcategoryDisabled, nil
	default:
		return SubcategoryFreeText, nil
	}
}

// Draft holds the unsaved form values of a contact being created or edited.
// All values are kept as entered; DateOfBirth uses DateLayout.
type Draft struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Category    Category
	Subcategory string
	DateOfBirth string
	Password    string
}

// DraftFromContact pre-populates a draft from c. The password stays blank and
// the date of birth is reduced to its calendar date.
func DraftFromContact(c Contact) Draft {
	d := Draft{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Category:    c.Category,
		Subcategory: c.Subcategory,
	}
	if !c.DateOfBirth.IsZero() {
		d.DateOfBirth = c.DateOfBirth.UTC().Format(DateLayout)
	}
	return d
}

// Field returns the current value of the named field.
func (d Draft) Field(name string) (string, error) {
	switch name {
	case FieldFirstName:
		return d.FirstName, nil
	case FieldLastName:
		return d.LastName, nil
	case FieldEmail:
		return d.Email, nil
	case FieldPhoneNumber:
		return d.PhoneNumber, nil
	case FieldCategory:
		return string(d.Category), nil
	case FieldSubcategory:
		return d.Subcategory, nil
	case FieldDateOfBirth:
		return d.DateOfBirth, nil
	case FieldPassword:
		return d.Password, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// SetField assigns value to the named field, applying the selector rules:
// a category change clears the subcategory, the subcategory of a private
// contact cannot be set, and a business contact only takes an offered
// subcategory. On error the draft is left unchanged.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldCategory:
		if Category(value) != d.Category {
			d.Subcategory = ""
		}
		d.Category = Category(value)
	case FieldSubcategory:
		mode, options := Subcategories(d.Category)
		switch mode {
		case SubcategoryDisabled:
			if value != "" {
				return fmt.Errorf("%w: %s", ErrFieldDisabled, name)
			}
		case SubcategoryChoice:
			if value != "" && !slices.Contains(options, value) {
				return fmt.Errorf("%w: %q", ErrOptionNotOffered, value)
			}
		}
		d.Subcategory = value
	case FieldDateOfBirth:
		d.DateOfBirth = value
	case FieldPassword:
		d.Password = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Payload converts the draft into a write body. The date of birth is
// serialized as the instant of midnight UTC of the entered calendar date.
// The subcategory of a private contact is always sent empty.
func (d Draft) Payload() (ContactPayload, error) {
	p := ContactPayload{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Category:    d.Category,
		Subcategory: d.Subcategory,
		Password:    d.Password,
	}
	if d.Category == CategoryPrivate {
		p.Subcategory = ""
	}
	if strings.TrimSpace(d.DateOfBirth) != "" {
		dob, err := ParseDate(d.DateOfBirth)
		if err != nil {
			return ContactPayload{}, err
		}
		p.DateOfBirth = Instant{Time: dob}
	}
	return p, nil
}

// ParseDate parses a calendar date in DateLayout as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// FieldErrors maps a field name to its user-facing error message.
// An empty map means the form is submittable.
type FieldErrors map[string]string

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Clone returns an independent copy; a nil receiver yields an empty map.
func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// Fields returns the fields with errors in display order, followed by any
// unknown keys sorted by name.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for _, f := range DraftFields {
		if fe.Has(f) {
			out = append(out, f)
		}
	}
	var rest []string
	for k := range fe {
		if !slices.Contains(DraftFields, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}
