package contacts

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s-]{9,15}$`)
)

// Field error messages shown next to form inputs.
const (
	MsgFirstNameRequired   = "first name is required"
	MsgLastNameRequired    = "last name is required"
	MsgEmailRequired       = "email is required"
	MsgEmailInvalid        = "invalid email address"
	MsgCategoryRequired    = "category is required"
	MsgSubcategoryRequired = "subcategory is required"
	MsgPhoneRequired       = "phone number is required"
	MsgPhoneInvalid        = "invalid phone number"
	MsgDateOfBirthRequired = "date of birth is required"
	MsgDateOfBirthInvalid  = "invalid date, expected YYYY-MM-DD"
	MsgPasswordRequired    = "password is required"
)

// Validate checks a draft and returns the errors per field. Every rule runs,
// so several fields may be reported at once. The result is empty iff the
// draft can be submitted. Password is only required in create mode.
func Validate(d models.Draft, createMode bool) models.FieldErrors {
	errs := models.FieldErrors{}

	if strings.TrimSpace(d.FirstName) == "" {
		errs[models.FieldFirstName] = MsgFirstNameRequired
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs[models.FieldLastName] = MsgLastNameRequired
	}

	switch {
	case strings.TrimSpace(d.Email) == "":
		errs[models.FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(d.Email):
		errs[models.FieldEmail] = MsgEmailInvalid
	}

	if !d.Category.IsValid() {
		errs[models.FieldCategory] = MsgCategoryRequired
	}
	if msg, bad := checkSubcategory(d.Category, d.Subcategory); bad {
		errs[models.FieldSubcategory] = msg
	}

	switch {
	case strings.TrimSpace(d.PhoneNumber) == "":
		errs[models.FieldPhoneNumber] = MsgPhoneRequired
	case !phonePattern.MatchString(d.PhoneNumber):
		errs[models.FieldPhoneNumber] = MsgPhoneInvalid
	}

	switch {
	case strings.TrimSpace(d.DateOfBirth) == "":
		errs[models.FieldDateOfBirth] = MsgDateOfBirthRequired
	default:
		if _, err := models.ParseDate(d.DateOfBirth); err != nil {
			errs[models.FieldDateOfBirth] = MsgDateOfBirthInvalid
		}
	}

	if createMode && strings.TrimSpace(d.Password) == "" {
		errs[models.FieldPassword] = MsgPasswordRequired
	}

	return errs
}

// checkSubcategory is the single place where the category decides which
// subcategory rule applies. The business option list is enforced by the
// selector (models.Draft.SetField), so here any non-empty value passes.
func checkSubcategory(category models.Category, subcategory string) (string, bool) {
	mode, _ := models.Subcategories(category)
	switch mode {
	case models.SubcategoryDisabled:
		return "", false
	default:
		if strings.TrimSpace(subcategory) == "" {
			return MsgSubcategoryRequired, true
		}
		return "", false
	}
}
