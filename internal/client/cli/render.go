package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

var fieldLabels = map[string]string{
	models.FieldFirstName:   "First name",
	models.FieldLastName:    "Last name",
	models.FieldEmail:       "Email",
	models.FieldPhoneNumber: "Phone",
	models.FieldCategory:    "Category",
	models.FieldSubcategory: "Subcategory",
	models.FieldDateOfBirth: "Date of birth",
	models.FieldPassword:    "Password",
}

func fieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func (a *App) formatDate(t models.Instant) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(a.config.DateLayout)
}

// inputDate converts a date typed in the display layout into the draft
// layout. Anything that does not parse is passed through for validation.
func (a *App) inputDate(s string) string {
	if t, err := time.Parse(a.config.DateLayout, s); err == nil {
		return t.Format(models.DateLayout)
	}
	return s
}

func categoryText(c models.Contact) string {
	if c.Subcategory == "" {
		return string(c.Category)
	}
	return string(c.Category) + " / " + c.Subcategory
}

// printList renders the current store snapshot. The page error, if any,
// goes above the table.
func (a *App) printList() {
	snap := a.contacts.Snapshot()
	if snap.PageError != "" {
		fmt.Fprintln(a.out, "! "+snap.PageError)
	}
	if len(snap.Records) == 0 {
		fmt.Fprintln(a.out, "No contacts.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tName\tEmail\tPhone\tCategory\tDate of birth")
	for i, c := range snap.Records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, c.FullName(), c.Email, c.PhoneNumber, categoryText(c), a.formatDate(c.DateOfBirth))
	}
	_ = tw.Flush()
}

func (a *App) printContact(c models.Contact) {
	fmt.Fprintln(a.out, c.FullName())
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Email:\t%s\n", c.Email)
	fmt.Fprintf(tw, "  Phone:\t%s\n", c.PhoneNumber)
	fmt.Fprintf(tw, "  Category:\t%s\n", c.Category)
	if c.Subcategory != "" {
		fmt.Fprintf(tw, "  Subcategory:\t%s\n", c.Subcategory)
	}
	fmt.Fprintf(tw, "  Date of birth:\t%s\n", a.formatDate(c.DateOfBirth))
	_ = tw.Flush()
}

func (a *App) printFieldErrors(fe models.FieldErrors) {
	for _, f := range fe.Fields() {
		fmt.Fprintf(a.out, "  %s: %s\n", fieldLabel(f), fe[f])
	}
}
