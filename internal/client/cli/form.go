package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/contactbook/internal/client/contacts"
	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/common"
)

func (a *App) Add(ctx context.Context) error {
	if err := a.contacts.RequestCreate(); err != nil {
		return a.fail(err)
	}
	return a.runEditor(ctx)
}

func (a *App) Edit(ctx context.Context, arg string) error {
	c, err := a.pick(arg)
	if err != nil {
		return err
	}
	if err := a.contacts.RequestEdit(c); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Press Enter to keep the current value.")
	return a.runEditor(ctx)
}

// runEditor fills the open editor and submits it. After a validation
// failure only the rejected fields are asked again.
func (a *App) runEditor(ctx context.Context) error {
	fields := models.DraftFields
	for {
		if err := a.fillFields(fields); err != nil {
			a.contacts.Cancel()
			fmt.Fprintln(a.out, "Cancelled.")
			return err
		}

		err := a.contacts.ConfirmEdit(ctx)
		switch {
		case err == nil:
			fmt.Fprintln(a.out, "Saved.")
			a.printList()
			return nil

		case errors.Is(err, contacts.ErrValidation):
			fe := a.contacts.Dialog().FieldErrors
			fmt.Fprintln(a.out, "Please correct the following:")
			a.printFieldErrors(fe)
			fields = fe.Fields()

		case errors.Is(err, contacts.ErrNotAuthenticated):
			a.fail(err)
			a.contacts.Cancel()
			return err

		default:
			a.fail(err)
			if !a.retry() {
				return err
			}
			fields = nil
		}
	}
}

// fillFields prompts for each field in order. A field whose input is
// rejected by the draft is asked again.
func (a *App) fillFields(fields []string) error {
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		value, skip, err := a.promptField(field)
		if err != nil {
			return err
		}
		if skip {
			continue
		}
		if err := a.contacts.SetDraftField(field, value); err != nil {
			fmt.Fprintln(a.out, "  "+err.Error())
			i--
			continue
		}
		if field == models.FieldCategory && !slices.Contains(fields[i+1:], models.FieldSubcategory) {
			// a new category may need a new subcategory
			fields = append(fields[:i+1:i+1], append([]string{models.FieldSubcategory}, fields[i+1:]...)...)
		}
	}
	return nil
}

// promptField asks for one field. skip reports that the current value stays.
func (a *App) promptField(field string) (value string, skip bool, err error) {
	st := a.contacts.Dialog()
	current, err := st.Draft.Field(field)
	if err != nil {
		return "", false, err
	}

	label := fieldLabel(field)
	if current != "" && field != models.FieldPassword {
		shown := current
		if field == models.FieldDateOfBirth {
			shown = a.displayDraftDate(current)
		}
		label += " [" + shown + "]"
	}

	switch field {
	case models.FieldCategory:
		options := make([]string, len(models.Categories))
		for i, c := range models.Categories {
			options[i] = string(c)
		}
		value, err = GetChoice(a.reader, label, options, a.out)
		if errors.Is(err, ErrNoSuchOption) {
			fmt.Fprintln(a.out, "  "+err.Error())
			return a.promptField(field)
		}

	case models.FieldSubcategory:
		mode, options := models.Subcategories(st.Draft.Category)
		switch mode {
		case models.SubcategoryDisabled:
			return "", true, nil
		case models.SubcategoryChoice:
			value, err = GetChoice(a.reader, label, options, a.out)
			if errors.Is(err, ErrNoSuchOption) {
				fmt.Fprintln(a.out, "  "+err.Error())
				return a.promptField(field)
			}
		default:
			value, err = getSimpleText(a.reader, label, a.out)
		}

	case models.FieldPassword:
		if !st.CreateMode() {
			return "", true, nil
		}
		var pw []byte
		pw, err = getPassword("Password", a.out)
		value = string(pw)
		common.WipeByteArray(pw)

	case models.FieldDateOfBirth:
		value, err = getSimpleText(a.reader, label+" ("+a.config.DateLayout+")", a.out)
		if value != "" {
			value = a.inputDate(value)
		}

	default:
		value, err = getSimpleText(a.reader, label, a.out)
	}

	if err != nil {
		return "", false, err
	}
	if value == "" && field != models.FieldPassword {
		return "", true, nil
	}
	return value, false, nil
}

// displayDraftDate shows a draft date in the display layout.
func (a *App) displayDraftDate(s string) string {
	t, err := models.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(a.config.DateLayout)
}
