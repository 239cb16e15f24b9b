package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/contactbook/internal/client/contacts"
	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/common"
)

var errNoSuchRow = errors.New("no such row")

// pick resolves a row number of the last printed list.
func (a *App) pick(arg string) (models.Contact, error) {
	records := a.contacts.Snapshot().Records
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(records) {
		err := fmt.Errorf("%w: %q", errNoSuchRow, arg)
		fmt.Fprintf(a.out, "No contact number %q, see list.\n", arg)
		return models.Contact{}, err
	}
	return records[n-1], nil
}

// fail prints the page error left by a failed action, or err itself when
// the action did not produce one.
func (a *App) fail(err error) error {
	if msg := a.contacts.Snapshot().PageError; msg != "" {
		fmt.Fprintln(a.out, "Error: "+msg)
	} else {
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}

// retry asks whether to resubmit after a failed gateway call. The open
// dialog is cancelled when the answer is no.
func (a *App) retry() bool {
	ok, err := Confirm(a.reader, "Try again?", a.out)
	if err != nil || !ok {
		a.contacts.Cancel()
		return false
	}
	return true
}

func (a *App) List(ctx context.Context) error {
	a.printList()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	err := a.contacts.Refresh(ctx)
	a.printList()
	return err
}

func (a *App) View(ctx context.Context, arg string) error {
	c, err := a.pick(arg)
	if err != nil {
		return err
	}
	if err := a.contacts.RequestView(c); err != nil {
		return a.fail(err)
	}
	defer a.contacts.Cancel()

	if st := a.contacts.Dialog(); st.Contact != nil {
		a.printContact(*st.Contact)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	c, err := a.pick(arg)
	if err != nil {
		return err
	}
	if err := a.contacts.RequestDelete(c); err != nil {
		return a.fail(err)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s?", c.FullName()), a.out)
	if err != nil || !ok {
		a.contacts.Cancel()
		fmt.Fprintln(a.out, "Cancelled.")
		return err
	}

	for {
		err := a.contacts.ConfirmDelete(ctx)
		if err == nil {
			fmt.Fprintln(a.out, "Deleted.")
			a.printList()
			return nil
		}
		a.fail(err)
		if errors.Is(err, contacts.ErrNotAuthenticated) || !a.retry() {
			return err
		}
	}
}

func (a *App) ChangePassword(ctx context.Context, arg string) error {
	c, err := a.pick(arg)
	if err != nil {
		return err
	}
	if err := a.contacts.RequestPasswordChange(c); err != nil {
		return a.fail(err)
	}

	for {
		pw, err := getPassword("New password for "+c.FullName(), a.out)
		if err != nil {
			a.contacts.Cancel()
			return err
		}
		err = a.contacts.ConfirmPasswordChange(ctx, string(pw))
		common.WipeByteArray(pw)

		switch {
		case err == nil:
			fmt.Fprintln(a.out, "Password changed.")
			return nil
		case errors.Is(err, contacts.ErrValidation):
			fmt.Fprintln(a.out, "  "+a.contacts.Dialog().PasswordError)
		default:
			a.fail(err)
			if errors.Is(err, contacts.ErrNotAuthenticated) || !a.retry() {
				return err
			}
		}
	}
}
