package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/contactbook/internal/client/services"
	"github.com/dmitrijs2005/contactbook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, stores the token on success and reloads
// the list so it reflects the new session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		fmt.Fprintln(a.out, "Login failed: "+err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", username)
	if err := a.contacts.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "refresh after login failed", "error", err)
	}
	a.printList()
	return nil
}

// Register prompts for a username and a password typed twice.
// The user logs in separately afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.auth.Register(ctx, username, password, confirm)
	var fe *services.FormError
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Account created. You can log in now.")
		return nil
	case errors.As(err, &fe):
		fmt.Fprintln(a.out, "Registration failed:")
		fields := make([]string, 0, len(fe.Fields))
		for f := range fe.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f, fe.Fields[f])
		}
	default:
		fmt.Fprintln(a.out, "Registration failed: "+err.Error())
	}
	return err
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the session. Token claims are read without verification
// and shown for information only.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	info, err := a.session.Describe()
	fmt.Fprintf(a.out, "Logged in as %s.\n", info.Username)
	if err != nil {
		a.log.Debug(ctx, "token is not a readable JWT", "error", err)
		return nil
	}

	if info.Subject != "" {
		fmt.Fprintln(a.out, "Subject: "+info.Subject)
	}
	switch {
	case info.ExpiresAt.IsZero():
	case info.Expired(a.now()):
		fmt.Fprintf(a.out, "Token expired at %s.\n", info.ExpiresAt.Local().Format("2006-01-02 15:04"))
	default:
		fmt.Fprintf(a.out, "Token expires at %s.\n", info.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
