package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	View(ctx context.Context, arg string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	ChangePassword(ctx context.Context, arg string) error
	Refresh(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: (l)ist, view N, refresh, login, register, exit"
	helpLoggedIn  = "Available commands: (l)ist, view N, add, edit N, delete N, passwd N, refresh, whoami, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// N in the commands below is the row number shown by list.
//
//	help           show available commands
//	l | list       show the contact list
//	view N         show one contact
//	add            create a contact
//	edit N         edit a contact
//	delete N       delete a contact
//	passwd N       change the password of a contact
//	refresh        reload the list from the server
//	login          authenticate
//	register       create an account
//	logout         forget the session
//	whoami         show the session
//	exit | quit    leave the program
//
// Handlers print their own errors, so errors returned here are ignored.
// The loop ends on EOF or exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cb%s> ", prefixSpace(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "l", "list":
			_ = a.List(ctx)

		case "view":
			_ = a.View(ctx, arg)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "passwd":
			_ = a.ChangePassword(ctx, arg)

		case "refresh":
			_ = a.Refresh(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
