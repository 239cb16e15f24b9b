package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name, arg string) error {
	if arg != "" {
		name += " " + arg
	}
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                   { return f.loggedIn }
func (f *fakeExec) List(ctx context.Context) error     { return f.record("list", "") }
func (f *fakeExec) Add(ctx context.Context) error      { return f.record("add", "") }
func (f *fakeExec) Refresh(ctx context.Context) error  { return f.record("refresh", "") }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) WhoAmI(ctx context.Context) error   { return f.record("whoami", "") }
func (f *fakeExec) View(ctx context.Context, arg string) error {
	return f.record("view", arg)
}
func (f *fakeExec) Edit(ctx context.Context, arg string) error {
	return f.record("edit", arg)
}
func (f *fakeExec) Delete(ctx context.Context, arg string) error {
	return f.record("delete", arg)
}
func (f *fakeExec) ChangePassword(ctx context.Context, arg string) error {
	return f.record("passwd", arg)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	_ = capturePrintln(t)

	input := strings.Join([]string{
		"",
		"l",
		"list",
		"view 3",
		"login",
		"add",
		"edit 2",
		"delete 1",
		"passwd 4",
		"refresh",
		"whoami",
		"register",
		"logout",
		"exit",
		"list",
	}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, readerOf(input))

	assert.Equal(t, []string{
		"list", "list", "view 3", "login", "add", "edit 2", "delete 1",
		"passwd 4", "refresh", "whoami", "register", "logout",
	}, f.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, readerOf("help\nlogin\nhelp\nquit\n"))

	assert.Contains(t, *lines, helpAnonymous)
	assert.Contains(t, *lines, helpLoggedIn)
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	lines := capturePrintln(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "(jan)" }, readerOf("frobnicate"))

	assert.Contains(t, *lines, "Unknown command: frobnicate")
	assert.Contains(t, *lines, "cb (jan)> ")
	assert.Empty(t, f.calls)
}
