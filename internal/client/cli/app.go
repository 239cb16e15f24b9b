package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/client"
	"github.com/dmitrijs2005/contactbook/internal/client/config"
	"github.com/dmitrijs2005/contactbook/internal/client/contacts"
	"github.com/dmitrijs2005/contactbook/internal/client/services"
	"github.com/dmitrijs2005/contactbook/internal/client/session"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// sessionState is the part of the session the CLI reads.
type sessionState interface {
	IsAuthenticated() bool
	Username() string
	Describe() (session.Info, error)
}

type App struct {
	config   *config.Config
	db       *sql.DB
	session  sessionState
	auth     services.AuthService
	contacts *contacts.Manager
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the local database, restores the saved session and wires the
// backend client into the auth service and the contact manager.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	sess := session.NewManager(db, log)
	if err := sess.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	api := client.NewHTTPClient(cfg.ServerURL, sess, log)

	return &App{
		config:   cfg,
		db:       db,
		session:  sess,
		auth:     services.NewAuthService(api, sess, log),
		contacts: contacts.NewManager(api, sess, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}, nil
}

// Run loads the contact list and blocks in the REPL until the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Contact book (type 'help' for commands)")

	if err := a.contacts.Start(ctx); err != nil {
		a.log.Warn(ctx, "initial load failed", "error", err)
	}
	a.printList()

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if name := a.session.Username(); name != "" {
		return "(" + name + ")"
	}
	return "(logged in)"
}
