// Package cli implements the mastoctl command line application. It wires the
// client library to the session store so a user can authorize once and reuse
// the session across invocations.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fedikit/masto/pkg/credstore"
	"github.com/fedikit/masto/pkg/httpx"
	"github.com/fedikit/masto/pkg/masto"
	"github.com/fedikit/masto/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the CLI application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger
	store  *credstore.Store

	stdin  io.Reader
	stdout io.Writer
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "mastoctl",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	store, err := credstore.Open(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	if err := store.ApplyMigrations(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}
	app.store = store

	return app, nil
}

func (app *Application) Close() error {
	return app.store.Close()
}

// Run dispatches to the subcommand named by args[0].
func (app *Application) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mastoctl <login|whoami|toot|timeline|sessions|logout>")
	}

	ctx := slogx.WithContext(context.Background(), app.logger)

	switch args[0] {
	case "login":
		return app.runLogin(ctx)
	case "whoami":
		return app.runWhoami(ctx)
	case "toot":
		return app.runToot(ctx, args[1:])
	case "timeline":
		return app.runTimeline(ctx, args[1:])
	case "sessions":
		return app.runSessions(ctx)
	case "logout":
		return app.runLogout(ctx)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// runLogin walks the full authorization flow: register the application with
// the instance, print the authorization URL, read the code the user pastes
// back, exchange it for a token, and persist the resulting session.
func (app *Application) runLogin(ctx context.Context) error {
	if app.cfg.Instance == "" {
		return fmt.Errorf("MASTO_INSTANCE must be set to log in")
	}
	ctx = slogx.WithInstance(ctx, app.cfg.Instance)

	registration := masto.NewRegistration(app.cfg.Instance)
	registered, err := registration.Register(ctx, masto.AppConfig{
		ClientName:   app.cfg.ClientName,
		RedirectURIs: masto.OutOfBandRedirect,
		Scopes:       masto.ScopeRead + " " + masto.ScopeWrite,
		Website:      app.cfg.Website,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintf(app.stdout, "Open this URL in your browser and authorize the application:\n\n  %s\n\n", registered.AuthorizeURL())
	fmt.Fprint(app.stdout, "Paste the authorization code: ")

	code, err := app.readLine()
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	client, err := registered.ExchangeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("code exchange failed: %w", err)
	}

	if err := app.store.Save(ctx, app.cfg.Session, client.Data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	account, err := client.VerifyCredentials(ctx)
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	fmt.Fprintf(app.stdout, "Logged in as @%s on %s (session %q)\n", account.Acct, client.Data.Base, app.cfg.Session)
	return nil
}

func (app *Application) runWhoami(ctx context.Context) error {
	client, err := app.resumeSession(ctx)
	if err != nil {
		return err
	}

	account, err := client.VerifyCredentials(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "@%s (%s)\n%d followers, %d following, %d statuses\n",
		account.Acct, account.DisplayName,
		account.FollowersCount, account.FollowingCount, account.StatusesCount)
	return nil
}

func (app *Application) runToot(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mastoctl toot <text>")
	}

	client, err := app.resumeSession(ctx)
	if err != nil {
		return err
	}

	status, err := client.NewStatus(ctx, masto.NewStatusBuilder(strings.Join(args, " ")))
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Posted: %s\n", status.URL)
	return nil
}

func (app *Application) runTimeline(ctx context.Context, args []string) error {
	client, err := app.resumeSession(ctx)
	if err != nil {
		return err
	}

	var statuses []masto.Status
	which := "home"
	if len(args) > 0 {
		which = args[0]
	}

	switch which {
	case "home":
		statuses, err = client.HomeTimeline(ctx)
	case "public":
		statuses, err = client.PublicTimeline(ctx, false)
	case "local":
		statuses, err = client.PublicTimeline(ctx, true)
	default:
		statuses, err = client.TagTimeline(ctx, strings.TrimPrefix(which, "#"), false)
	}
	if err != nil {
		return err
	}

	for _, status := range statuses {
		fmt.Fprintf(app.stdout, "@%s: %s\n", status.Account.Acct, status.Content)
	}
	return nil
}

func (app *Application) runSessions(ctx context.Context) error {
	names, err := app.store.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(app.stdout, "no sessions")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(app.stdout, name)
	}
	return nil
}

func (app *Application) runLogout(ctx context.Context) error {
	if err := app.store.Delete(ctx, app.cfg.Session); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Removed session %q\n", app.cfg.Session)
	return nil
}

// resumeSession loads the named session and rebuilds a client from it.
func (app *Application) resumeSession(ctx context.Context) (*masto.Client, error) {
	data, err := app.store.Load(ctx, app.cfg.Session)
	if err != nil {
		if err == credstore.ErrNotFound {
			return nil, fmt.Errorf("no session %q, run `mastoctl login` first", app.cfg.Session)
		}
		return nil, err
	}

	client := masto.NewClient(data)
	client.HTTPClient.Timeout = app.cfg.HTTPTimeout
	client.Throttle = httpx.NewThrottle(httpx.InstanceLimit)
	return client, nil
}

func (app *Application) readLine() (string, error) {
	line, err := bufio.NewReader(app.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
