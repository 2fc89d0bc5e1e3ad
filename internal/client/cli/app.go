package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/identcore/internal/client/client"
	"github.com/dmitrijs2005/identcore/internal/client/config"
	"github.com/dmitrijs2005/identcore/internal/client/session"
)

type sessionStore interface {
	Load(ctx context.Context) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	client   client.Client
	sessions sessionStore
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	store, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		log.Printf("error opening session file: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewAccountClient(c.ServerEndpointAddr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return newApp(c, apiClient, store, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, store sessionStore, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, sessions: store, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.restoreSession(ctx)

	printlnFn("Welcome to identcore CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) restoreSession(ctx context.Context) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		log.Printf("error loading session: %v", err)
		return
	}
	if s.Token != "" {
		a.client.SetAccessToken(s.Token)
		a.userName = s.Username
	}
}

func (a *App) remember(ctx context.Context, username string) {
	a.userName = username
	if err := a.sessions.Save(ctx, session.Session{Token: a.client.AccessToken(), Username: username}); err != nil {
		log.Printf("error saving session: %v", err)
	}
}

func (a *App) forget(ctx context.Context) {
	a.userName = ""
	a.client.SetAccessToken("")
	if err := a.sessions.Clear(ctx); err != nil {
		log.Printf("error clearing session: %v", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.AccessToken() != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		log.Printf("error closing client: %v", err)
	}
	if err := a.sessions.Close(); err != nil {
		log.Printf("error closing session file: %v", err)
	}
}
