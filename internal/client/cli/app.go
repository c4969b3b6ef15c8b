// Package cli implements the interactive chat client: a small REPL over the
// gRPC wrapper with commands for accounts, messaging, and the live message
// feed.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/mbaklanov/chatline/internal/client/client"
	"github.com/mbaklanov/chatline/internal/client/config"
)

// loginAttempts bounds consecutive wrong-password retries per login command.
const loginAttempts = 3

// chatAPI is the surface of client.GRPCClient the CLI uses; tests provide a
// stub.
type chatAPI interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	ListUsers(ctx context.Context) ([]string, error)
	SendMessage(ctx context.Context, dstUsername, text string) (bool, error)
	DeleteAccount(ctx context.Context) error
	Listen(ctx context.Context, deliver func(srcUsername, text string)) error
	Username() string
	Logout()
	Close() error
}

type App struct {
	config *config.Config
	chat   chatAPI
	reader *bufio.Reader
	out    io.Writer

	listenCancel context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewChatClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		chat:   apiClient,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.chat.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.chat.Username() != ""
}

// requestCtx derives the per-call deadline for unary RPCs.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// startListener launches the background goroutine that consumes the message
// stream and prints incoming messages. It is stopped by stopListener.
func (a *App) startListener(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	a.listenCancel = cancel

	go func() {
		if err := a.chat.Listen(ctx, a.printIncoming); err != nil {
			printlnFn("connection to message stream lost:", err.Error())
		}
	}()
}

func (a *App) stopListener() {
	if a.listenCancel != nil {
		a.listenCancel()
		a.listenCancel = nil
	}
	// give the stream goroutine a moment to drop off before the prompt
	time.Sleep(50 * time.Millisecond)
}
