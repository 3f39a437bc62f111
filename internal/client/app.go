package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-feed/internal/adapter"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/tui"
	"github.com/MKhiriev/go-feed/models"
)

const appName = "go-feed"

const usage = `usage: go-feed-client <command> [arguments]

commands:
  register <name> <email> [password]   create an account and log in
  login <email> [password]             log in
  post <title> <description>           publish a post
  feed                                 show all posts, newest first
  logout                               forget the saved session
  version                              show build info

An omitted password is read from stdin, without echo on a terminal.`

type App struct {
	adapter   adapter.FeedAdapter
	tokens    tokenFile
	buildInfo models.AppBuildInfo
	password  passwordReader

	out    io.Writer
	logger *logger.Logger
}

func NewApp(feedAdapter adapter.FeedAdapter, tokenPath string, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:   feedAdapter,
		tokens:    tokenFile{path: tokenPath},
		buildInfo: buildInfo,
		password:  stdinPassword(os.Stdin, os.Stderr),
		out:       out,
		logger:    logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.print(usage)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "post":
		return a.post(ctx, rest)
	case "feed":
		return a.feed(ctx, rest)
	case "logout":
		return a.logout()
	case "version":
		a.print(tui.RenderBuildInfo(appName, a.buildInfo))
		return nil
	case "help", "-h", "--help":
		a.print(usage)
		return nil
	default:
		a.print(usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("%w: register <name> <email> [password]", ErrUsage)
	}

	password, err := a.passwordArg(args, 2)
	if err != nil {
		return err
	}

	resp, err := a.adapter.Register(ctx, models.RegisterRequest{Name: args[0], Email: args[1], Password: password})
	if err != nil {
		return err
	}

	return a.startSession(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("%w: login <email> [password]", ErrUsage)
	}

	password, err := a.passwordArg(args, 1)
	if err != nil {
		return err
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: args[0], Password: password})
	if err != nil {
		return err
	}

	return a.startSession(resp)
}

// passwordArg returns args[i], prompting for it when absent.
func (a *App) passwordArg(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}

	return a.password("Password: ")
}

func (a *App) startSession(resp models.AuthResponse) error {
	if err := a.tokens.Save(resp.Token); err != nil {
		return err
	}

	a.print(tui.RenderSession(resp, a.tokens.path))
	return nil
}

func (a *App) post(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: post <title> <description>", ErrUsage)
	}
	if err := a.restoreSession(); err != nil {
		return err
	}

	post, err := a.adapter.CreatePost(ctx, models.CreatePostRequest{Title: args[0], Description: args[1]})
	if err != nil {
		return a.dropStaleSession(err)
	}

	a.print(tui.RenderPostCreated(post))
	return nil
}

func (a *App) feed(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: feed takes no arguments", ErrUsage)
	}
	if err := a.restoreSession(); err != nil {
		return err
	}

	posts, err := a.adapter.ListPosts(ctx)
	if err != nil {
		return a.dropStaleSession(err)
	}

	a.print(tui.RenderFeed(posts))
	return nil
}

func (a *App) logout() error {
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	a.adapter.SetToken("")

	a.print("logged out")
	return nil
}

func (a *App) restoreSession() error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return adapter.ErrNoToken
	}

	a.adapter.SetToken(token)
	return nil
}

// dropStaleSession forgets a token the server refused.
func (a *App) dropStaleSession(err error) error {
	if errors.Is(err, adapter.ErrForbidden) || errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Debug().Err(err).Msg("server rejected saved token")
		if clearErr := a.tokens.Clear(); clearErr != nil {
			return errors.Join(err, clearErr)
		}
		return fmt.Errorf("%w (session expired, log in again)", err)
	}
	return err
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}
