// Command taskchat is the terminal client of the task assistant.
//
//	taskchat [-api URL] [-no-color] [-v] <command> [flags] [args]
//
// Commands: signup, login, logout, whoami, tasks, add, edit, toggle, rm, chat.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"task-assistant/pkg/log"
	"task-assistant/pkg/taskapi"
)

const envAPI = "TASKCHAT_API"

// errSignedOut is returned by protected commands after the gate redirected.
var errSignedOut = errors.New("not signed in")

type app struct {
	api    *taskapi.Client
	tokens tokenStore
	l      log.Logger

	in     *bufio.Reader
	inFd   int
	out    io.Writer
	errOut io.Writer
	color  bool
}

type command struct {
	name    string
	usage   string
	run     func(ctx context.Context, a *app, args []string) error
	session bool
}

var commands = []command{
	{"signup", "create an account and sign in", cmdSignUp, false},
	{"login", "sign in", cmdLogin, false},
	{"logout", "sign out", cmdLogout, false},
	{"whoami", "show the signed-in user", cmdWhoAmI, false},
	{"tasks", "list tasks [-status all|pending|completed]", cmdTasks, true},
	{"add", "add a task: add [-d description] <title>", cmdAdd, true},
	{"edit", "edit a task: edit [-title T] [-d D] <n|id>", cmdEdit, true},
	{"toggle", "toggle completion: toggle <n|id>", cmdToggle, true},
	{"rm", "delete a task: rm <n|id>", cmdRemove, true},
	{"chat", "chat with the assistant [-session id]", cmdChat, true},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("taskchat", flag.ContinueOnError)
	apiURL := fs.String("api", envOr(envAPI, taskapi.DefaultBaseURL), "API base URL")
	noColor := fs.Bool("no-color", false, "disable colored output")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage(fs)
		return 2
	}

	logger := log.NewNop()
	if *verbose {
		logger = log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console"})
	}

	tokens, err := defaultTokenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "taskchat:", err)
		return 1
	}

	a := &app{
		api:    taskapi.New(taskapi.Config{BaseURL: *apiURL, Token: tokens.Load()}),
		tokens: tokens,
		l:      logger,
		in:     bufio.NewReader(os.Stdin),
		inFd:   int(os.Stdin.Fd()),
		out:    os.Stdout,
		errOut: os.Stderr,
		color:  !*noColor && term.IsTerminal(int(os.Stdout.Fd())),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	name, rest := fs.Arg(0), fs.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if c.session {
			if err := a.requireSession(ctx); err != nil {
				if !errors.Is(err, errSignedOut) {
					fmt.Fprintln(a.errOut, "taskchat:", err)
				}
				return 1
			}
		}
		if err := c.run(ctx, a, rest); err != nil {
			if !errors.Is(err, flag.ErrHelp) {
				fmt.Fprintln(a.errOut, "taskchat:", err)
			}
			return 1
		}
		return 0
	}

	fmt.Fprintf(os.Stderr, "taskchat: unknown command %q\n", name)
	usage(fs)
	return 2
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: taskchat [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
