package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"task-assistant/internal/console"
	"task-assistant/pkg/taskapi"
)

// requireSession runs the SessionGate for protected commands.
func (a *app) requireSession(ctx context.Context) error {
	gate := console.NewSessionGate(func(route string) {
		fmt.Fprintf(a.errOut, "Not signed in. Run `taskchat login` (%s).\n", route)
	})
	gate.Observe(console.SessionState{IsLoading: true})

	info, err := a.api.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	var user *taskapi.User
	if info != nil {
		user = &info.User
	}
	if !gate.Observe(console.SessionState{User: user}) {
		return errSignedOut
	}
	a.l.Debugf(ctx, "taskchat: signed in as %s", user.Email)
	return nil
}

func newFlags(name string, a *app) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// --- Auth ---

func cmdSignUp(ctx context.Context, a *app, args []string) error {
	fs := newFlags("signup", a)
	email := fs.String("email", "", "email address")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n, err := a.orPrompt(*name, "Full name: ")
	if err != nil {
		return err
	}
	e, err := a.orPrompt(*email, "Email: ")
	if err != nil {
		return err
	}
	p, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	res, err := a.api.SignUp(ctx, e, p, n)
	if err != nil {
		return errors.New(taskapi.AuthErrorMessage(err))
	}
	if err := a.tokens.Save(res.Token); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created! Signed in as %s.\n", res.User.Email)
	return nil
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login", a)
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := a.orPrompt(*email, "Email: ")
	if err != nil {
		return err
	}
	p, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	res, err := a.api.SignIn(ctx, e, p)
	if err != nil {
		return errors.New(taskapi.AuthErrorMessage(err))
	}
	if err := a.tokens.Save(res.Token); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.User.Name)
	return nil
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	if a.api.Token() != "" {
		if err := a.api.SignOut(ctx); err != nil {
			a.l.Warnf(ctx, "taskchat.logout: server sign-out failed: %v", err)
		}
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func cmdWhoAmI(ctx context.Context, a *app, _ []string) error {
	info, err := a.api.GetSession(ctx)
	if err != nil {
		return err
	}
	if info == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>, session expires %s\n", info.User.Name, info.User.Email, info.Session.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// --- Tasks ---

func (a *app) loadStore(ctx context.Context) (*console.TaskStore, error) {
	store := console.NewTaskStore(a.api)
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return store, nil
}

func (a *app) printTasks(tasks []taskapi.Task, status string) {
	shown := 0
	for i, t := range tasks {
		if status == taskapi.StatusPending && t.Completed || status == taskapi.StatusCompleted && !t.Completed {
			continue
		}
		fmt.Fprintln(a.out, console.FormatTask(i+1, t.Title, t.Description, t.Completed, a.color))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(a.out, "No tasks yet. Add one with `taskchat add <title>`.")
	}
}

func cmdTasks(ctx context.Context, a *app, args []string) error {
	fs := newFlags("tasks", a)
	status := fs.String("status", taskapi.StatusAll, "all | pending | completed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch *status {
	case taskapi.StatusAll, taskapi.StatusPending, taskapi.StatusCompleted:
	default:
		return fmt.Errorf("invalid -status %q", *status)
	}

	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	a.printTasks(store.Tasks(), *status)
	return nil
}

func cmdAdd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("add", a)
	desc := fs.String("d", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := console.NewTaskStore(a.api)
	form := console.NewTaskForm(store)
	form.Title = strings.Join(fs.Args(), " ")
	form.Description = *desc

	ok, err := form.Submit(ctx)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	if !ok {
		return errors.New("a title is required")
	}
	a.printTasks(store.Tasks(), taskapi.StatusAll)
	return nil
}

func (a *app) findTask(store *console.TaskStore, args []string) (taskapi.Task, error) {
	if len(args) != 1 {
		return taskapi.Task{}, errors.New("expected one task number or id")
	}
	t, ok := store.Find(args[0])
	if !ok {
		return taskapi.Task{}, fmt.Errorf("no task %q", args[0])
	}
	return t, nil
}

func cmdEdit(ctx context.Context, a *app, args []string) error {
	fs := newFlags("edit", a)
	title := fs.String("title", "", "new title")
	desc := fs.String("d", "", "new description (empty clears it)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if len(set) == 0 {
		return errors.New("nothing to change: pass -title and/or -d")
	}

	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	t, err := a.findTask(store, fs.Args())
	if err != nil {
		return err
	}

	editor := console.NewTaskEditor(store, t)
	editor.Begin()
	if set["title"] {
		editor.Title = *title
	}
	if set["d"] {
		editor.Description = *desc
	}

	ok, err := editor.Save(ctx)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if !ok {
		editor.Cancel()
		return errors.New("a title is required")
	}
	a.printTasks(store.Tasks(), taskapi.StatusAll)
	return nil
}

func cmdToggle(ctx context.Context, a *app, args []string) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	t, err := a.findTask(store, args)
	if err != nil {
		return err
	}
	if _, err := store.Toggle(ctx, t.ID); err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	a.printTasks(store.Tasks(), taskapi.StatusAll)
	return nil
}

func cmdRemove(ctx context.Context, a *app, args []string) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	t, err := a.findTask(store, args)
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, t.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	fmt.Fprintf(a.out, "Deleted %q.\n", t.Title)
	return nil
}

// --- Chat ---

func cmdChat(ctx context.Context, a *app, args []string) error {
	fs := newFlags("chat", a)
	sessionID := fs.String("session", "", "continue an existing chat session")
	if err := fs.Parse(args); err != nil {
		return err
	}

	panel := console.NewChatPanel(a.api)
	panel.OnTasksChanged = func(ctx context.Context) {
		tasks, err := a.api.ListTasks(ctx, taskapi.StatusAll)
		if err != nil {
			a.l.Warnf(ctx, "taskchat.chat: reload tasks: %v", err)
			return
		}
		fmt.Fprintf(a.out, "(%d task(s) in your list)\n", len(tasks))
	}

	if *sessionID != "" {
		history, err := a.api.ListChatMessages(ctx, *sessionID, 0)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		panel.Resume(*sessionID, history)
		for _, m := range history {
			a.printMessage(m)
		}
	}

	fmt.Fprintln(a.out, "Chat with your task assistant. Type /quit to leave.")
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := a.readLine("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			if id := panel.SessionID(); id != "" {
				fmt.Fprintf(a.out, "Session %s. Resume with `taskchat chat -session %s`.\n", id, id)
			}
			return nil
		}

		reply, err := panel.Send(ctx, line)
		if err != nil {
			fmt.Fprintln(a.errOut, panel.Error())
			panel.DismissError()
			continue
		}
		fmt.Fprintln(a.out, console.Format(console.Render(reply.Reply), a.color))
	}
}

func (a *app) printMessage(m taskapi.ChatMessage) {
	if m.IsAgent() {
		fmt.Fprintln(a.out, console.Format(console.Render(m.MessageText), a.color))
		return
	}
	fmt.Fprintln(a.out, "> "+m.MessageText)
}
