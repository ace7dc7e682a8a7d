package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errNoUser = errors.New("no user selected, run 'users' and 'use <id>' first")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	hasUser() bool
	Ping(ctx context.Context) error
	AddUser(ctx context.Context) error
	Users(ctx context.Context) error
	Use(ctx context.Context, id string) error
	DeleteUser(ctx context.Context) error
	AddCategory(ctx context.Context) error
	Categories(ctx context.Context) error
	DeleteCategory(ctx context.Context, id string) error
	AddCredential(ctx context.Context) error
	Credentials(ctx context.Context) error
	Show(ctx context.Context, id string) error
	DeleteCredential(ctx context.Context, id string) error
	Settings(ctx context.Context) error
	Otp(ctx context.Context) error
	Verify(ctx context.Context) error
	Log(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the admin CLI.
//
// It reads a line from in, parses the first token as the command and
// dispatches to methods on 'a'. Errors returned by handlers are printed and
// the loop continues. The loop exits on EOF or when the operator types
// "exit" or "quit".
//
//	Always:
//	  - help                 show available commands
//	  - ping                 check the server
//	  - users | adduser      list or create users
//	  - use <id>             select a user
//	  - exit | quit          leave the program
//
//	With a user selected:
//	  - deluser              delete the selected user
//	  - cats | addcat        list or create categories
//	  - delcat <id>          delete a category and its credentials
//	  - creds | addcred      list or create credentials
//	  - show <id>            reveal a credential
//	  - delcred <id>         delete a credential
//	  - settings             show or create security settings
//	  - otp | verify         issue or check a one-time code
//	  - log                  show the activity log
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.hasUser() {
				printlnFn("Available commands: users, adduser, use, deluser, cats, addcat, delcat, creds, addcred, show, delcred, settings, otp, verify, log, ping, exit")
			} else {
				printlnFn("Available commands: users, adduser, use <id>, ping, exit")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := dispatch(ctx, a, cmd, args); err != nil {
				printlnFn("Error:", err)
			}
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	withID := func(f func(context.Context, string) error) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <id>", cmd)
		}
		return f(ctx, args[0])
	}

	switch cmd {
	case "ping":
		return a.Ping(ctx)
	case "users":
		return a.Users(ctx)
	case "adduser":
		return a.AddUser(ctx)
	case "use":
		return withID(a.Use)
	}

	if !a.hasUser() {
		if isUserCommand(cmd) {
			return errNoUser
		}
		return fmt.Errorf("unknown command: %s", cmd)
	}

	switch cmd {
	case "deluser":
		return a.DeleteUser(ctx)
	case "cats":
		return a.Categories(ctx)
	case "addcat":
		return a.AddCategory(ctx)
	case "delcat":
		return withID(a.DeleteCategory)
	case "creds":
		return a.Credentials(ctx)
	case "addcred":
		return a.AddCredential(ctx)
	case "show":
		return withID(a.Show)
	case "delcred":
		return withID(a.DeleteCredential)
	case "settings":
		return a.Settings(ctx)
	case "otp":
		return a.Otp(ctx)
	case "verify":
		return a.Verify(ctx)
	case "log":
		return a.Log(ctx)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func isUserCommand(cmd string) bool {
	switch cmd {
	case "deluser", "cats", "addcat", "delcat", "creds", "addcred", "show", "delcred", "settings", "otp", "verify", "log":
		return true
	}
	return false
}
