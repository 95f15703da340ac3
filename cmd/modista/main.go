// Command modista is a terminal client for the Modista styling service. Each
// invocation signs in with the provided credentials, runs one operation, and
// exits; the session cookie lives only for the lifetime of the process.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/modista/modista-go/config"
	"github.com/modista/modista-go/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const commandTimeout = 2 * time.Minute

func main() {
	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if err := printUsage(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg.Log)

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in and print the resulting identity",
			run:         runLogin,
		},
		"register": {
			name:        "register",
			description: "Create an account and print the resulting identity",
			run:         runRegister,
		},
		"whoami": {
			name:        "whoami",
			description: "Sign in and print the authenticated identity",
			run:         runWhoami,
		},
		"logout": {
			name:        "logout",
			description: "Sign in, then end the backend session",
			run:         runLogout,
		},
		"profile": {
			name:        "profile",
			description: "Update core identity and role profile fields",
			run:         runProfile,
		},
		"choose-stylist": {
			name:        "choose-stylist",
			description: "Assign a stylist and update the message to them",
			run:         runChooseStylist,
		},
		"stylists": {
			name:        "stylists",
			description: "List the public stylist directory",
			run:         runStylists,
		},
		"clients": {
			name:        "clients",
			description: "List clients visible to the signed-in role",
			run:         runClients,
		},
		"admin-clients": {
			name:        "admin-clients",
			description: "List every client account (admin)",
			run:         runAdminClients,
		},
		"admin-stylists": {
			name:        "admin-stylists",
			description: "List every stylist account (admin)",
			run:         runAdminStylists,
		},
		"admin-edit": {
			name:        "admin-edit",
			description: "Edit a client or stylist account (admin)",
			run:         runAdminEdit,
		},
		"admin-delete": {
			name:        "admin-delete",
			description: "Delete a client or stylist account (admin)",
			run:         runAdminDelete,
		},
		"delete-account": {
			name:        "delete-account",
			description: "Delete the signed-in account",
			run:         runDeleteAccount,
		},
		"assets-ls": {
			name:        "assets-ls",
			description: "List model objects in the signed-in client's folder",
			run:         runAssetsList,
		},
		"assets-get": {
			name:        "assets-get",
			description: "Download a model object to a local file",
			run:         runAssetsGet,
		},
		"assets-put": {
			name:        "assets-put",
			description: "Upload a local file as a model object",
			run:         runAssetsPut,
		},
		"assets-rm": {
			name:        "assets-rm",
			description: "Delete a model object",
			run:         runAssetsDelete,
		},
		"routes": {
			name:        "routes",
			description: "Show the route table as seen by the signed-in role",
			run:         runRoutes,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: modista <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := cmds[name]
		if err := writef(os.Stdout, "  %-18s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

// credentialFlags registers the shared sign-in flags on a command's flag set.
func credentialFlags(fs *flag.FlagSet) (email, password *string) {
	email = fs.String("email", "", "Account email (required)")
	password = fs.String("password", "", "Account password (required)")
	return email, password
}

func requireCredentials(email, password string) error {
	if email == "" || password == "" {
		return errors.New("both -email and -password are required")
	}
	return nil
}

func newApp(cmdCtx *commandContext) (*bootstrap.App, error) {
	return bootstrap.NewApp(cmdCtx.Config, cmdCtx.Logger)
}

// signIn builds the application and authenticates it with the given
// credentials. The returned app carries the session cookie for follow-up
// calls within the same process.
func signIn(cmdCtx *commandContext, ctx context.Context, email, password string) (*bootstrap.App, error) {
	app, err := newApp(cmdCtx)
	if err != nil {
		return nil, err
	}

	res := app.Session.Login(ctx, loginForm(email, password))
	if !res.OK {
		return nil, fmt.Errorf("login failed: %s", res.Message)
	}
	return app, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
