package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
	"github.com/modista/modista-go/internal/routes"
	"github.com/modista/modista-go/internal/service"
)

func runStylists(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("stylists", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	// The stylist directory is public; no sign-in needed.
	app, err := newApp(cmdCtx)
	if err != nil {
		return err
	}

	res := app.Directory.RefreshStylists(ctx)
	if !res.OK {
		return fmt.Errorf("list stylists failed: %s", res.Message)
	}
	return printStylists(app.Directory.Stylists())
}

func runClients(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}

	switch app.Session.Role() {
	case styling.RoleClient:
		res := app.Directory.RefreshPeerClients(ctx)
		if !res.OK {
			return fmt.Errorf("list peer clients failed: %s", res.Message)
		}
		return printClients(app.Directory.PeerClients())
	case styling.RoleStylist:
		res := app.Directory.RefreshMyClients(ctx)
		if !res.OK {
			return fmt.Errorf("list assigned clients failed: %s", res.Message)
		}
		return printClients(app.Directory.MyClients())
	default:
		return errors.New("clients requires a client or stylist account; admins use admin-clients")
	}
}

func runAdminClients(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin-clients", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}

	res := app.Directory.RefreshAllClients(ctx)
	if !res.OK {
		return fmt.Errorf("list clients failed: %s", res.Message)
	}
	return printClients(app.Directory.AllClients())
}

func runAdminStylists(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin-stylists", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}

	res := app.Directory.RefreshAllStylists(ctx)
	if !res.OK {
		return fmt.Errorf("list stylists failed: %s", res.Message)
	}
	return printStylists(app.Directory.AllStylists())
}

type adminEditOptions struct {
	Kind  string
	ID    int64
	Name  string
	Email string
}

func runAdminEdit(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin-edit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)

	var opts adminEditOptions
	fs.StringVar(&opts.Kind, "kind", "", "Resource kind: client or stylist (required)")
	fs.Int64Var(&opts.ID, "id", 0, "Account ID (required)")
	fs.StringVar(&opts.Name, "name", "", "New display name")
	fs.StringVar(&opts.Email, "new-email", "", "New email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if opts.ID <= 0 {
		return errors.New("-id is required")
	}

	diff := ports.FieldDiff{}
	if opts.Name != "" {
		diff["name"] = opts.Name
	}
	if opts.Email != "" {
		diff["email"] = opts.Email
	}
	if len(diff) == 0 {
		return errors.New("nothing to change: pass -name or -new-email")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}

	var res service.Result
	switch opts.Kind {
	case "client":
		res = app.Admin.EditClient(ctx, opts.ID, diff)
	case "stylist":
		res = app.Admin.EditStylist(ctx, opts.ID, diff)
	default:
		return fmt.Errorf("unknown kind %q", opts.Kind)
	}
	if !res.OK {
		return fmt.Errorf("edit failed: %s", res.Message)
	}
	return writeln(os.Stdout, res.Message)
}

func runAdminDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin-delete", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	kind := fs.String("kind", "", "Resource kind: client or stylist (required)")
	id := fs.Int64("id", 0, "Account ID (required)")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}
	if !*yes {
		return errors.New("refusing to delete without -yes")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}

	var res service.Result
	switch *kind {
	case "client":
		res = app.Admin.DeleteClient(ctx, *id)
	case "stylist":
		res = app.Admin.DeleteStylist(ctx, *id)
	default:
		return fmt.Errorf("unknown kind %q", *kind)
	}
	if !res.OK {
		return fmt.Errorf("delete failed: %s", res.Message)
	}
	return writeln(os.Stdout, res.Message)
}

func runRoutes(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("routes", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	role := fs.String("role", "", "Evaluate as this role instead of anonymous")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var id *styling.Identity
	if *role != "" {
		r, ok := styling.ParseRole(*role)
		if !ok {
			return fmt.Errorf("unknown role %q", *role)
		}
		id = &styling.Identity{Role: r}
	}

	paths := routes.Paths()
	sort.Strings(paths)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "PATH\tOUTCOME"); err != nil {
		return err
	}
	for _, p := range paths {
		d := routes.Resolve(p, id)
		outcome := d.Name
		if d.Kind == routes.Unauthorized {
			outcome = d.Placeholder()
		}
		if err := writef(tw, "%s\t%s\n", p, outcome); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printClients(list []styling.ClientRecord) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tNAME\tEMAIL\tCITY\tSTYLIST"); err != nil {
		return err
	}
	for _, c := range list {
		city, stylist := "", ""
		if c.Profile != nil {
			city = c.Profile.City
			if c.Profile.StylistID > 0 {
				stylist = fmt.Sprintf("%d", c.Profile.StylistID)
			}
		}
		if err := writef(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, city, stylist); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printStylists(list []styling.StylistRecord) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tNAME\tEMAIL"); err != nil {
		return err
	}
	for _, s := range list {
		if err := writef(tw, "%d\t%s\t%s\n", s.ID, s.Name, s.Email); err != nil {
			return err
		}
	}
	return tw.Flush()
}
