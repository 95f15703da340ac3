package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/modista/modista-go/internal/domain/styling"
)

func loginForm(email, password string) styling.LoginForm {
	return styling.LoginForm{Email: email, Password: password}
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
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
	return printIdentity(app.Session.Identity())
}

type registerOptions struct {
	Name     string
	Role     string
	Country  string
	City     string
	BodyType string
	Colors   string
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)

	var opts registerOptions
	fs.StringVar(&opts.Name, "name", "", "Display name (required)")
	fs.StringVar(&opts.Role, "role", "client", "Account role: client, stylist, or admin")
	fs.StringVar(&opts.Country, "country", "", "Country (client only)")
	fs.StringVar(&opts.City, "city", "", "City (client only)")
	fs.StringVar(&opts.BodyType, "body-type", "", "Body type (client only)")
	fs.StringVar(&opts.Colors, "colors", "", "Favorite colors, comma separated (client only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if opts.Name == "" {
		return errors.New("-name is required")
	}
	role, ok := styling.ParseRole(opts.Role)
	if !ok {
		return fmt.Errorf("unknown role %q", opts.Role)
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := newApp(cmdCtx)
	if err != nil {
		return err
	}

	res := app.Session.Register(ctx, styling.RegisterForm{
		Name:                 opts.Name,
		Email:                *email,
		Password:             *password,
		PasswordConfirmation: *password,
		Role:                 role,
		Country:              opts.Country,
		City:                 opts.City,
		BodyType:             opts.BodyType,
		Colors:               opts.Colors,
	})
	if !res.OK {
		return fmt.Errorf("register failed: %s", res.Message)
	}

	cmdCtx.Logger.InfoContext(ctx, "registered", "route", res.Route)
	return printIdentity(app.Session.Identity())
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
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
	if err := app.Session.FetchIdentity(ctx); err != nil {
		return err
	}
	return printIdentity(app.Session.Identity())
}

func runLogout(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
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

	res := app.Session.Logout(ctx)
	if !res.OK {
		return fmt.Errorf("logout failed: %s", res.Message)
	}
	return writeln(os.Stdout, res.Message)
}

type profileOptions struct {
	Name        string
	NewEmail    string
	NewPassword string
	Country     string
	City        string
	BodyType    string
	Colors      string
}

func runProfile(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)

	var opts profileOptions
	fs.StringVar(&opts.Name, "name", "", "New display name")
	fs.StringVar(&opts.NewEmail, "new-email", "", "New email address")
	fs.StringVar(&opts.NewPassword, "new-password", "", "New password")
	fs.StringVar(&opts.Country, "country", "", "New country (client only)")
	fs.StringVar(&opts.City, "city", "", "New city (client only)")
	fs.StringVar(&opts.BodyType, "body-type", "", "New body type (client only)")
	fs.StringVar(&opts.Colors, "colors", "", "New favorite colors, comma separated (client only)")
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

	// Start from the server-derived form and overlay only the provided flags.
	form := app.Session.Form()
	if opts.Name != "" {
		form.Name = opts.Name
	}
	if opts.NewEmail != "" {
		form.Email = opts.NewEmail
	}
	if opts.NewPassword != "" {
		form.Password = opts.NewPassword
		form.PasswordConfirmation = opts.NewPassword
	}
	if opts.Country != "" {
		form.Country = opts.Country
	}
	if opts.City != "" {
		form.City = opts.City
	}
	if opts.BodyType != "" {
		form.BodyType = opts.BodyType
	}
	if opts.Colors != "" {
		form.Colors = opts.Colors
	}

	res := app.Reconcile.Reconcile(ctx, form)
	if !res.OK {
		return fmt.Errorf("profile update failed: %s", res.Message)
	}
	if err := writeln(os.Stdout, res.Message); err != nil {
		return err
	}
	return printIdentity(app.Session.Identity())
}

func runChooseStylist(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("choose-stylist", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	stylistID := fs.Int64("stylist-id", 0, "Stylist account ID (required)")
	message := fs.String("message", "", "Message to the stylist")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if *stylistID <= 0 {
		return errors.New("-stylist-id is required")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}

	res := app.Reconcile.ReconcileStylistAndMessage(ctx, *stylistID, *message)
	if !res.OK {
		return fmt.Errorf("choose stylist failed: %s", res.Message)
	}
	return writeln(os.Stdout, res.Message)
}

func runDeleteAccount(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("delete-account", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
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

	res := app.Session.DeleteAccount(ctx)
	if !res.OK {
		return fmt.Errorf("delete account failed: %s", res.Message)
	}
	return writeln(os.Stdout, res.Message)
}

func printIdentity(id styling.Identity, ok bool) error {
	if !ok {
		return writeln(os.Stdout, "not signed in")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(tw, "ID\t%d\nName\t%s\nEmail\t%s\nRole\t%s\n", id.ID, id.Name, id.Email, id.Role); err != nil {
		return err
	}
	if id.Profile != nil {
		p := id.Profile
		if err := writef(
			tw,
			"Country\t%s\nCity\t%s\nBody type\t%s\nColors\t%s\nStylist ID\t%d\nMessage\t%s\n",
			p.Country, p.City, p.BodyType, styling.JoinColors(p.FavoriteColors), p.StylistID, p.MessageToStylist,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
