package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/modista/modista-go/internal/adapters/assets"
	"github.com/modista/modista-go/internal/bootstrap"
	"github.com/modista/modista-go/internal/domain/styling"
)

// assetFolder resolves the folder an asset command operates on: an explicit
// -folder flag wins, otherwise the signed-in client's private folder.
func assetFolder(app *bootstrap.App, folder string) (string, error) {
	if folder != "" {
		return folder, nil
	}
	id, ok := app.Session.Identity()
	if !ok || id.Role != styling.RoleClient {
		return "", errors.New("-folder is required for non-client accounts")
	}
	return assets.ClientFolder(id.Email), nil
}

func requireAssets(app *bootstrap.App) error {
	if app.Assets == nil {
		return errors.New("no asset store configured: set MODISTA_ASSETS_BASE_URL")
	}
	return nil
}

func runAssetsList(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("assets-ls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	folder := fs.String("folder", "", "Folder to list (defaults to the client's own folder)")
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
	if err := requireAssets(app); err != nil {
		return err
	}
	dir, err := assetFolder(app, *folder)
	if err != nil {
		return err
	}

	objects, err := app.Assets.List(ctx, dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "NAME\tSIZE"); err != nil {
		return err
	}
	for _, o := range objects {
		if err := writef(tw, "%s\t%d\n", o.Name, o.Size); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runAssetsGet(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("assets-get", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	folder := fs.String("folder", "", "Folder holding the object")
	name := fs.String("name", "", "Object name (required)")
	out := fs.String("out", "", "Output file path (defaults to the object name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := requireAssets(app); err != nil {
		return err
	}
	dir, err := assetFolder(app, *folder)
	if err != nil {
		return err
	}

	body, err := app.Assets.Download(ctx, dir, *name)
	if err != nil {
		return fmt.Errorf("download %s/%s: %w", dir, *name, err)
	}
	defer body.Close()

	target := *out
	if target == "" {
		target = filepath.Base(*name)
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, body)
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	cmdCtx.Logger.InfoContext(ctx, "downloaded", "name", *name, "bytes", n, "to", target)
	return nil
}

func runAssetsPut(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("assets-put", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	folder := fs.String("folder", "", "Destination folder")
	file := fs.String("file", "", "Local file to upload (required)")
	name := fs.String("name", "", "Object name (defaults to the file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	app, err := signIn(cmdCtx, ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := requireAssets(app); err != nil {
		return err
	}
	dir, err := assetFolder(app, *folder)
	if err != nil {
		return err
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	objectName := *name
	if objectName == "" {
		objectName = filepath.Base(*file)
	}
	if err := app.Assets.Upload(ctx, dir, objectName, f); err != nil {
		return fmt.Errorf("upload %s/%s: %w", dir, objectName, err)
	}
	cmdCtx.Logger.InfoContext(ctx, "uploaded", "name", objectName, "folder", dir)
	return nil
}

func runAssetsDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("assets-rm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email, password := credentialFlags(fs)
	folder := fs.String("folder", "", "Folder holding the object")
	name := fs.String("name", "", "Object name (required)")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireCredentials(*email, *password); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
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
	if err := requireAssets(app); err != nil {
		return err
	}
	dir, err := assetFolder(app, *folder)
	if err != nil {
		return err
	}

	if err := app.Assets.Delete(ctx, dir, *name); err != nil {
		return fmt.Errorf("delete %s/%s: %w", dir, *name, err)
	}
	cmdCtx.Logger.InfoContext(ctx, "deleted", "name", *name, "folder", dir)
	return nil
}
