package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/modista/modista-go/internal/apperrors"
	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
)

// DirectoryOptions groups dependencies for Directory.
type DirectoryOptions struct {
	Directory ports.DirectoryAPI
	Admin     ports.AdminAPI
	Session   *Session
	Logger    *slog.Logger
}

// Directory holds the role-scoped record caches. Each cache is populated only
// while the session role matches its scope and is emptied whenever the
// identity goes away or changes role. Refreshes replace a cache wholesale; a
// failed refresh clears only the cache it was for.
type Directory struct {
	dir     ports.DirectoryAPI
	admin   ports.AdminAPI
	session *Session
	logger  *slog.Logger

	peerClients []styling.ClientRecord
	myClients   []styling.ClientRecord
	allClients  []styling.ClientRecord
	allStylists []styling.StylistRecord
	stylists    []styling.StylistRecord
}

var _ Invalidator = (*Directory)(nil)

// NewDirectory constructs a Directory with empty caches.
func NewDirectory(opts DirectoryOptions) *Directory {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{
		dir:     opts.Directory,
		admin:   opts.Admin,
		session: opts.Session,
		logger:  logger,
	}
}

// Invalidate empties every cache. Called by the session on identity loss or
// role change.
func (d *Directory) Invalidate() {
	d.peerClients = nil
	d.myClients = nil
	d.allClients = nil
	d.allStylists = nil
	d.stylists = nil
}

// PeerClients returns the cached peer list for the current client.
func (d *Directory) PeerClients() []styling.ClientRecord { return d.peerClients }

// MyClients returns the cached assigned-clients list for the current stylist.
func (d *Directory) MyClients() []styling.ClientRecord { return d.myClients }

// AllClients returns the cached admin client list.
func (d *Directory) AllClients() []styling.ClientRecord { return d.allClients }

// AllStylists returns the cached admin stylist list.
func (d *Directory) AllStylists() []styling.StylistRecord { return d.allStylists }

// Stylists returns the cached public stylist list.
func (d *Directory) Stylists() []styling.StylistRecord { return d.stylists }

// requireRole defensively no-ops a refresh invoked under the wrong role.
func (d *Directory) requireRole(role styling.Role, what string) error {
	if d.session.Role() != role {
		return apperrors.Forbiddenf("not authorized: only a %s can view %s", role, what)
	}
	return nil
}

// RefreshPeerClients repopulates the peer list for a client account: the
// other clients assigned to the same stylist, served by the shared
// assigned-clients endpoint.
func (d *Directory) RefreshPeerClients(ctx context.Context) Result {
	if err := d.requireRole(styling.RoleClient, "peer clients"); err != nil {
		return failure(err)
	}
	list, err := d.dir.StylistClients(ctx)
	if err != nil {
		d.peerClients = nil
		return failure(err)
	}
	d.peerClients = list
	return Result{OK: true}
}

// RefreshMyClients repopulates the assigned-clients list for a stylist.
func (d *Directory) RefreshMyClients(ctx context.Context) Result {
	if err := d.requireRole(styling.RoleStylist, "assigned clients"); err != nil {
		return failure(err)
	}
	list, err := d.dir.StylistClients(ctx)
	if err != nil {
		d.myClients = nil
		return failure(err)
	}
	d.myClients = list
	return Result{OK: true}
}

// RefreshStylists repopulates the public stylist list used when choosing a
// stylist. Not role-gated: the list backs registration flows too.
func (d *Directory) RefreshStylists(ctx context.Context) Result {
	list, err := d.dir.Stylists(ctx)
	if err != nil {
		d.stylists = nil
		return failure(err)
	}
	d.stylists = list
	return Result{OK: true}
}

// RefreshAllClients repopulates the admin client list.
func (d *Directory) RefreshAllClients(ctx context.Context) Result {
	if err := d.requireRole(styling.RoleAdmin, "all clients"); err != nil {
		return failure(err)
	}
	list, err := d.admin.Clients(ctx)
	if err != nil {
		d.allClients = nil
		return failure(err)
	}
	d.allClients = list
	return Result{OK: true}
}

// RefreshAllStylists repopulates the admin stylist list.
func (d *Directory) RefreshAllStylists(ctx context.Context) Result {
	if err := d.requireRole(styling.RoleAdmin, "all stylists"); err != nil {
		return failure(err)
	}
	list, err := d.admin.Stylists(ctx)
	if err != nil {
		d.allStylists = nil
		return failure(err)
	}
	d.allStylists = list
	return Result{OK: true}
}

// RefreshAdmin repopulates both admin caches concurrently. The fetches are
// independent: neither is cancelled by the other failing, and a failure
// clears only its own cache. The combined result reports the first error.
func (d *Directory) RefreshAdmin(ctx context.Context) Result {
	if err := d.requireRole(styling.RoleAdmin, "admin lists"); err != nil {
		return failure(err)
	}

	// The goroutines touch disjoint cache fields, so no locking is needed.
	var g errgroup.Group
	g.Go(func() error {
		list, err := d.admin.Clients(ctx)
		if err != nil {
			d.allClients = nil
			return err
		}
		d.allClients = list
		return nil
	})
	g.Go(func() error {
		list, err := d.admin.Stylists(ctx)
		if err != nil {
			d.allStylists = nil
			return err
		}
		d.allStylists = list
		return nil
	})

	if err := g.Wait(); err != nil {
		d.logger.WarnContext(ctx, "admin refresh failed", slog.Any("error", err))
		return failure(err)
	}
	return Result{OK: true}
}
