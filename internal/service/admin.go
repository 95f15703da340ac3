package service

import (
	"context"
	"log/slog"

	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
)

// AdminDispatcherOptions groups dependencies for AdminDispatcher.
type AdminDispatcherOptions struct {
	API       ports.AdminAPI
	Directory *Directory
	Session   *Session
	Logger    *slog.Logger
}

// AdminDispatcher runs the admin edit/delete operations for the two resource
// kinds. On success it re-fetches the resource's admin cache and reports the
// backend's message; on failure the cache is left untouched. Callers use
// Result.OK to decide whether to exit edit mode or navigate away, and are
// responsible for any confirmation step before a delete.
type AdminDispatcher struct {
	api       ports.AdminAPI
	directory *Directory
	session   *Session
	logger    *slog.Logger
}

// NewAdminDispatcher constructs an AdminDispatcher.
func NewAdminDispatcher(opts AdminDispatcherOptions) *AdminDispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminDispatcher{
		api:       opts.API,
		directory: opts.Directory,
		session:   opts.Session,
		logger:    logger,
	}
}

// requireAdmin defensively rejects dispatch under a non-admin role.
func (a *AdminDispatcher) requireAdmin() (Result, bool) {
	if a.session.Role() != styling.RoleAdmin {
		return Result{OK: false, Message: "not authorized: only an admin can manage accounts"}, false
	}
	return Result{}, true
}

// EditClient PUTs an edit diff for a client account.
func (a *AdminDispatcher) EditClient(ctx context.Context, id int64, diff ports.FieldDiff) Result {
	if res, ok := a.requireAdmin(); !ok {
		return res
	}
	msg, err := a.api.UpdateClient(ctx, id, diff)
	if err != nil {
		a.logger.WarnContext(ctx, "edit client failed", slog.Int64("id", id), slog.Any("error", err))
		return failure(err)
	}
	a.directory.RefreshAllClients(ctx)
	return success(msg, "")
}

// DeleteClient removes a client account.
func (a *AdminDispatcher) DeleteClient(ctx context.Context, id int64) Result {
	if res, ok := a.requireAdmin(); !ok {
		return res
	}
	msg, err := a.api.DeleteClient(ctx, id)
	if err != nil {
		a.logger.WarnContext(ctx, "delete client failed", slog.Int64("id", id), slog.Any("error", err))
		return failure(err)
	}
	a.directory.RefreshAllClients(ctx)
	return success(msg, "")
}

// EditStylist PUTs an edit diff for a stylist account.
func (a *AdminDispatcher) EditStylist(ctx context.Context, id int64, diff ports.FieldDiff) Result {
	if res, ok := a.requireAdmin(); !ok {
		return res
	}
	msg, err := a.api.UpdateStylist(ctx, id, diff)
	if err != nil {
		a.logger.WarnContext(ctx, "edit stylist failed", slog.Int64("id", id), slog.Any("error", err))
		return failure(err)
	}
	a.directory.RefreshAllStylists(ctx)
	return success(msg, "")
}

// DeleteStylist removes a stylist account.
func (a *AdminDispatcher) DeleteStylist(ctx context.Context, id int64) Result {
	if res, ok := a.requireAdmin(); !ok {
		return res
	}
	msg, err := a.api.DeleteStylist(ctx, id)
	if err != nil {
		a.logger.WarnContext(ctx, "delete stylist failed", slog.Int64("id", id), slog.Any("error", err))
		return failure(err)
	}
	a.directory.RefreshAllStylists(ctx)
	return success(msg, "")
}
