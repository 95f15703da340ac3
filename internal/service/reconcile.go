package service

import (
	"context"
	"log/slog"

	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
)

// ReconcilerOptions groups dependencies for Reconciler.
type ReconcilerOptions struct {
	API     ports.AccountAPI
	Session *Session
	Logger  *slog.Logger
}

// Reconciler computes the minimal diff between an edited form and the
// last-known server identity and issues at most two dependent writes: the
// core-identity update first, then the role-profile update only if the core
// update (when attempted) succeeded. Partial server writes are surfaced as an
// overall failure, never rolled back.
type Reconciler struct {
	api     ports.AccountAPI
	session *Session
	logger  *slog.Logger
}

// NewReconciler constructs a Reconciler.
func NewReconciler(opts ReconcilerOptions) *Reconciler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		api:     opts.API,
		session: opts.Session,
		logger:  logger,
	}
}

// CoreDiff returns the changed core-identity fields. Name and email are
// diffed against the identity; a non-empty password is always included with
// its confirmation, since the server never returns a password to diff against.
func CoreDiff(form styling.EditForm, id styling.Identity) ports.FieldDiff {
	diff := ports.FieldDiff{}
	if form.Name != id.Name {
		diff["name"] = form.Name
	}
	if form.Email != id.Email {
		diff["email"] = form.Email
	}
	if form.Password != "" {
		diff["password"] = form.Password
		diff["password_confirmation"] = form.PasswordConfirmation
	}
	if len(diff) == 0 {
		return nil
	}
	return diff
}

// ProfileDiff returns the changed role-profile fields. Only client accounts
// carry a profile; for everyone else the diff is always empty. Colors are
// compared by their canonical JSON encoding, so reordering the same set of
// colors counts as a change.
func ProfileDiff(form styling.EditForm, id styling.Identity) ports.FieldDiff {
	if id.Role != styling.RoleClient || id.Profile == nil {
		return nil
	}
	p := id.Profile

	diff := ports.FieldDiff{}
	if form.Country != p.Country {
		diff["country"] = form.Country
	}
	if form.City != p.City {
		diff["city"] = form.City
	}
	if form.BodyType != p.BodyType {
		diff["body_type"] = form.BodyType
	}
	if !styling.ColorsEqual(form.Colors, p.FavoriteColors) {
		diff["favorite_colors"] = styling.EncodeColors(form.Colors)
	}
	if len(diff) == 0 {
		return nil
	}
	return diff
}

// Reconcile submits the form's changes. The role-profile write is strictly
// sequenced after a successful core write; if the core write fails the
// profile write is never attempted. When every attempted step succeeded the
// identity is re-fetched (discarding local edits) and the result is OK;
// otherwise the result reports failure and whatever landed on the server
// stays there. Callers use Result.OK to decide whether to exit edit mode.
func (r *Reconciler) Reconcile(ctx context.Context, form styling.EditForm) Result {
	id, ok := r.session.Identity()
	if !ok {
		return Result{OK: false, Message: "please log in first"}
	}

	core := CoreDiff(form, id)
	profile := ProfileDiff(form, id)

	if core != nil {
		if err := r.api.UpdateUser(ctx, core); err != nil {
			r.logger.WarnContext(ctx, "core identity update failed", slog.Any("error", err))
			return failure(err)
		}
	}

	if profile != nil {
		if err := r.updateProfile(ctx, id.Role, profile); err != nil {
			r.logger.WarnContext(ctx, "role profile update failed", slog.Any("error", err))
			// The core write (if any) already landed; surface, don't undo.
			return failure(err)
		}
	}

	if err := r.session.FetchIdentity(ctx); err != nil {
		return failure(err)
	}
	return success("profile updated", "")
}

// ReconcileStylistAndMessage diffs and conditionally submits the stylist
// assignment and the message-to-stylist, each independently attempted and
// tracked. Overall success requires every attempted sub-operation to succeed,
// followed by a single identity refresh.
func (r *Reconciler) ReconcileStylistAndMessage(ctx context.Context, stylistID int64, message string) Result {
	id, ok := r.session.Identity()
	if !ok {
		return Result{OK: false, Message: "please log in first"}
	}
	if id.Role != styling.RoleClient || id.Profile == nil {
		return Result{OK: false, Message: "not authorized: only a client can choose a stylist"}
	}

	var firstErr error

	if stylistID != id.Profile.StylistID {
		if err := r.api.ChooseStylist(ctx, stylistID); err != nil {
			r.logger.WarnContext(ctx, "choose stylist failed", slog.Any("error", err))
			firstErr = err
		}
	}

	if message != id.Profile.MessageToStylist {
		diff := ports.FieldDiff{"message_to_stylist": message}
		if err := r.updateProfile(ctx, id.Role, diff); err != nil {
			r.logger.WarnContext(ctx, "message update failed", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return failure(firstErr)
	}
	if err := r.session.FetchIdentity(ctx); err != nil {
		return failure(err)
	}
	return success("stylist preferences updated", "")
}

// updateProfile routes a role-profile diff to the endpoint for the role.
func (r *Reconciler) updateProfile(ctx context.Context, role styling.Role, diff ports.FieldDiff) error {
	if role == styling.RoleStylist {
		return r.api.UpdateStylistProfile(ctx, diff)
	}
	return r.api.UpdateClientProfile(ctx, diff)
}
