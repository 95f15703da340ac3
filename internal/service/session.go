package service

import (
	"context"
	"log/slog"

	"github.com/modista/modista-go/internal/apperrors"
	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
)

// Invalidator empties derived caches when the session identity is cleared or
// its role changes. The Directory service implements it.
type Invalidator interface {
	Invalidate()
}

// SessionOptions groups dependencies for Session.
type SessionOptions struct {
	API    ports.AccountAPI
	Logger *slog.Logger
	// Caches is notified whenever the identity becomes absent or changes
	// role. Optional.
	Caches Invalidator
}

// Session owns the single authenticated Identity value and its derived edit
// form. It is the only component allowed to mutate the identity; everything
// else reads it through accessors and must re-derive views after a refresh.
//
// Session is not goroutine-safe: the client core runs on a single event loop
// and callers are responsible for not double-submitting.
type Session struct {
	api    ports.AccountAPI
	logger *slog.Logger
	caches Invalidator

	identity *styling.Identity
	form     styling.EditForm
}

// NewSession constructs a Session with no identity.
func NewSession(opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		api:    opts.API,
		logger: logger,
		caches: opts.Caches,
	}
}

// SetCaches installs the cache invalidator after construction. The session
// and the directory reference each other, so one side is wired late.
func (s *Session) SetCaches(caches Invalidator) {
	s.caches = caches
}

// Identity returns the current identity and whether one is present.
func (s *Session) Identity() (styling.Identity, bool) {
	if s.identity == nil {
		return styling.Identity{}, false
	}
	return *s.identity, true
}

// Role returns the current role, or "" when no identity is present.
func (s *Session) Role() styling.Role {
	if s.identity == nil {
		return ""
	}
	return s.identity.Role
}

// Form returns the current edit-form projection. It is recomputed from the
// identity on every refresh; unsaved edits do not survive a refresh.
func (s *Session) Form() styling.EditForm {
	return s.form
}

// setIdentity replaces the identity wholesale, recomputes the edit form, and
// invalidates role-scoped caches when the identity goes away or changes role.
func (s *Session) setIdentity(next *styling.Identity) {
	prevRole := s.Role()
	s.identity = next
	if next == nil {
		s.form = styling.EditForm{}
	} else {
		s.form = styling.NewEditForm(*next)
	}
	if s.caches != nil && (next == nil || next.Role != prevRole) {
		s.caches.Invalidate()
	}
}

// FetchIdentity calls the "who am I" endpoint and replaces the identity on
// success. An unauthenticated answer clears the identity silently: it is the
// routine outcome for anonymous visitors on first load. Other failures also
// clear the identity and are returned for the caller to log or display.
func (s *Session) FetchIdentity(ctx context.Context) error {
	id, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.setIdentity(nil)
		if apperrors.IsUnauthenticated(err) {
			return nil
		}
		return err
	}
	s.setIdentity(&id)
	return nil
}

// Login validates the form locally, submits credentials, and on success
// installs the identity and navigates to the role's landing route.
func (s *Session) Login(ctx context.Context, form styling.LoginForm) Result {
	if err := styling.ValidateLogin(form); err != nil {
		return Result{OK: false, Message: err.Error()}
	}

	id, err := s.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		return failure(err)
	}

	s.setIdentity(&id)
	s.logger.InfoContext(ctx, "logged in", slog.String("role", string(id.Role)))
	return success("welcome back", styling.LandingRoute(id.Role))
}

// Register validates the form locally, submits the registration payload, and
// on success installs the identity and navigates to the role's landing route.
// Client registrations carry the extended profile fields with the colors
// input JSON-encoded; other roles send only the core fields.
func (s *Session) Register(ctx context.Context, form styling.RegisterForm) Result {
	if err := styling.ValidateRegister(form); err != nil {
		return Result{OK: false, Message: err.Error()}
	}

	payload := ports.RegisterPayload{
		Name:                 form.Name,
		Email:                form.Email,
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
		Role:                 string(form.Role),
	}
	if form.Role == styling.RoleClient {
		payload.Country = form.Country
		payload.City = form.City
		payload.BodyType = form.BodyType
		payload.Colors = styling.EncodeColors(form.Colors)
	}

	id, err := s.api.Register(ctx, payload)
	if err != nil {
		return failure(err)
	}

	s.setIdentity(&id)
	s.logger.InfoContext(ctx, "registered", slog.String("role", string(id.Role)))
	return success("account created", styling.LandingRoute(id.Role))
}

// Logout ends the backend session and clears the identity. The clear is not
// optimistic: when the remote call fails the identity is left in place and
// the error is surfaced.
func (s *Session) Logout(ctx context.Context) Result {
	if err := s.api.Logout(ctx); err != nil {
		return failure(err)
	}
	s.setIdentity(nil)
	return success("logged out", styling.RouteHome)
}

// DeleteAccount removes the authenticated account. The identity is cleared
// only after the backend confirms the deletion.
func (s *Session) DeleteAccount(ctx context.Context) Result {
	if err := s.api.DeleteAccount(ctx); err != nil {
		return failure(err)
	}
	s.setIdentity(nil)
	return success("account deleted", styling.RouteHome)
}
