package ports

// Package ports defines interfaces (hexagonal ports) for the backend APIs the
// client core consumes. Implementations live in internal/adapters; the
// stateful orchestration lives in internal/service.

import (
	"context"

	"github.com/modista/modista-go/internal/domain/styling"
)

// RegisterPayload is the registration request shape. Client-only fields are
// included only when Role is client; Colors carries the JSON-encoded array.
type RegisterPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`

	Country  string `json:"country,omitempty"`
	City     string `json:"city,omitempty"`
	BodyType string `json:"body_type,omitempty"`
	Colors   string `json:"favorite_colors,omitempty"`
}

// FieldDiff is a minimal set of changed fields keyed by wire field name.
type FieldDiff map[string]string

// AccountAPI covers the authenticated account's own lifecycle and profile.
type AccountAPI interface {
	// CurrentUser resolves the session to an Identity. An absent or expired
	// session yields an unauthenticated error.
	CurrentUser(ctx context.Context) (styling.Identity, error)

	Login(ctx context.Context, email, password string) (styling.Identity, error)
	Register(ctx context.Context, payload RegisterPayload) (styling.Identity, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	// UpdateUser PUTs a core-identity diff (name/email/password fields).
	UpdateUser(ctx context.Context, diff FieldDiff) error
	// UpdateClientProfile PUTs a role-profile diff for a client account.
	UpdateClientProfile(ctx context.Context, diff FieldDiff) error
	// UpdateStylistProfile PUTs a role-profile diff for a stylist account.
	UpdateStylistProfile(ctx context.Context, diff FieldDiff) error
	// ChooseStylist assigns a stylist to the current client.
	ChooseStylist(ctx context.Context, stylistID int64) error
}

// DirectoryAPI covers the non-admin listing endpoints.
type DirectoryAPI interface {
	// Stylists lists all stylists available for assignment.
	Stylists(ctx context.Context) ([]styling.StylistRecord, error)
	// StylistClients lists the clients assigned to the current stylist.
	StylistClients(ctx context.Context) ([]styling.ClientRecord, error)
}

// AdminAPI covers the admin CRUD endpoints for both resource kinds.
type AdminAPI interface {
	Clients(ctx context.Context) ([]styling.ClientRecord, error)
	Client(ctx context.Context, id int64) (styling.ClientRecord, error)
	UpdateClient(ctx context.Context, id int64, diff FieldDiff) (string, error)
	DeleteClient(ctx context.Context, id int64) (string, error)

	Stylists(ctx context.Context) ([]styling.StylistRecord, error)
	Stylist(ctx context.Context, id int64) (styling.StylistRecord, error)
	UpdateStylist(ctx context.Context, id int64, diff FieldDiff) (string, error)
	DeleteStylist(ctx context.Context, id int64) (string, error)
}
