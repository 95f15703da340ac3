package styling

// Package styling contains domain-level types for the styling service client.
// It is pure and free of transport/adapter concerns.

// Role represents an account's authorization role.
// Keep string form to match the wire format used by the backend.
// Valid values are defined as constants below.
type Role string

const (
	RoleClient  Role = "client"
	RoleStylist Role = "stylist"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a wire string to a known Role.
// Returns false for unknown or empty values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleStylist, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// ClientProfile holds the extended profile carried only by client accounts.
// Stylists and admins have no extended profile in this model.
type ClientProfile struct {
	Country          string   `json:"country"`
	City             string   `json:"city"`
	BodyType         string   `json:"body_type"`
	FavoriteColors   []string `json:"favorite_colors"`
	MessageToStylist string   `json:"message_to_stylist"`
	StylistID        int64    `json:"stylist_id"`
}

// Identity represents the authenticated principal as reported by the backend.
// Exactly one Identity exists at a time (or none); it is replaced wholesale on
// every successful refresh and is the sole source of truth for session state.
type Identity struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Role    Role           `json:"role"`
	Profile *ClientProfile `json:"profile,omitempty"`
}

// IsClient returns true if the identity carries the client role.
func (id Identity) IsClient() bool { return id.Role == RoleClient }

// IsStylist returns true if the identity carries the stylist role.
func (id Identity) IsStylist() bool { return id.Role == RoleStylist }

// IsAdmin returns true if the identity carries the admin role.
func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }

// ClientRecord is a directory/admin listing entry for a client account.
type ClientRecord struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Profile *ClientProfile `json:"profile,omitempty"`
}

// StylistRecord is a directory/admin listing entry for a stylist account.
type StylistRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Landing routes per role. Unknown roles land on the public home route.
const (
	RouteHome             = "/"
	RouteClientDashboard  = "/client-dashboard"
	RouteStylistDashboard = "/stylist-dashboard"
	RouteAdminDashboard   = "/admin-dashboard"
)

// LandingRoute returns the default landing route for a role after login
// or registration.
func LandingRoute(role Role) string {
	switch role {
	case RoleClient:
		return RouteClientDashboard
	case RoleStylist:
		return RouteStylistDashboard
	case RoleAdmin:
		return RouteAdminDashboard
	default:
		return RouteHome
	}
}
