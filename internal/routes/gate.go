// Package routes decides which page a path resolves to for a given visitor.
// Resolution is a pure table lookup with no I/O and no redirects: an
// unauthorized hit renders a placeholder in place so the address bar keeps
// the requested path.
package routes

import (
	"fmt"

	"github.com/modista/modista-go/internal/domain/styling"
)

// Kind classifies a resolution outcome.
type Kind int

const (
	// Page means the visitor may see the named page.
	Page Kind = iota
	// Unauthorized means the path exists but requires a role the visitor
	// does not hold.
	Unauthorized
	// NotFound means no route matches the path.
	NotFound
)

// Decision is the outcome of resolving a path.
type Decision struct {
	Kind Kind
	// Name identifies the page for Page decisions.
	Name string
	// RequiredRole is set for role-scoped routes, including Unauthorized
	// decisions, so callers can render the placeholder text.
	RequiredRole styling.Role
}

// Placeholder returns the text rendered in place of a role-scoped page the
// visitor may not see.
func (d Decision) Placeholder() string {
	if d.Kind != Unauthorized {
		return ""
	}
	return fmt.Sprintf("please log in as %s", d.RequiredRole)
}

type entry struct {
	name string
	role styling.Role // "" means public
}

// table maps every fixed path. Role-scoped entries require an exact role
// match: a stylist visiting a client path is unauthorized, not redirected.
var table = map[string]entry{
	"/":           {name: "home"},
	"/about":      {name: "about"},
	"/contact":    {name: "contact"},
	"/login":      {name: "login"},
	"/register":   {name: "register"},
	"/collection": {name: "collection"},
	"/event":      {name: "event"},

	"/client-dashboard": {name: "client-dashboard", role: styling.RoleClient},
	"/choose-stylist":   {name: "choose-stylist", role: styling.RoleClient},
	"/client-models":    {name: "client-models", role: styling.RoleClient},

	"/stylist-dashboard": {name: "stylist-dashboard", role: styling.RoleStylist},
	"/stylist-clients":   {name: "stylist-clients", role: styling.RoleStylist},

	"/admin-dashboard": {name: "admin-dashboard", role: styling.RoleAdmin},
	"/admin-clients":   {name: "admin-clients", role: styling.RoleAdmin},
	"/admin-stylists":  {name: "admin-stylists", role: styling.RoleAdmin},
}

// Resolve maps a path and the visitor's identity (nil for anonymous) to a
// Decision. It is deterministic and touches no state.
func Resolve(path string, id *styling.Identity) Decision {
	e, ok := table[path]
	if !ok {
		return Decision{Kind: NotFound}
	}
	if e.role == "" {
		return Decision{Kind: Page, Name: e.name}
	}
	if id == nil || id.Role != e.role {
		return Decision{Kind: Unauthorized, RequiredRole: e.role}
	}
	return Decision{Kind: Page, Name: e.name, RequiredRole: e.role}
}

// Paths returns every fixed path in the table. Used by the CLI routes
// listing; order is not specified.
func Paths() []string {
	out := make([]string, 0, len(table))
	for p := range table {
		out = append(out, p)
	}
	return out
}
