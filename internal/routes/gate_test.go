package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modista/modista-go/internal/domain/styling"
)

func TestResolve_PublicRoutes(t *testing.T) {
	public := []string{"/", "/about", "/contact", "/login", "/register", "/collection", "/event"}
	for _, path := range public {
		d := Resolve(path, nil)
		assert.Equal(t, Page, d.Kind, path)
		assert.NotEmpty(t, d.Name, path)
		assert.Empty(t, d.RequiredRole, path)
	}
}

func TestResolve_RoleScoped(t *testing.T) {
	client := &styling.Identity{ID: 1, Role: styling.RoleClient}
	stylist := &styling.Identity{ID: 2, Role: styling.RoleStylist}
	admin := &styling.Identity{ID: 3, Role: styling.RoleAdmin}

	tests := []struct {
		path string
		id   *styling.Identity
		kind Kind
	}{
		{"/client-dashboard", client, Page},
		{"/choose-stylist", client, Page},
		{"/client-models", client, Page},
		{"/client-dashboard", nil, Unauthorized},
		{"/client-dashboard", stylist, Unauthorized},
		{"/stylist-dashboard", stylist, Page},
		{"/stylist-clients", stylist, Page},
		{"/stylist-dashboard", client, Unauthorized},
		{"/admin-dashboard", admin, Page},
		{"/admin-clients", admin, Page},
		{"/admin-stylists", admin, Page},
		{"/admin-dashboard", stylist, Unauthorized},
	}

	for _, tt := range tests {
		d := Resolve(tt.path, tt.id)
		assert.Equal(t, tt.kind, d.Kind, "%s as %v", tt.path, tt.id)
	}
}

func TestResolve_UnauthorizedPlaceholder(t *testing.T) {
	stylist := &styling.Identity{ID: 2, Role: styling.RoleStylist}

	d := Resolve("/client-dashboard", stylist)

	assert.Equal(t, Unauthorized, d.Kind)
	assert.Equal(t, styling.RoleClient, d.RequiredRole)
	assert.Equal(t, "please log in as client", d.Placeholder())
}

func TestResolve_UnknownPath(t *testing.T) {
	d := Resolve("/no-such-page", nil)
	assert.Equal(t, NotFound, d.Kind)
	assert.Empty(t, d.Placeholder())
}

func TestPaths_CoversEveryFixedRoute(t *testing.T) {
	paths := Paths()
	assert.Len(t, paths, 15)
	for _, p := range paths {
		assert.NotEqual(t, NotFound, Resolve(p, nil).Kind, p)
	}
}
