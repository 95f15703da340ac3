package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modista/modista-go/internal/apperrors"
	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/mocks"
	"github.com/modista/modista-go/internal/ports"
)

// adminFixture wires a dispatcher with an admin session and a directory whose
// admin caches are pre-populated, so tests can observe whether a dispatch
// refreshed or preserved them.
func adminFixture(t *testing.T, api *mocks.AdminAPIStub) (*AdminDispatcher, *Directory) {
	t.Helper()
	sess := sessionWith(t, &mocks.AccountAPIStub{}, adminIdentity())
	if api.ClientsFunc == nil {
		api.ClientsFunc = func(context.Context) ([]styling.ClientRecord, error) {
			return someClients(), nil
		}
	}
	if api.StylistsFunc == nil {
		api.StylistsFunc = func(context.Context) ([]styling.StylistRecord, error) {
			return someStylists(), nil
		}
	}
	dir := NewDirectory(DirectoryOptions{Admin: api, Session: sess})
	require.True(t, dir.RefreshAdmin(context.Background()).OK)
	disp := NewAdminDispatcher(AdminDispatcherOptions{API: api, Directory: dir, Session: sess})
	return disp, dir
}

func TestAdminDispatcher_EditClient_RefreshesCache(t *testing.T) {
	api := &mocks.AdminAPIStub{
		UpdateClientFunc: func(_ context.Context, id int64, diff ports.FieldDiff) (string, error) {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, "Bea", diff["name"])
			return "changes saved", nil
		},
	}
	disp, _ := adminFixture(t, api)
	before := api.ClientsCalls

	res := disp.EditClient(context.Background(), 1, ports.FieldDiff{"name": "Bea"})

	assert.True(t, res.OK)
	assert.Equal(t, "changes saved", res.Message)
	assert.Equal(t, before+1, api.ClientsCalls)
}

func TestAdminDispatcher_EditClient_FailureLeavesCache(t *testing.T) {
	api := &mocks.AdminAPIStub{
		UpdateClientFunc: func(context.Context, int64, ports.FieldDiff) (string, error) {
			return "", apperrors.Validation(map[string][]string{"email": {"already taken"}})
		},
	}
	disp, dir := adminFixture(t, api)
	before := api.ClientsCalls

	res := disp.EditClient(context.Background(), 1, ports.FieldDiff{"email": "taken@b.com"})

	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "email: already taken")
	assert.Equal(t, before, api.ClientsCalls, "no refresh after a failed edit")
	assert.Len(t, dir.AllClients(), 2)
}

func TestAdminDispatcher_DeleteClient(t *testing.T) {
	api := &mocks.AdminAPIStub{
		DeleteClientFunc: func(_ context.Context, id int64) (string, error) {
			assert.Equal(t, int64(2), id)
			return "account deleted", nil
		},
	}
	disp, _ := adminFixture(t, api)
	before := api.ClientsCalls

	res := disp.DeleteClient(context.Background(), 2)

	assert.True(t, res.OK)
	assert.Equal(t, "account deleted", res.Message)
	assert.Equal(t, before+1, api.ClientsCalls)
}

func TestAdminDispatcher_DeleteStylist_FailureLeavesCache(t *testing.T) {
	api := &mocks.AdminAPIStub{
		DeleteStylistFunc: func(context.Context, int64) (string, error) {
			return "", apperrors.Internal("unexpected response (500)")
		},
	}
	disp, dir := adminFixture(t, api)
	before := api.StylistsCalls

	res := disp.DeleteStylist(context.Background(), 4)

	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, before, api.StylistsCalls)
	assert.Len(t, dir.AllStylists(), 1)
}

func TestAdminDispatcher_EditStylist(t *testing.T) {
	api := &mocks.AdminAPIStub{
		UpdateStylistFunc: func(context.Context, int64, ports.FieldDiff) (string, error) {
			return "changes saved", nil
		},
	}
	disp, _ := adminFixture(t, api)
	before := api.StylistsCalls

	res := disp.EditStylist(context.Background(), 4, ports.FieldDiff{"name": "Samuel"})

	assert.True(t, res.OK)
	assert.Equal(t, before+1, api.StylistsCalls)
}

func TestAdminDispatcher_NonAdminRejected(t *testing.T) {
	api := &mocks.AdminAPIStub{}
	sess := sessionWith(t, &mocks.AccountAPIStub{}, clientIdentity())
	dir := NewDirectory(DirectoryOptions{Admin: api, Session: sess})
	disp := NewAdminDispatcher(AdminDispatcherOptions{API: api, Directory: dir, Session: sess})

	res := disp.DeleteClient(context.Background(), 1)

	assert.False(t, res.OK)
	assert.Equal(t, "not authorized: only an admin can manage accounts", res.Message)
}
