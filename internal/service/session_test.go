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

func clientIdentity() styling.Identity {
	return styling.Identity{
		ID:    1,
		Name:  "Ada",
		Email: "a@b.com",
		Role:  styling.RoleClient,
		Profile: &styling.ClientProfile{
			Country:        "NL",
			City:           "Utrecht",
			BodyType:       "hourglass",
			FavoriteColors: []string{"red", "blue"},
			StylistID:      4,
		},
	}
}

// countingInvalidator records cache invalidations.
type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate() { c.calls++ }

func TestSession_FetchIdentity_ReplacesIdentityAndForm(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api})

	require.NoError(t, s.FetchIdentity(context.Background()))

	id, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "red, blue", s.Form().Colors)
	assert.Empty(t, s.Form().Password)
}

func TestSession_FetchIdentity_UnauthenticatedIsSilent(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return styling.Identity{}, apperrors.Unauthenticated("Unauthenticated.")
		},
	}
	s := NewSession(SessionOptions{API: api})

	// Routine for anonymous visitors: no error surfaces.
	require.NoError(t, s.FetchIdentity(context.Background()))
	_, ok := s.Identity()
	assert.False(t, ok)
}

func TestSession_FetchIdentity_OtherFailureClearsAndReturns(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return styling.Identity{}, apperrors.Unavailable("could not reach the styling service", nil)
		},
	}
	s := NewSession(SessionOptions{API: api})

	err := s.FetchIdentity(context.Background())
	require.Error(t, err)
	_, ok := s.Identity()
	assert.False(t, ok)
}

func TestSession_Login_Success(t *testing.T) {
	api := &mocks.AccountAPIStub{
		LoginFunc: func(_ context.Context, email, password string) (styling.Identity, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, "secret", password)
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api})

	res := s.Login(context.Background(), styling.LoginForm{Email: "a@b.com", Password: "secret"})

	assert.True(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, "/client-dashboard", res.Route)
	id, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, int64(1), id.ID)
}

func TestSession_Login_InvalidCredentials(t *testing.T) {
	api := &mocks.AccountAPIStub{
		LoginFunc: func(context.Context, string, string) (styling.Identity, error) {
			return styling.Identity{}, apperrors.Unauthenticated("invalid credentials")
		},
	}
	s := NewSession(SessionOptions{API: api})

	res := s.Login(context.Background(), styling.LoginForm{Email: "a@b.com", Password: "wrong"})

	assert.False(t, res.OK)
	assert.Equal(t, "invalid credentials", res.Message)
	_, ok := s.Identity()
	assert.False(t, ok)
}

func TestSession_Login_LocalValidationSkipsAPI(t *testing.T) {
	called := false
	api := &mocks.AccountAPIStub{
		LoginFunc: func(context.Context, string, string) (styling.Identity, error) {
			called = true
			return styling.Identity{}, nil
		},
	}
	s := NewSession(SessionOptions{API: api})

	res := s.Login(context.Background(), styling.LoginForm{Email: "nope"})

	assert.False(t, res.OK)
	assert.False(t, called)
}

func TestSession_Register_ValidationErrorMessage(t *testing.T) {
	api := &mocks.AccountAPIStub{
		RegisterFunc: func(context.Context, ports.RegisterPayload) (styling.Identity, error) {
			return styling.Identity{}, apperrors.Validation(map[string][]string{
				"email": {"already taken"},
			})
		},
	}
	s := NewSession(SessionOptions{API: api})

	res := s.Register(context.Background(), styling.RegisterForm{
		Name:                 "Ada",
		Email:                "a@b.com",
		Password:             "longenough",
		PasswordConfirmation: "longenough",
		Role:                 styling.RoleStylist,
	})

	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "email: already taken")
}

func TestSession_Register_ClientPayloadCarriesEncodedColors(t *testing.T) {
	var got ports.RegisterPayload
	api := &mocks.AccountAPIStub{
		RegisterFunc: func(_ context.Context, payload ports.RegisterPayload) (styling.Identity, error) {
			got = payload
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api})

	res := s.Register(context.Background(), styling.RegisterForm{
		Name:                 "Ada",
		Email:                "a@b.com",
		Password:             "longenough",
		PasswordConfirmation: "longenough",
		Role:                 styling.RoleClient,
		Country:              "NL",
		Colors:               "red, , blue,",
	})

	require.True(t, res.OK)
	assert.Equal(t, `["red","blue"]`, got.Colors)
	assert.Equal(t, "NL", got.Country)
	assert.Equal(t, "/client-dashboard", res.Route)
}

func TestSession_Register_NonClientOmitsProfileFields(t *testing.T) {
	var got ports.RegisterPayload
	api := &mocks.AccountAPIStub{
		RegisterFunc: func(_ context.Context, payload ports.RegisterPayload) (styling.Identity, error) {
			got = payload
			return styling.Identity{ID: 2, Role: styling.RoleStylist}, nil
		},
	}
	s := NewSession(SessionOptions{API: api})

	res := s.Register(context.Background(), styling.RegisterForm{
		Name:                 "Sam",
		Email:                "s@b.com",
		Password:             "longenough",
		PasswordConfirmation: "longenough",
		Role:                 styling.RoleStylist,
		Country:              "NL", // ignored for non-clients
	})

	require.True(t, res.OK)
	assert.Empty(t, got.Country)
	assert.Empty(t, got.Colors)
	assert.Equal(t, "/stylist-dashboard", res.Route)
}

func TestSession_Logout_FailureRetainsIdentity(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
		LogoutFunc: func(context.Context) error {
			return apperrors.Internal("unexpected response (500)")
		},
	}
	s := NewSession(SessionOptions{API: api})
	require.NoError(t, s.FetchIdentity(context.Background()))

	res := s.Logout(context.Background())

	// No optimistic clear: the identity stays until the backend confirms.
	assert.False(t, res.OK)
	_, ok := s.Identity()
	assert.True(t, ok)
}

func TestSession_Logout_SuccessClearsIdentityAndCaches(t *testing.T) {
	inv := &countingInvalidator{}
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api, Caches: inv})
	require.NoError(t, s.FetchIdentity(context.Background()))

	res := s.Logout(context.Background())

	assert.True(t, res.OK)
	assert.Equal(t, "/", res.Route)
	_, ok := s.Identity()
	assert.False(t, ok)
	assert.Positive(t, inv.calls)
}

func TestSession_DeleteAccount(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api})
	require.NoError(t, s.FetchIdentity(context.Background()))

	res := s.DeleteAccount(context.Background())

	assert.True(t, res.OK)
	assert.Equal(t, "/", res.Route)
	_, ok := s.Identity()
	assert.False(t, ok)
}

func TestSession_DeleteAccount_FailureRetainsIdentity(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
		DeleteAccountFunc: func(context.Context) error {
			return apperrors.Internal("unexpected response (500)")
		},
	}
	s := NewSession(SessionOptions{API: api})
	require.NoError(t, s.FetchIdentity(context.Background()))

	res := s.DeleteAccount(context.Background())

	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	_, ok := s.Identity()
	assert.True(t, ok)
}

func TestSession_RefreshSameRoleKeepsCaches(t *testing.T) {
	inv := &countingInvalidator{}
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api, Caches: inv})

	require.NoError(t, s.FetchIdentity(context.Background()))
	first := inv.calls // initial transition from absent to client
	require.NoError(t, s.FetchIdentity(context.Background()))

	assert.Equal(t, first, inv.calls)
}

func TestSession_FormDiscardedOnRefresh(t *testing.T) {
	api := &mocks.AccountAPIStub{
		CurrentUserFunc: func(context.Context) (styling.Identity, error) {
			return clientIdentity(), nil
		},
	}
	s := NewSession(SessionOptions{API: api})
	require.NoError(t, s.FetchIdentity(context.Background()))

	// Server wins on refresh: a fresh projection replaces local edits.
	require.NoError(t, s.FetchIdentity(context.Background()))
	assert.Equal(t, "Ada", s.Form().Name)
}
