package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/modista/modista-go/internal/apperrors"
	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/mocks"
	"github.com/modista/modista-go/internal/ports"
)

// sessionWith installs the given identity into a fresh Session backed by api.
func sessionWith(t *testing.T, api *mocks.AccountAPIStub, id styling.Identity) *Session {
	t.Helper()
	if api.CurrentUserFunc == nil {
		api.CurrentUserFunc = func(context.Context) (styling.Identity, error) { return id, nil }
	}
	s := NewSession(SessionOptions{API: api})
	require.NoError(t, s.FetchIdentity(context.Background()))
	return s
}

func TestCoreDiff(t *testing.T) {
	id := clientIdentity()
	form := styling.NewEditForm(id)

	assert.Nil(t, CoreDiff(form, id), "untouched form yields no diff")

	form.Name = "Grace"
	form.Password = "newsecret"
	form.PasswordConfirmation = "newsecret"
	diff := CoreDiff(form, id)
	require.NotNil(t, diff)
	assert.Equal(t, "Grace", diff["name"])
	assert.Equal(t, "newsecret", diff["password"])
	assert.Equal(t, "newsecret", diff["password_confirmation"])
	assert.NotContains(t, diff, "email")
}

func TestCoreDiff_EmptyPasswordNeverIncluded(t *testing.T) {
	id := clientIdentity()
	form := styling.NewEditForm(id)
	form.Email = "new@b.com"

	diff := CoreDiff(form, id)
	require.NotNil(t, diff)
	assert.NotContains(t, diff, "password")
	assert.NotContains(t, diff, "password_confirmation")
}

func TestProfileDiff(t *testing.T) {
	id := clientIdentity()
	form := styling.NewEditForm(id)

	assert.Nil(t, ProfileDiff(form, id))

	form.City = "Rotterdam"
	form.Colors = "blue, red" // same set, different order
	diff := ProfileDiff(form, id)
	require.NotNil(t, diff)
	assert.Equal(t, "Rotterdam", diff["city"])
	assert.Equal(t, `["blue","red"]`, diff["favorite_colors"], "reorder counts as a change")
}

func TestProfileDiff_NonClientAlwaysEmpty(t *testing.T) {
	id := styling.Identity{ID: 2, Name: "Sam", Email: "s@b.com", Role: styling.RoleStylist}
	form := styling.NewEditForm(id)
	form.City = "Rotterdam"

	assert.Nil(t, ProfileDiff(form, id))
}

func TestReconciler_Reconcile_NoIdentity(t *testing.T) {
	api := &mocks.AccountAPIStub{}
	r := NewReconciler(ReconcilerOptions{API: api, Session: NewSession(SessionOptions{API: api})})

	res := r.Reconcile(context.Background(), styling.EditForm{})

	assert.False(t, res.OK)
	assert.Equal(t, "please log in first", res.Message)
	assert.Zero(t, api.UpdateUserCalls)
}

func TestReconciler_Reconcile_CoreFailureSkipsProfile(t *testing.T) {
	api := &mocks.AccountAPIStub{
		UpdateUserFunc: func(context.Context, ports.FieldDiff) error {
			return apperrors.Validation(map[string][]string{"email": {"already taken"}})
		},
	}
	sess := sessionWith(t, api, clientIdentity())
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	form := sess.Form()
	form.Email = "taken@b.com"
	form.City = "Rotterdam"

	res := r.Reconcile(context.Background(), form)

	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "email: already taken")
	assert.Equal(t, 1, api.UpdateUserCalls)
	assert.Zero(t, api.UpdateClientProfileCalls, "profile write must not happen after a failed core write")
	assert.Zero(t, api.UpdateStylistProfileCalls)
}

func TestReconciler_Reconcile_OrdersCoreBeforeProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAccountAPI(ctrl)

	sessAPI := &mocks.AccountAPIStub{}
	sess := sessionWith(t, sessAPI, clientIdentity())
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	form := sess.Form()
	form.Name = "Grace"
	form.City = "Rotterdam"

	gomock.InOrder(
		api.EXPECT().UpdateUser(gomock.Any(), ports.FieldDiff{"name": "Grace"}).Return(nil),
		api.EXPECT().UpdateClientProfile(gomock.Any(), ports.FieldDiff{"city": "Rotterdam"}).Return(nil),
	)

	res := r.Reconcile(context.Background(), form)

	assert.True(t, res.OK)
	assert.Equal(t, "profile updated", res.Message)
}

func TestReconciler_Reconcile_ProfileFailureAfterCoreSuccess(t *testing.T) {
	api := &mocks.AccountAPIStub{
		UpdateClientProfileFunc: func(context.Context, ports.FieldDiff) error {
			return apperrors.Internal("unexpected response (500)")
		},
	}
	sess := sessionWith(t, api, clientIdentity())
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	form := sess.Form()
	form.Name = "Grace"
	form.City = "Rotterdam"

	res := r.Reconcile(context.Background(), form)

	// The core write landed and stays landed; the overall result still fails.
	assert.False(t, res.OK)
	assert.Equal(t, 1, api.UpdateUserCalls)
	assert.Equal(t, 1, api.UpdateClientProfileCalls)
}

func TestReconciler_Reconcile_NoChangesStillRefreshes(t *testing.T) {
	api := &mocks.AccountAPIStub{}
	sess := sessionWith(t, api, clientIdentity())
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	before := api.CurrentUserCalls
	res := r.Reconcile(context.Background(), sess.Form())

	assert.True(t, res.OK)
	assert.Zero(t, api.UpdateUserCalls)
	assert.Zero(t, api.UpdateClientProfileCalls)
	assert.Equal(t, before+1, api.CurrentUserCalls, "server wins on refresh")
}

func TestReconciler_Reconcile_StylistRoutesToStylistEndpoint(t *testing.T) {
	// Stylists have no client profile, so only the core write plus refresh run.
	api := &mocks.AccountAPIStub{}
	sess := sessionWith(t, api, styling.Identity{ID: 2, Name: "Sam", Email: "s@b.com", Role: styling.RoleStylist})
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	form := sess.Form()
	form.Name = "Samuel"

	res := r.Reconcile(context.Background(), form)

	assert.True(t, res.OK)
	assert.Equal(t, 1, api.UpdateUserCalls)
	assert.Zero(t, api.UpdateStylistProfileCalls)
	assert.Zero(t, api.UpdateClientProfileCalls)
}

func TestReconciler_StylistAndMessage_NonClientRejected(t *testing.T) {
	api := &mocks.AccountAPIStub{}
	sess := sessionWith(t, api, styling.Identity{ID: 2, Role: styling.RoleStylist})
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	res := r.ReconcileStylistAndMessage(context.Background(), 7, "hello")

	assert.False(t, res.OK)
	assert.Equal(t, "not authorized: only a client can choose a stylist", res.Message)
	assert.Zero(t, api.ChooseStylistCalls)
}

func TestReconciler_StylistAndMessage_OnlyChangedPartsSubmitted(t *testing.T) {
	api := &mocks.AccountAPIStub{}
	id := clientIdentity() // stylist 4, empty message
	sess := sessionWith(t, api, id)
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	// Same stylist, new message: only the message write goes out.
	res := r.ReconcileStylistAndMessage(context.Background(), 4, "more dresses please")

	assert.True(t, res.OK)
	assert.Equal(t, "stylist preferences updated", res.Message)
	assert.Zero(t, api.ChooseStylistCalls)
	assert.Equal(t, 1, api.UpdateClientProfileCalls)
}

func TestReconciler_StylistAndMessage_BothAttemptedDespiteFirstFailure(t *testing.T) {
	api := &mocks.AccountAPIStub{
		ChooseStylistFunc: func(context.Context, int64) error {
			return apperrors.Unavailable("could not reach the styling service", nil)
		},
	}
	sess := sessionWith(t, api, clientIdentity())
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})
	refreshesBefore := api.CurrentUserCalls

	res := r.ReconcileStylistAndMessage(context.Background(), 9, "new message")

	// Independent sub-operations: the message write still runs, but overall
	// failure skips the identity refresh.
	assert.False(t, res.OK)
	assert.Equal(t, 1, api.ChooseStylistCalls)
	assert.Equal(t, 1, api.UpdateClientProfileCalls)
	assert.Equal(t, refreshesBefore, api.CurrentUserCalls)
}

func TestReconciler_StylistAndMessage_NoChangesIsSuccess(t *testing.T) {
	api := &mocks.AccountAPIStub{}
	id := clientIdentity()
	sess := sessionWith(t, api, id)
	r := NewReconciler(ReconcilerOptions{API: api, Session: sess})

	res := r.ReconcileStylistAndMessage(context.Background(), id.Profile.StylistID, id.Profile.MessageToStylist)

	assert.True(t, res.OK)
	assert.Zero(t, api.ChooseStylistCalls)
	assert.Zero(t, api.UpdateClientProfileCalls)
}
