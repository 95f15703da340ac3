package mocks

// Hand-written Func-field doubles for the list-shaped ports. Unset Func
// fields fall back to benign defaults, so tests only wire what they assert.

import (
	"context"

	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AccountAPI   = (*AccountAPIStub)(nil)
	_ ports.DirectoryAPI = (*DirectoryAPIStub)(nil)
	_ ports.AdminAPI     = (*AdminAPIStub)(nil)
)

// AccountAPIStub is a Func-field double for ports.AccountAPI with call
// counters for asserting how often an endpoint was reached.
type AccountAPIStub struct {
	CurrentUserFunc          func(ctx context.Context) (styling.Identity, error)
	LoginFunc                func(ctx context.Context, email, password string) (styling.Identity, error)
	RegisterFunc             func(ctx context.Context, payload ports.RegisterPayload) (styling.Identity, error)
	LogoutFunc               func(ctx context.Context) error
	DeleteAccountFunc        func(ctx context.Context) error
	UpdateUserFunc           func(ctx context.Context, diff ports.FieldDiff) error
	UpdateClientProfileFunc  func(ctx context.Context, diff ports.FieldDiff) error
	UpdateStylistProfileFunc func(ctx context.Context, diff ports.FieldDiff) error
	ChooseStylistFunc        func(ctx context.Context, stylistID int64) error

	CurrentUserCalls          int
	UpdateUserCalls           int
	UpdateClientProfileCalls  int
	UpdateStylistProfileCalls int
	ChooseStylistCalls        int
}

func (s *AccountAPIStub) CurrentUser(ctx context.Context) (styling.Identity, error) {
	s.CurrentUserCalls++
	if s.CurrentUserFunc != nil {
		return s.CurrentUserFunc(ctx)
	}
	return styling.Identity{}, nil
}

func (s *AccountAPIStub) Login(ctx context.Context, email, password string) (styling.Identity, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, email, password)
	}
	return styling.Identity{}, nil
}

func (s *AccountAPIStub) Register(ctx context.Context, payload ports.RegisterPayload) (styling.Identity, error) {
	if s.RegisterFunc != nil {
		return s.RegisterFunc(ctx, payload)
	}
	return styling.Identity{}, nil
}

func (s *AccountAPIStub) Logout(ctx context.Context) error {
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx)
	}
	return nil
}

func (s *AccountAPIStub) DeleteAccount(ctx context.Context) error {
	if s.DeleteAccountFunc != nil {
		return s.DeleteAccountFunc(ctx)
	}
	return nil
}

func (s *AccountAPIStub) UpdateUser(ctx context.Context, diff ports.FieldDiff) error {
	s.UpdateUserCalls++
	if s.UpdateUserFunc != nil {
		return s.UpdateUserFunc(ctx, diff)
	}
	return nil
}

func (s *AccountAPIStub) UpdateClientProfile(ctx context.Context, diff ports.FieldDiff) error {
	s.UpdateClientProfileCalls++
	if s.UpdateClientProfileFunc != nil {
		return s.UpdateClientProfileFunc(ctx, diff)
	}
	return nil
}

func (s *AccountAPIStub) UpdateStylistProfile(ctx context.Context, diff ports.FieldDiff) error {
	s.UpdateStylistProfileCalls++
	if s.UpdateStylistProfileFunc != nil {
		return s.UpdateStylistProfileFunc(ctx, diff)
	}
	return nil
}

func (s *AccountAPIStub) ChooseStylist(ctx context.Context, stylistID int64) error {
	s.ChooseStylistCalls++
	if s.ChooseStylistFunc != nil {
		return s.ChooseStylistFunc(ctx, stylistID)
	}
	return nil
}

// DirectoryAPIStub is a Func-field double for ports.DirectoryAPI.
type DirectoryAPIStub struct {
	StylistsFunc       func(ctx context.Context) ([]styling.StylistRecord, error)
	StylistClientsFunc func(ctx context.Context) ([]styling.ClientRecord, error)
}

func (s *DirectoryAPIStub) Stylists(ctx context.Context) ([]styling.StylistRecord, error) {
	if s.StylistsFunc != nil {
		return s.StylistsFunc(ctx)
	}
	return nil, nil
}

func (s *DirectoryAPIStub) StylistClients(ctx context.Context) ([]styling.ClientRecord, error) {
	if s.StylistClientsFunc != nil {
		return s.StylistClientsFunc(ctx)
	}
	return nil, nil
}

// AdminAPIStub is a Func-field double for ports.AdminAPI.
type AdminAPIStub struct {
	ClientsFunc       func(ctx context.Context) ([]styling.ClientRecord, error)
	ClientFunc        func(ctx context.Context, id int64) (styling.ClientRecord, error)
	UpdateClientFunc  func(ctx context.Context, id int64, diff ports.FieldDiff) (string, error)
	DeleteClientFunc  func(ctx context.Context, id int64) (string, error)
	StylistsFunc      func(ctx context.Context) ([]styling.StylistRecord, error)
	StylistFunc       func(ctx context.Context, id int64) (styling.StylistRecord, error)
	UpdateStylistFunc func(ctx context.Context, id int64, diff ports.FieldDiff) (string, error)
	DeleteStylistFunc func(ctx context.Context, id int64) (string, error)

	ClientsCalls  int
	StylistsCalls int
}

func (s *AdminAPIStub) Clients(ctx context.Context) ([]styling.ClientRecord, error) {
	s.ClientsCalls++
	if s.ClientsFunc != nil {
		return s.ClientsFunc(ctx)
	}
	return nil, nil
}

func (s *AdminAPIStub) Client(ctx context.Context, id int64) (styling.ClientRecord, error) {
	if s.ClientFunc != nil {
		return s.ClientFunc(ctx, id)
	}
	return styling.ClientRecord{}, nil
}

func (s *AdminAPIStub) UpdateClient(ctx context.Context, id int64, diff ports.FieldDiff) (string, error) {
	if s.UpdateClientFunc != nil {
		return s.UpdateClientFunc(ctx, id, diff)
	}
	return "", nil
}

func (s *AdminAPIStub) DeleteClient(ctx context.Context, id int64) (string, error) {
	if s.DeleteClientFunc != nil {
		return s.DeleteClientFunc(ctx, id)
	}
	return "", nil
}

func (s *AdminAPIStub) Stylists(ctx context.Context) ([]styling.StylistRecord, error) {
	s.StylistsCalls++
	if s.StylistsFunc != nil {
		return s.StylistsFunc(ctx)
	}
	return nil, nil
}

func (s *AdminAPIStub) Stylist(ctx context.Context, id int64) (styling.StylistRecord, error) {
	if s.StylistFunc != nil {
		return s.StylistFunc(ctx, id)
	}
	return styling.StylistRecord{}, nil
}

func (s *AdminAPIStub) UpdateStylist(ctx context.Context, id int64, diff ports.FieldDiff) (string, error) {
	if s.UpdateStylistFunc != nil {
		return s.UpdateStylistFunc(ctx, id, diff)
	}
	return "", nil
}

func (s *AdminAPIStub) DeleteStylist(ctx context.Context, id int64) (string, error) {
	if s.DeleteStylistFunc != nil {
		return s.DeleteStylistFunc(ctx, id)
	}
	return "", nil
}
