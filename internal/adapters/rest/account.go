package rest

import (
	"context"
	"strconv"

	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
	"github.com/modista/modista-go/internal/transport"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AccountAPI   = (*AccountClient)(nil)
	_ ports.DirectoryAPI = (*DirectoryClient)(nil)
	_ ports.AdminAPI     = (*AdminClient)(nil)
)

// AccountClient implements ports.AccountAPI against the styling backend.
type AccountClient struct {
	tc *transport.Client
}

// NewAccountClient builds an AccountClient over a shared transport client.
func NewAccountClient(tc *transport.Client) *AccountClient {
	return &AccountClient{tc: tc}
}

// combined holds both accepted user payload shapes for one decode pass.
type combined struct {
	userEnvelope
	userSchema
}

// CurrentUser calls the "who am I" endpoint.
func (c *AccountClient) CurrentUser(ctx context.Context) (styling.Identity, error) {
	var out combined
	if err := c.tc.Get(ctx, "/api/user", &out); err != nil {
		return styling.Identity{}, err
	}
	return decodeIdentity(out.userEnvelope, out.userSchema), nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login submits credentials and returns the authenticated identity.
func (c *AccountClient) Login(ctx context.Context, email, password string) (styling.Identity, error) {
	var out combined
	if err := c.tc.Post(ctx, "/api/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return styling.Identity{}, err
	}
	return decodeIdentity(out.userEnvelope, out.userSchema), nil
}

// Register creates an account and returns the authenticated identity.
func (c *AccountClient) Register(ctx context.Context, payload ports.RegisterPayload) (styling.Identity, error) {
	var out combined
	if err := c.tc.Post(ctx, "/api/register", payload, &out); err != nil {
		return styling.Identity{}, err
	}
	return decodeIdentity(out.userEnvelope, out.userSchema), nil
}

// Logout ends the backend session.
func (c *AccountClient) Logout(ctx context.Context) error {
	return c.tc.Post(ctx, "/api/logout", nil, nil)
}

// DeleteAccount removes the authenticated account.
func (c *AccountClient) DeleteAccount(ctx context.Context) error {
	return c.tc.Delete(ctx, "/api/user", nil)
}

// UpdateUser PUTs a core-identity diff.
func (c *AccountClient) UpdateUser(ctx context.Context, diff ports.FieldDiff) error {
	return c.tc.Put(ctx, "/api/user", diff, nil)
}

// UpdateClientProfile PUTs a role-profile diff for a client account.
func (c *AccountClient) UpdateClientProfile(ctx context.Context, diff ports.FieldDiff) error {
	return c.tc.Put(ctx, "/api/client/profile", diff, nil)
}

// UpdateStylistProfile PUTs a role-profile diff for a stylist account.
func (c *AccountClient) UpdateStylistProfile(ctx context.Context, diff ports.FieldDiff) error {
	return c.tc.Put(ctx, "/api/stylist/profile", diff, nil)
}

type chooseStylistRequest struct {
	StylistID int64 `json:"stylist_id"`
}

// ChooseStylist assigns a stylist to the current client.
func (c *AccountClient) ChooseStylist(ctx context.Context, stylistID int64) error {
	return c.tc.Post(ctx, "/api/client/choose-stylist", chooseStylistRequest{StylistID: stylistID}, nil)
}

// DirectoryClient implements ports.DirectoryAPI.
type DirectoryClient struct {
	tc *transport.Client
}

// NewDirectoryClient builds a DirectoryClient over a shared transport client.
func NewDirectoryClient(tc *transport.Client) *DirectoryClient {
	return &DirectoryClient{tc: tc}
}

// Stylists lists all stylists available for assignment.
func (c *DirectoryClient) Stylists(ctx context.Context) ([]styling.StylistRecord, error) {
	var out []stylistSchema
	if err := c.tc.Get(ctx, "/api/stylists", &out); err != nil {
		return nil, err
	}
	return stylistRecords(out), nil
}

// StylistClients lists the clients assigned to the current stylist.
func (c *DirectoryClient) StylistClients(ctx context.Context) ([]styling.ClientRecord, error) {
	var out []clientSchema
	if err := c.tc.Get(ctx, "/api/stylist/clients", &out); err != nil {
		return nil, err
	}
	return clientRecords(out), nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
