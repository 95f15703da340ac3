package rest

import (
	"context"

	"github.com/modista/modista-go/internal/domain/styling"
	"github.com/modista/modista-go/internal/ports"
	"github.com/modista/modista-go/internal/transport"
)

const (
	adminClientsPath  = "/api/admin/clients"
	adminStylistsPath = "/api/admin/stylists"

	defaultUpdatedMessage = "changes saved"
	defaultDeletedMessage = "account deleted"
)

// AdminClient implements ports.AdminAPI against the admin endpoints.
type AdminClient struct {
	tc *transport.Client
}

// NewAdminClient builds an AdminClient over a shared transport client.
func NewAdminClient(tc *transport.Client) *AdminClient {
	return &AdminClient{tc: tc}
}

// Clients lists every client account.
func (c *AdminClient) Clients(ctx context.Context) ([]styling.ClientRecord, error) {
	var out []clientSchema
	if err := c.tc.Get(ctx, adminClientsPath, &out); err != nil {
		return nil, err
	}
	return clientRecords(out), nil
}

// Client fetches one client account by id.
func (c *AdminClient) Client(ctx context.Context, id int64) (styling.ClientRecord, error) {
	var out clientSchema
	if err := c.tc.Get(ctx, idPath(adminClientsPath, id), &out); err != nil {
		return styling.ClientRecord{}, err
	}
	return out.record(), nil
}

// UpdateClient PUTs an edit diff and returns the backend's success message.
func (c *AdminClient) UpdateClient(ctx context.Context, id int64, diff ports.FieldDiff) (string, error) {
	var out messageEnvelope
	if err := c.tc.Put(ctx, idPath(adminClientsPath, id), diff, &out); err != nil {
		return "", err
	}
	return out.message(defaultUpdatedMessage), nil
}

// DeleteClient removes a client account.
func (c *AdminClient) DeleteClient(ctx context.Context, id int64) (string, error) {
	var out messageEnvelope
	if err := c.tc.Delete(ctx, idPath(adminClientsPath, id), &out); err != nil {
		return "", err
	}
	return out.message(defaultDeletedMessage), nil
}

// Stylists lists every stylist account.
func (c *AdminClient) Stylists(ctx context.Context) ([]styling.StylistRecord, error) {
	var out []stylistSchema
	if err := c.tc.Get(ctx, adminStylistsPath, &out); err != nil {
		return nil, err
	}
	return stylistRecords(out), nil
}

// Stylist fetches one stylist account by id.
func (c *AdminClient) Stylist(ctx context.Context, id int64) (styling.StylistRecord, error) {
	var out stylistSchema
	if err := c.tc.Get(ctx, idPath(adminStylistsPath, id), &out); err != nil {
		return styling.StylistRecord{}, err
	}
	return out.record(), nil
}

// UpdateStylist PUTs an edit diff and returns the backend's success message.
func (c *AdminClient) UpdateStylist(ctx context.Context, id int64, diff ports.FieldDiff) (string, error) {
	var out messageEnvelope
	if err := c.tc.Put(ctx, idPath(adminStylistsPath, id), diff, &out); err != nil {
		return "", err
	}
	return out.message(defaultUpdatedMessage), nil
}

// DeleteStylist removes a stylist account.
func (c *AdminClient) DeleteStylist(ctx context.Context, id int64) (string, error) {
	var out messageEnvelope
	if err := c.tc.Delete(ctx, idPath(adminStylistsPath, id), &out); err != nil {
		return "", err
	}
	return out.message(defaultDeletedMessage), nil
}
