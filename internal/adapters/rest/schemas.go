// Package rest implements the API ports over the shared transport client.
// Response shapes are declared here as explicit schemas with optional fields;
// all defaulting happens at this decode boundary, never at call sites.
package rest

import (
	"encoding/json"

	"github.com/modista/modista-go/internal/domain/styling"
)

// colorsField tolerates both wire forms of favorite colors: a JSON array
// of strings and a JSON-encoded array carried inside a string (the form the
// backend persists). Either decodes to the canonical token slice.
type colorsField []string

func (c *colorsField) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*c = arr
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*c = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		// A bare comma-separated string is the last accepted form.
		*c = styling.ParseColors(raw)
		return nil
	}
	*c = arr
	return nil
}

// profileSchema is the optional extended profile block on user payloads.
type profileSchema struct {
	Country          string      `json:"country"`
	City             string      `json:"city"`
	BodyType         string      `json:"body_type"`
	FavoriteColors   colorsField `json:"favorite_colors"`
	MessageToStylist string      `json:"message_to_stylist"`
	StylistID        int64       `json:"stylist_id"`
}

// userSchema is the wire shape of a user. Every field is optional.
type userSchema struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Role    string         `json:"role"`
	Profile *profileSchema `json:"profile"`
}

// userEnvelope accepts both `{"user": {...}}` and a bare user object.
type userEnvelope struct {
	User *userSchema `json:"user"`
}

// identity maps a decoded user schema onto the domain Identity, applying
// defaults: unknown roles collapse to the zero Role, and non-client profiles
// are discarded.
func (u *userSchema) identity() styling.Identity {
	role, _ := styling.ParseRole(u.Role)
	id := styling.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  role,
	}
	if role == styling.RoleClient && u.Profile != nil {
		id.Profile = &styling.ClientProfile{
			Country:          u.Profile.Country,
			City:             u.Profile.City,
			BodyType:         u.Profile.BodyType,
			FavoriteColors:   u.Profile.FavoriteColors,
			MessageToStylist: u.Profile.MessageToStylist,
			StylistID:        u.Profile.StylistID,
		}
	}
	return id
}

// decodeIdentity resolves the envelope-or-bare duality in one place.
func decodeIdentity(env userEnvelope, bare userSchema) styling.Identity {
	if env.User != nil {
		return env.User.identity()
	}
	return bare.identity()
}

// clientSchema is the wire shape of a directory/admin client record.
type clientSchema struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Profile *profileSchema `json:"profile"`
}

func (c *clientSchema) record() styling.ClientRecord {
	rec := styling.ClientRecord{ID: c.ID, Name: c.Name, Email: c.Email}
	if c.Profile != nil {
		rec.Profile = &styling.ClientProfile{
			Country:          c.Profile.Country,
			City:             c.Profile.City,
			BodyType:         c.Profile.BodyType,
			FavoriteColors:   c.Profile.FavoriteColors,
			MessageToStylist: c.Profile.MessageToStylist,
			StylistID:        c.Profile.StylistID,
		}
	}
	return rec
}

// stylistSchema is the wire shape of a stylist record.
type stylistSchema struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *stylistSchema) record() styling.StylistRecord {
	return styling.StylistRecord{ID: s.ID, Name: s.Name, Email: s.Email}
}

// messageEnvelope carries the optional success message on mutations.
type messageEnvelope struct {
	Message string `json:"message"`
}

// message applies the default when the backend sent none.
func (m messageEnvelope) message(def string) string {
	if m.Message == "" {
		return def
	}
	return m.Message
}

func clientRecords(schemas []clientSchema) []styling.ClientRecord {
	out := make([]styling.ClientRecord, 0, len(schemas))
	for i := range schemas {
		out = append(out, schemas[i].record())
	}
	return out
}

func stylistRecords(schemas []stylistSchema) []styling.StylistRecord {
	out := make([]styling.StylistRecord, 0, len(schemas))
	for i := range schemas {
		out = append(out, schemas[i].record())
	}
	return out
}
