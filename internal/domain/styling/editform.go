package styling

// EditForm is the user-editable shadow of an Identity's editable fields.
// Password and PasswordConfirmation are write-only: they are never pre-filled
// from the server and are always empty on (re)computation.
//
// Whenever the Identity changes, the form is recomputed from it and any
// unsaved local edits are discarded. Server wins on refresh.
type EditForm struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string

	// Client-only profile fields. Zero-valued for stylists and admins.
	Country          string
	City             string
	BodyType         string
	Colors           string // comma-separated form of FavoriteColors
	MessageToStylist string
	StylistID        int64
}

// NewEditForm projects an Identity into its edit form. The projection is
// deterministic: the same Identity always yields the same form.
func NewEditForm(id Identity) EditForm {
	form := EditForm{
		Name:  id.Name,
		Email: id.Email,
	}
	if id.Profile != nil {
		form.Country = id.Profile.Country
		form.City = id.Profile.City
		form.BodyType = id.Profile.BodyType
		form.Colors = JoinColors(id.Profile.FavoriteColors)
		form.MessageToStylist = id.Profile.MessageToStylist
		form.StylistID = id.Profile.StylistID
	}
	return form
}
