package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	err := ValidateLogin(LoginForm{Email: "a@b.com", Password: "secret"})
	assert.NoError(t, err)

	err = ValidateLogin(LoginForm{Email: "not-an-email", Password: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")

	err = ValidateLogin(LoginForm{Email: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestValidateRegister(t *testing.T) {
	valid := RegisterForm{
		Name:                 "Ada",
		Email:                "ada@example.com",
		Password:             "longenough",
		PasswordConfirmation: "longenough",
		Role:                 RoleClient,
		Country:              "NL",
	}
	assert.NoError(t, ValidateRegister(valid))

	mismatch := valid
	mismatch.PasswordConfirmation = "different"
	err := ValidateRegister(mismatch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwordconfirmation must match password")

	badRole := valid
	badRole.Role = Role("root")
	err = ValidateRegister(badRole)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role must be one of")
}
