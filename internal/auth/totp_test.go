package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTOTPSetup(t *testing.T) {
	setup, err := GenerateTOTPSetup("admin@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, setup.Secret)
	assert.Equal(t, "GMS Admin", setup.Issuer)
	assert.Equal(t, "admin@example.com", setup.AccountName)
	assert.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))
}

func TestValidateTOTPCode(t *testing.T) {
	setup, err := GenerateTOTPSetup("admin@example.com")
	require.NoError(t, err)

	code, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)

	assert.True(t, ValidateTOTPCode(setup.Secret, code))
	assert.False(t, ValidateTOTPCode(setup.Secret, "000000"))
	assert.False(t, ValidateTOTPCode(setup.Secret, "junk"))
}
