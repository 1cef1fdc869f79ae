package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Phone string `validate:"required,len=10,numeric"`
	Role  string `validate:"omitempty,oneof=ADMIN OPERATOR VIEWER"`
	Units int    `validate:"omitempty,gte=0"`
}

func TestCheck(t *testing.T) {
	t.Run("valid payload returns nil", func(t *testing.T) {
		fields := Check(sampleRequest{Email: "a@b.com", Phone: "9876543210", Role: "ADMIN"})
		assert.Nil(t, fields)
	})

	t.Run("missing required fields", func(t *testing.T) {
		fields := Check(sampleRequest{})
		require.NotNil(t, fields)
		assert.Equal(t, "This field is required", fields["email"])
		assert.Equal(t, "This field is required", fields["phone"])
	})

	t.Run("bad email", func(t *testing.T) {
		fields := Check(sampleRequest{Email: "nope", Phone: "9876543210"})
		require.NotNil(t, fields)
		assert.Equal(t, "Must be a valid email address", fields["email"])
	})

	t.Run("phone length", func(t *testing.T) {
		fields := Check(sampleRequest{Email: "a@b.com", Phone: "12345"})
		require.NotNil(t, fields)
		assert.Equal(t, "Must be exactly 10 characters", fields["phone"])
	})

	t.Run("oneof message lists choices", func(t *testing.T) {
		fields := Check(sampleRequest{Email: "a@b.com", Phone: "9876543210", Role: "OWNER"})
		require.NotNil(t, fields)
		assert.Equal(t, "Must be one of: ADMIN OPERATOR VIEWER", fields["role"])
	})
}
