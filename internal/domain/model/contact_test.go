package model

import (
	"testing"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContactStatus(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"new", "read", "replied", "closed"} {
		status, ok := ParseContactStatus(valid)
		require.True(t, ok)
		assert.Equal(t, ContactStatus(valid), status)
	}

	// Application statuses are a different lifecycle and must not parse here.
	for _, invalid := range []string{"pending", "hired", ""} {
		_, ok := ParseContactStatus(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}

func TestCreateContactRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateContactRequest{
		Name:    "Jane",
		Email:   "JANE@X.COM",
		Subject: "Partnership",
		Message: "Hello there",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "jane@x.com", req.Email)

	missing := CreateContactRequest{Name: "Jane", Email: "jane@x.com", Subject: "s"}
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "message", apperrors.GetField(err))
}
