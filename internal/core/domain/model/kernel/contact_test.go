package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

func TestNewContact(t *testing.T) {
	t.Run("should create contact and trim fields", func(t *testing.T) {
		c, err := kernel.NewContact(" Jane Doe ", "+15550100", "jane@example.com", "1 Main St", "Springfield", "12345")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "+15550100", c.Phone())
		assert.Equal(t, "jane@example.com", c.Email())
		assert.Equal(t, "1 Main St", c.Address())
		assert.Equal(t, "Springfield", c.City())
		assert.Equal(t, "12345", c.PostalCode())
	})

	t.Run("should allow empty email", func(t *testing.T) {
		c, err := kernel.NewContact("Jane Doe", "+15550100", "", "1 Main St", "Springfield", "12345")

		require.NoError(t, err)
		assert.Empty(t, c.Email())
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := kernel.NewContact("Jane Doe", "+15550100", "not-an-email", "1 Main St", "Springfield", "12345")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report all missing fields", func(t *testing.T) {
		_, err := kernel.NewContact("", " ", "", "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"name", "phone", "address", "city", "postal code"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var c kernel.Contact

		assert.ErrorIs(t, c.Validate(), errs.ErrValueIsRequired)
	})
}
