package commands_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/pkg/errs"
)

var (
	sender = commands.ContactDetails{
		Name: "Sam Sender", Phone: "+15550100", Address: "1 Main St", City: "Springfield", PostalCode: "12345",
	}
	recipient = commands.ContactDetails{
		Name: "Rita Recipient", Phone: "+15550199", Email: "rita@example.com",
		Address: "9 Elm St", City: "Shelbyville", PostalCode: "54321",
	}
)

func validCreateCommand(t *testing.T) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(7, sender, recipient,
		"Books", decimal.RequireFromString("2.5"), "30x20x15", "Fragile")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	cmd := validCreateCommand(t)

	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.ClientID())
	assert.Equal(t, "Sam Sender", cmd.Sender().Name())
	assert.Equal(t, "rita@example.com", cmd.Recipient().Email())
	assert.Equal(t, "Books", cmd.Parcel().Description())
	assert.Equal(t, "30x20x15", cmd.Parcel().Dimensions().String())
	assert.Equal(t, "Fragile", cmd.SpecialInstructions())
}

func TestNewCreateShipmentCommand_InvalidDimensions(t *testing.T) {
	for _, dims := range []string{"abc", "10x20", "-5x10x10"} {
		_, err := commands.NewCreateShipmentCommand(7, sender, recipient,
			"Books", decimal.RequireFromString("2.5"), dims, "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, dims)
	}
}

func TestNewCreateShipmentCommand_ReportsEveryProblem(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(0, commands.ContactDetails{}, recipient,
		"", decimal.Zero, "1x1x1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	msg := err.Error()
	assert.Contains(t, msg, "client id")
	assert.Contains(t, msg, "sender:")
	assert.NotContains(t, msg, "recipient:")
	assert.Contains(t, msg, "weight")
}

func TestNewCreateShipmentCommand_MissingDescription(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(7, sender, recipient,
		"  ", decimal.NewFromInt(1), "1x1x1", "")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "package description"))
}

func TestCreateShipmentCommand_ZeroValue(t *testing.T) {
	var cmd commands.CreateShipmentCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipmentCommandIsNotConstructed)
}
