package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected errs.Kind
	}{
		{"nil error", nil, errs.KindInternal},
		{"plain error", errors.New("connection reset"), errs.KindInternal},
		{"invalid value", errs.NewValueIsInvalidError("weight"), errs.KindInvalidInput},
		{"required value", errs.NewValueIsRequiredError("recipient name"), errs.KindInvalidInput},
		{"out of range", errs.NewValueIsOutOfRangeError("instructions", 600, 0, 500), errs.KindInvalidInput},
		{"not found", errs.NewObjectNotFoundError("shipment", 7), errs.KindNotFound},
		{"no change", errs.NewNoChangeError("shipment", 7), errs.KindNoChange},
		{"invalid status", errs.NewStatusIsInvalidError("LOST"), errs.KindInvalidStatus},
		{"version conflict", errs.NewVersionIsInvalidError("shipment"), errs.KindConflict},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("shipment", 7)), errs.KindNotFound},
		{
			"joined validation errors",
			errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("phone")),
			errs.KindInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.KindOf(tc.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid_input", errs.KindInvalidInput.String())
	assert.Equal(t, "not_found", errs.KindNotFound.String())
	assert.Equal(t, "no_change", errs.KindNoChange.String())
	assert.Equal(t, "invalid_status", errs.KindInvalidStatus.String())
	assert.Equal(t, "conflict", errs.KindConflict.String())
	assert.Equal(t, "internal", errs.KindInternal.String())
	assert.Equal(t, "internal", errs.Kind(99).String())
}
