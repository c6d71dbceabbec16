package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

func TestCanTransitionRequest_MaquinaMonotona(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.RequestStatusPending, entity.RequestStatusAccepted, true},
		{entity.RequestStatusAccepted, entity.RequestStatusCompleted, true},

		// Sin saltos ni retrocesos.
		{entity.RequestStatusPending, entity.RequestStatusCompleted, false},
		{entity.RequestStatusAccepted, entity.RequestStatusPending, false},
		{entity.RequestStatusCompleted, entity.RequestStatusPending, false},
		{entity.RequestStatusCompleted, entity.RequestStatusAccepted, false},

		// Sin auto-transiciones.
		{entity.RequestStatusPending, entity.RequestStatusPending, false},
		{entity.RequestStatusAccepted, entity.RequestStatusAccepted, false},
		{entity.RequestStatusCompleted, entity.RequestStatusCompleted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.CanTransitionRequest(tc.from, tc.to),
			"%s → %s", tc.from, tc.to)
	}
}

func TestValidRequestStatus(t *testing.T) {
	assert.True(t, entity.ValidRequestStatus(entity.RequestStatusPending))
	assert.True(t, entity.ValidRequestStatus(entity.RequestStatusAccepted))
	assert.True(t, entity.ValidRequestStatus(entity.RequestStatusCompleted))
	assert.False(t, entity.ValidRequestStatus("Cancelled"))
	assert.False(t, entity.ValidRequestStatus(""))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"Customer", "Designer", "Admin"} {
		role, err := entity.ParseRole(s)
		assert.NoError(t, err)
		assert.Equal(t, entity.Role(s), role)
	}
	_, err := entity.ParseRole("customer") // sensible a mayúsculas
	assert.Error(t, err)
	_, err = entity.ParseRole("")
	assert.Error(t, err)
}
