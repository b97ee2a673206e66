package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotDefaults(t *testing.T) {
	s := NewSlot(7)
	assert.Equal(t, 7, s.Day())
	assert.True(t, s.IsAvailable())
	assert.Nil(t, s.Reservation())
	assert.InDelta(t, StandardModifier, s.Modifier(), 1e-9)
}

func TestSlotBookOnlyOnce(t *testing.T) {
	s := NewSlot(1)
	first := &Reservation{id: 1}
	second := &Reservation{id: 2}

	require.True(t, s.Book(first))
	assert.False(t, s.IsAvailable())
	assert.Same(t, first, s.Reservation())

	// A booked slot rejects further bookings and keeps its state.
	assert.False(t, s.Book(second))
	assert.Same(t, first, s.Reservation())
}

func TestSlotCancelIsIdempotent(t *testing.T) {
	s := NewSlot(1)
	require.True(t, s.Book(&Reservation{id: 1}))

	s.Cancel()
	assert.True(t, s.IsAvailable())
	assert.Nil(t, s.Reservation())

	// Cancelling an already-available slot is a no-op, not an error.
	s.Cancel()
	assert.True(t, s.IsAvailable())
}

func TestSlotSetModifierClamps(t *testing.T) {
	s := NewSlot(1)

	s.SetModifier(0.5)
	assert.InDelta(t, MinModifier, s.Modifier(), 1e-9)

	s.SetModifier(2.0)
	assert.InDelta(t, MaxModifier, s.Modifier(), 1e-9)

	s.SetModifier(0.95)
	assert.InDelta(t, 0.95, s.Modifier(), 1e-9)
}
