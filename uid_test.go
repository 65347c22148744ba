package ics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventWithRandomUid(t *testing.T) {
	e := NewEventWithRandomUid()

	_, err := uuid.Parse(e.Id())
	assert.NoError(t, err)

	other := NewEventWithRandomUid()
	assert.NotEqual(t, e.Id(), other.Id())
}

func TestAddEventWithRandomUid(t *testing.T) {
	cal := NewCalendar()
	e := cal.AddEventWithRandomUid()

	require.Len(t, cal.Events(), 1)
	assert.Equal(t, e.Id(), cal.Events()[0].Id())

	_, err := uuid.Parse(e.Id())
	assert.NoError(t, err)
}
