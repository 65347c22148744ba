package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestSetRecurrenceRule(t *testing.T) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO},
		Count:     3,
	})
	require.NoError(t, err)

	e := NewEvent("test-recurrence-rule")
	e.SetStartAt(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	e.SetRecurrenceRule(rule)

	serialized := e.Serialize()
	assert.Contains(t, serialized, "RRULE:FREQ=WEEKLY")
	assert.Contains(t, serialized, "COUNT=3")
	assert.Contains(t, serialized, "BYDAY=MO")
	assert.NotContains(t, serialized, "DTSTART;", "rule serialization must not smuggle in a second DTSTART")

	got, err := e.GetRecurrenceRule()
	require.NoError(t, err)
	want := []time.Time{
		time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, got.All())
}

func TestGetRecurrenceRule(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		e := NewEvent("test-get-recurrence-rule")
		_, err := e.GetRecurrenceRule()
		assert.ErrorIs(t, err, ErrorPropertyNotFound)
	})

	t.Run("malformed rule", func(t *testing.T) {
		e := NewEvent("test-get-recurrence-rule")
		e.AddRrule("FREQ=SOMETIMES")
		_, err := e.GetRecurrenceRule()
		assert.Error(t, err)
	})

	t.Run("anchored to DTSTART", func(t *testing.T) {
		e := NewEvent("test-get-recurrence-rule")
		e.SetStartAt(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
		e.AddRrule("FREQ=DAILY;COUNT=2")

		rule, err := e.GetRecurrenceRule()
		require.NoError(t, err)
		want := []time.Time{
			time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, want, rule.All())
	})
}

func TestRecurrenceSet(t *testing.T) {
	e := NewEvent("test-recurrence-set")
	e.SetStartAt(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	e.AddRrule("FREQ=DAILY;COUNT=3")
	e.AddExdate("20240604T090000Z")
	e.AddRdate("20240610T090000Z")

	set, err := e.RecurrenceSet()
	require.NoError(t, err)

	want := []time.Time{
		time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, set.All())
}

func TestRecurrenceSetWithoutRule(t *testing.T) {
	e := NewEvent("test-recurrence-set")
	e.SetStartAt(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	_, err := e.RecurrenceSet()
	assert.ErrorIs(t, err, ErrorPropertyNotFound)
}

func TestRecurrenceSetBetween(t *testing.T) {
	e := NewEvent("test-recurrence-between")
	e.SetStartAt(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	e.AddRrule("FREQ=WEEKLY;COUNT=10")

	set, err := e.RecurrenceSet()
	require.NoError(t, err)

	got := set.Between(
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC),
		true,
	)
	want := []time.Time{
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, got)
}
