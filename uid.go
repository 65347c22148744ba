package ics

import "github.com/google/uuid"

// NewEventWithRandomUid creates an event identified by a random UUID, for
// callers that have no natural identifier to use.
func NewEventWithRandomUid() *VEvent {
	return NewEvent(uuid.NewString())
}

// AddEventWithRandomUid appends a new event with a random UUID and returns it.
func (cal *Calendar) AddEventWithRandomUid() *VEvent {
	e := NewEventWithRandomUid()
	cal.Components = append(cal.Components, e)
	return e
}
