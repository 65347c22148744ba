package ics

import (
	"errors"
)

var (
	ErrStartAndEndDateNotDefined = errors.New("start time and end time not defined")
	// ErrorPropertyNotFound is the error returned if the requested valid
	// property is not set.
	ErrorPropertyNotFound = errors.New("property not found")
	// ErrUnknownSerializationOperation is returned when Serialize, SerializeTo
	// or SaveTo receives an option it does not understand.
	ErrUnknownSerializationOperation = errors.New("unknown serialization operation")
)
