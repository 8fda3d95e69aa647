package ftracker

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownWorkoutType indicates a type tag outside of SWM, RUN and WLK
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrInvalidInput indicates sensor data a workout cannot be computed from
	ErrInvalidInput = errors.New("invalid input")
)

// InputError describes a single rejected sensor field.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %v %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func positive(field string, value float64) error {
	if !(value > 0) || math.IsInf(value, 1) {
		return &InputError{Field: field, Value: value, Reason: "must be a finite number greater than 0"}
	}
	return nil
}
