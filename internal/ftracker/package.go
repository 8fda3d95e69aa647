package ftracker

import (
	"fmt"
	"math"
)

// Package is a raw reading received from the tracker: a workout tag and
// positional sensor fields.
type Package struct {
	Type string
	Data []float64
}

// ReadPackage builds a workout from sensor data.
// The tag is checked before anything is constructed.
func ReadPackage(tag string, data []float64) (Training, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		return nil, err
	}

	if len(data) != kind.Arity() {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrInvalidInput, kind, kind.Arity(), len(data))
	}

	action, err := whole("action", data[0], maxAction)
	if err != nil {
		return nil, err
	}
	duration, weight := data[1], data[2]

	var t Training
	switch kind {
	case KindSwimming:
		var lengthPool, countPool int
		if lengthPool, err = whole("length_pool", data[3], math.MaxInt32); err != nil {
			return nil, err
		}
		if countPool, err = whole("count_pool", data[4], math.MaxInt32); err != nil {
			return nil, err
		}
		t, err = NewSwimming(action, duration, weight, lengthPool, countPool)
	case KindRunning:
		t, err = NewRunning(action, duration, weight)
	case KindSportsWalking:
		t, err = NewSportsWalking(action, duration, weight, data[3])
	}
	if err != nil {
		return nil, fmt.Errorf("%s package: %w", kind, err)
	}
	return t, nil
}

// Read is a shorthand for ReadPackage(p.Type, p.Data).
func (p Package) Read() (Training, error) {
	return ReadPackage(p.Type, p.Data)
}

// maxAction is the largest count a float64 holds without losing units.
const maxAction = 1 << 53

// whole converts a sensor field to int. Values above limit are rejected
// before the conversion, which is undefined for out of range floats.
func whole(field string, value float64, limit float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, &InputError{Field: field, Value: value, Reason: "must be a whole number"}
	}
	if math.Abs(value) > limit {
		return 0, &InputError{Field: field, Value: value, Reason: "is out of range"}
	}
	return int(value), nil
}
