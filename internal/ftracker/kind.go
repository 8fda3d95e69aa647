package ftracker

import "fmt"

// Kind is the sensor tag of a workout package.
type Kind string

const (
	// KindSwimming tags pool swims: action, duration, weight, pool length, pool count.
	KindSwimming Kind = "SWM"
	// KindRunning tags runs: action, duration, weight.
	KindRunning Kind = "RUN"
	// KindSportsWalking tags walks: action, duration, weight, height.
	KindSportsWalking Kind = "WLK"
)

// Kinds lists supported tags in dispatch order.
var Kinds = []Kind{KindSwimming, KindRunning, KindSportsWalking}

// ParseKind validates a raw tag.
func ParseKind(tag string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == tag {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, tag)
}

// Name returns the workout name shown in reports.
func (k Kind) Name() string {
	switch k {
	case KindSwimming:
		return "Swimming"
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	}
	return string(k)
}

// Arity is the number of positional sensor fields the kind expects.
func (k Kind) Arity() int {
	switch k {
	case KindSwimming:
		return 5
	case KindRunning:
		return 3
	case KindSportsWalking:
		return 4
	}
	return 0
}
