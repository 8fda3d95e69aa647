// Package ftracker computes distance, speed and calories for workouts
// recorded by a fitness tracker.
package ftracker

import "math"

const (
	lenStep = 0.65 // средняя длина шага, м
	mInKm   = 1000
	minInH  = 60

	kmhInMsec = 0.278
	cmInM     = 100

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38 // длина гребка, м
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is one of Running, SportsWalking or Swimming.
// The interface is sealed: every workout has to provide its own calorie formula.
type Training interface {
	Kind() Kind
	// Duration returns workout duration in hours.
	Duration() float64
	// Distance returns covered distance in km.
	Distance() float64
	// MeanSpeed returns mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns burned kilocalories.
	SpentCalories() float64

	sealed()
}

var (
	_ Training = Running{}
	_ Training = SportsWalking{}
	_ Training = Swimming{}
)

// training holds sensor fields shared by all workouts.
type training struct {
	action   int     // шаги или гребки
	duration float64 // ч
	weight   float64 // кг
}

func newTraining(action int, duration, weight float64) (training, error) {
	if action < 0 {
		return training{}, &InputError{Field: "action", Value: float64(action), Reason: "must not be negative"}
	}
	if err := positive("duration", duration); err != nil {
		return training{}, err
	}
	if err := positive("weight", weight); err != nil {
		return training{}, err
	}
	return training{action: action, duration: duration, weight: weight}, nil
}

func (t training) Duration() float64 { return t.duration }

func (t training) distance(step float64) float64 {
	return float64(t.action) * step / mInKm
}

func (training) sealed() {}

// finite rejects workouts whose derived values overflow. A speed overflow is
// blamed on duration, a calorie overflow on calorieField.
func finite(t Training, calorieField string, calorieValue float64) error {
	if speed := t.MeanSpeed(); math.IsInf(speed, 0) || math.IsNaN(speed) {
		return &InputError{Field: "duration", Value: t.Duration(), Reason: "is too small, mean speed overflows"}
	}
	if calories := t.SpentCalories(); math.IsInf(calories, 0) || math.IsNaN(calories) {
		return &InputError{Field: calorieField, Value: calorieValue, Reason: "is out of range, calories overflow"}
	}
	return nil
}

// Running is a run counted in steps.
type Running struct {
	training
}

// NewRunning validates sensor data of a run.
func NewRunning(action int, duration, weight float64) (Running, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	r := Running{training: t}
	if err := finite(r, "weight", weight); err != nil {
		return Running{}, err
	}
	return r, nil
}

func (Running) Kind() Kind { return KindRunning }

func (r Running) Distance() float64 { return r.distance(lenStep) }

func (r Running) MeanSpeed() float64 { return r.Distance() / r.duration }

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.duration * minInH
}

// SportsWalking is a walk counted in steps, calories depend on height.
type SportsWalking struct {
	training
	height float64 // см
}

// NewSportsWalking validates sensor data of a walk.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if err := positive("height", height); err != nil {
		return SportsWalking{}, err
	}
	w := SportsWalking{training: t, height: height}
	if err := finite(w, "height", height); err != nil {
		return SportsWalking{}, err
	}
	return w, nil
}

func (SportsWalking) Kind() Kind { return KindSportsWalking }

func (w SportsWalking) Distance() float64 { return w.distance(lenStep) }

func (w SportsWalking) MeanSpeed() float64 { return w.Distance() / w.duration }

func (w SportsWalking) SpentCalories() float64 {
	return (walkingCaloriesWeightMultiplier*w.weight +
		math.Pow(w.MeanSpeed()*kmhInMsec, 2)/w.height*cmInM*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH
}

// Swimming is a pool swim counted in strokes. Speed comes from pool laps.
type Swimming struct {
	training
	lengthPool int // м
	countPool  int
}

// NewSwimming validates sensor data of a swim.
func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) (Swimming, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if err := positive("length_pool", float64(lengthPool)); err != nil {
		return Swimming{}, err
	}
	if err := positive("count_pool", float64(countPool)); err != nil {
		return Swimming{}, err
	}
	sw := Swimming{training: t, lengthPool: lengthPool, countPool: countPool}
	if err := finite(sw, "weight", weight); err != nil {
		return Swimming{}, err
	}
	return sw, nil
}

func (Swimming) Kind() Kind { return KindSwimming }

func (s Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

func (s Swimming) MeanSpeed() float64 {
	return float64(s.lengthPool) * float64(s.countPool) / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight * s.duration
}
