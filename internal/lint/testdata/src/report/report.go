package report

import "fmt"

type InfoMessage struct {
	TrainingType string
	Duration     float64
}

func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.", m.TrainingType, m.Duration)
}

func (m InfoMessage) Swapped() string {
	return fmt.Sprintf("Длительность: %.3f ч.", m.TrainingType) // want `format %.3f has arg m.TrainingType of wrong type string`
}
