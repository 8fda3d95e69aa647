package ftracker

import "fmt"

const messageFormat = "Тип тренировки: %s;" +
	" Длительность: %.3f ч.;" +
	" Дистанция: %.3f км;" +
	" Ср. скорость: %.3f км/ч;" +
	" Потрачено ккал: %.3f."

// InfoMessage is a summary of a finished workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// ShowTrainingInfo computes the summary of t.
func ShowTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().Name(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Message renders the summary as a single line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func (m InfoMessage) String() string {
	return m.Message()
}
