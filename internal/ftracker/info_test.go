package ftracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowTrainingInfo(t *testing.T) {
	tests := []struct {
		tag      string
		data     []float64
		expected string
	}{
		{
			tag:      "SWM",
			data:     []float64{720, 1, 80, 25, 40},
			expected: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			tag:      "RUN",
			data:     []float64{15000, 1, 75},
			expected: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		},
		{
			tag:      "WLK",
			data:     []float64{9000, 1, 75, 180},
			expected: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tr, err := ReadPackage(tt.tag, tt.data)
			require.NoError(t, err)

			info := ShowTrainingInfo(tr)
			assert.Equal(t, tt.expected, info.Message())
			assert.Equal(t, info.Message(), info.Message(), "message must be stable")
			assert.Equal(t, info.Message(), info.String())
		})
	}
}

func TestInfoMessageRounding(t *testing.T) {
	info := InfoMessage{
		TrainingType: "Running",
		Duration:     1.23456,
		Distance:     0.0004,
		Speed:        2,
		Calories:     10.9996,
	}
	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.235 ч.; Дистанция: 0.000 км; Ср. скорость: 2.000 км/ч; Потрачено ккал: 11.000.",
		info.Message(),
	)
}
