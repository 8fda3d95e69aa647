// Package app turns tracker packages into printed workout reports.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// UnknownTypeMessage is printed when a package carries an unsupported tag.
const UnknownTypeMessage = "Неверный тип тренировки"

// Run prints one report line per package, in order.
// The first failing package stops the batch.
func Run(w io.Writer, packages []ftracker.Package, logger zerolog.Logger) error {
	for i, pkg := range packages {
		log := logger.With().Int("package", i).Str("type", pkg.Type).Logger()

		training, err := pkg.Read()
		if errors.Is(err, ftracker.ErrUnknownWorkoutType) {
			log.Error().Err(err).Msg("unsupported workout")
			if _, werr := fmt.Fprintln(w, UnknownTypeMessage); werr != nil {
				return fmt.Errorf("write report: %w", werr)
			}
			return err
		}
		if err != nil {
			log.Error().Err(err).Floats64("data", pkg.Data).Msg("cannot read package")
			return fmt.Errorf("package %d: %w", i, err)
		}

		info := ftracker.ShowTrainingInfo(training)
		log.Debug().
			Float64("distance", info.Distance).
			Float64("speed", info.Speed).
			Float64("calories", info.Calories).
			Msg("workout computed")

		if _, err := fmt.Fprintln(w, info.Message()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
