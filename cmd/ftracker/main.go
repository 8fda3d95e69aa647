// Command ftracker prints workout reports for a fixed set of tracker packages.
package main

//go:generate go build -o=../../bin/ftracker

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Yandex-Practicum/go-ftracker/internal/app"
	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

var packages = []ftracker.Package{
	{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Type: "RUN", Data: []float64{15000, 1, 75}},
	{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
}

// run prints reports to stdout, logs to stderr and returns the exit code.
func run(stdout, stderr io.Writer, packages []ftracker.Package) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339, NoColor: true}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	if err := app.Run(stdout, packages, logger); err != nil {
		logger.Error().Err(err).Msg("ftracker stopped")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr, packages))
}
