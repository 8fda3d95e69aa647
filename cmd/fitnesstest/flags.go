// Package fitnesstest checks ftracker formulas against reference ones and
// runs the built ftracker binary end to end.
package fitnesstest

//go:generate go test -c -o=../../bin/fitnesstest

import "flag"

var (
	flagBinaryPath string // путь до бинарного файла ftracker
)

func init() {
	flag.StringVar(&flagBinaryPath, "binary-path", "", "path to ftracker binary")
}
