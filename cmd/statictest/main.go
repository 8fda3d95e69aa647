// Command statictest is a vet tool bundling the repository analyzers.
//
// Usage: go vet -vettool=$(which statictest) ./...
package main

//go:generate go build -o=../../bin/statictest

import (
	"golang.org/x/tools/go/analysis/unitchecker"

	"github.com/Yandex-Practicum/go-ftracker/internal/lint"
)

func main() {
	unitchecker.Main(lint.Analyzers()...)
}
