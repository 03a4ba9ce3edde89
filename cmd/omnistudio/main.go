// cmd/omnistudio/main.go
package main

import (
	"errors"
	"os"

	"github.com/rutvij26/omnistudio/internal/ui"
)

var version = "dev"

// errReported marks a failure the user has already been notified about.
var errReported = errors.New("reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			ui.Error(err.Error())
		}
		os.Exit(1)
	}
}
