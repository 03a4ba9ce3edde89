// internal/executor/executor.go
package executor

import (
	"context"
	"os"

	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("omnistudio.executor")

// Result is what an external process left behind once it exited.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs external command lines and touches the local filesystem on
// behalf of a transfer.
type Executor interface {
	// Run blocks until cmd exits. A non-zero exit or a spawn failure is
	// returned as an error; the Result is populated either way.
	Run(ctx context.Context, cmd string) (Result, error)
	MkdirAll(ctx context.Context, path string, mode os.FileMode) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
