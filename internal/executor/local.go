// internal/executor/local.go
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type LocalExecutor struct {
	Shell string
}

func NewLocalExecutor() *LocalExecutor {
	return &LocalExecutor{Shell: "sh"}
}

// Run executes cmd through the shell. The process is detached from ctx
// cancellation: once started it always runs to completion.
func (l *LocalExecutor) Run(ctx context.Context, cmd string) (Result, error) {
	logger.Debugf("running %q", cmd)
	c := exec.CommandContext(context.WithoutCancel(ctx), l.Shell, "-c", cmd)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if c.ProcessState != nil {
		res.ExitCode = c.ProcessState.ExitCode()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			res.ExitCode = -1
		}
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			return res, fmt.Errorf("%w: %s", err, msg)
		}
		return res, err
	}
	return res, nil
}

func (l *LocalExecutor) MkdirAll(_ context.Context, path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

func (l *LocalExecutor) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}
