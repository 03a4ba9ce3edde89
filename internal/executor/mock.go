// internal/executor/mock.go
package executor

import (
	"context"
	"fmt"
	"os"
)

type MockCall struct {
	Method string
	Args   []interface{}
}

type MockExecutor struct {
	Calls       []MockCall
	RunResults  map[string]Result
	RunErrors   map[string]error
	Files       map[string][]byte
	Dirs        map[string]os.FileMode
	ReadErrors  map[string]error
	MkdirErrors map[string]error

	// DefaultResult is returned by Run for commands without an entry in
	// RunResults.
	DefaultResult Result
	// DefaultError is returned by Run for commands without an entry in
	// RunErrors.
	DefaultError error
	// OnRun, when set, is called before Run returns.
	OnRun func(cmd string)
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		RunResults:  make(map[string]Result),
		RunErrors:   make(map[string]error),
		Files:       make(map[string][]byte),
		Dirs:        make(map[string]os.FileMode),
		ReadErrors:  make(map[string]error),
		MkdirErrors: make(map[string]error),
	}
}

func (m *MockExecutor) Run(_ context.Context, cmd string) (Result, error) {
	m.Calls = append(m.Calls, MockCall{Method: "Run", Args: []interface{}{cmd}})
	if m.OnRun != nil {
		m.OnRun(cmd)
	}
	res, ok := m.RunResults[cmd]
	if !ok {
		res = m.DefaultResult
	}
	if err, ok := m.RunErrors[cmd]; ok {
		return res, err
	}
	return res, m.DefaultError
}

func (m *MockExecutor) MkdirAll(_ context.Context, path string, mode os.FileMode) error {
	m.Calls = append(m.Calls, MockCall{Method: "MkdirAll", Args: []interface{}{path, mode}})
	if err, ok := m.MkdirErrors[path]; ok {
		return err
	}
	m.Dirs[path] = mode
	return nil
}

func (m *MockExecutor) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.Calls = append(m.Calls, MockCall{Method: "ReadFile", Args: []interface{}{path}})
	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	if data, ok := m.Files[path]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

// RunCalls returns the command lines passed to Run, in order.
func (m *MockExecutor) RunCalls() []string {
	var cmds []string
	for _, c := range m.Calls {
		if c.Method == "Run" {
			cmds = append(cmds, c.Args[0].(string))
		}
	}
	return cmds
}
