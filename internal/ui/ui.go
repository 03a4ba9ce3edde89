// internal/ui/ui.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Notifier is where a command run reports to the user. Notify carries the
// single-line outcome of a run, Status carries progress chatter, and Output
// shows raw text from the external tool.
type Notifier interface {
	Notify(level Level, msg string)
	Status(msg string)
	Output(title, heading, text string)
}

// Console prints to a terminal.
type Console struct {
	mu         sync.Mutex
	w          io.Writer
	lastOutput string
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

var std = NewConsole(os.Stdout)

// Default returns the console bound to stdout.
func Default() *Console {
	return std
}

func (c *Console) printf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) Success(msg string) {
	c.printf("  %s %s\n", green("✓"), msg)
}

func (c *Console) Warn(msg string) {
	c.printf("  %s %s\n", yellow("⚠"), msg)
}

func (c *Console) Error(msg string) {
	c.printf("  %s %s\n", red("✗"), msg)
}

func (c *Console) Info(msg string) {
	c.printf("  %s\n", cyan(msg))
}

func (c *Console) Header(msg string) {
	c.printf("\n  %s\n", bold(msg))
}

func (c *Console) Notify(level Level, msg string) {
	switch level {
	case LevelWarning:
		c.Warn(msg)
	case LevelError:
		c.Error(msg)
	default:
		c.Success(msg)
	}
}

func (c *Console) Status(msg string) {
	c.Info(msg)
}

// Output writes text under a titled pane. The title is printed once and
// reused by later calls with the same title.
func (c *Console) Output(title, heading, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastOutput != title {
		fmt.Fprintf(c.w, "\n  %s\n  %s\n", bold(title), faint(strings.Repeat("─", len(title))))
		c.lastOutput = title
	}
	if heading != "" {
		fmt.Fprintf(c.w, "  %s\n", heading)
	}
	text = strings.TrimRight(text, "\n")
	if text == "" {
		fmt.Fprintf(c.w, "  %s\n", faint("(no output)"))
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(c.w, "  %s\n", line)
	}
}

func Error(msg string) { std.Error(msg) }

func Header(msg string) { std.Header(msg) }
