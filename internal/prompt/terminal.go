// internal/prompt/terminal.go
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/juju/errors"
	"golang.org/x/term"
)

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

// Terminal asks questions line by line.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	tty bool
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	tty := false
	if f, ok := in.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &Terminal{in: bufio.NewReader(in), out: out, tty: tty}
}

// readLine returns the next trimmed answer. End of input means the user
// gave up.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(t.out)
			return "", ErrCancelled
		}
	}
	// piped input is not echoed, keep one answer per line
	if !t.tty {
		fmt.Fprintln(t.out)
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) invalid(err error) {
	fmt.Fprintf(t.out, "  %s %s\n", red("✗"), err.Error())
}

func (t *Terminal) Ask(q Question) (string, error) {
	label := q.Label
	if q.Default != "" {
		label = fmt.Sprintf("%s [%s]", label, q.Default)
	} else if q.Placeholder != "" {
		label = fmt.Sprintf("%s %s", label, faint("("+q.Placeholder+")"))
	}

	for attempt := 1; ; attempt++ {
		fmt.Fprintf(t.out, "  %s %s: ", cyan("?"), label)
		value, err := t.readLine()
		if err != nil {
			return "", err
		}
		if value == "" {
			value = q.Default
		}
		if q.Validate == nil {
			return value, nil
		}
		verr := q.Validate(value)
		if verr == nil {
			return value, nil
		}
		t.invalid(verr)
		if attempt >= MaxAttempts {
			return "", verr
		}
	}
}

type candidate struct {
	path string
	size int64
}

func findCandidates(dir string, exts []string) []candidate {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []candidate
	for _, e := range entries {
		if e.IsDir() || !HasExtension(e.Name(), exts) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, candidate{path: filepath.Join(dir, e.Name()), size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

// HasExtension reports whether name ends in one of exts, ignoring case. An
// empty exts accepts every name.
func HasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// CheckFile verifies that path names a regular file with one of exts.
func CheckFile(path string, exts []string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotValid(nil, fmt.Sprintf("%s does not exist", path))
		}
		return err
	}
	if info.IsDir() {
		return errors.NewNotValid(nil, fmt.Sprintf("%s is a directory", path))
	}
	if !HasExtension(path, exts) {
		return errors.NewNotValid(nil, fmt.Sprintf("%s is not a %s file", path, strings.Join(exts, "/")))
	}
	return nil
}

// PickFile offers the matching files in q.Dir by number and also accepts a
// typed path. An empty answer closes the chooser.
func (t *Terminal) PickFile(q FileQuestion) (string, error) {
	fmt.Fprintf(t.out, "  %s %s\n", cyan("?"), q.Title)
	candidates := findCandidates(q.Dir, q.Extensions)
	for i, c := range candidates {
		fmt.Fprintf(t.out, "    %d) %s %s\n", i+1, c.path, faint(humanize.Bytes(uint64(c.size))))
	}

	label := "File path"
	if len(candidates) > 0 {
		label = "Number or file path"
	}
	for attempt := 1; ; attempt++ {
		fmt.Fprintf(t.out, "  %s %s %s: ", cyan("?"), label, faint("(empty to cancel)"))
		value, err := t.readLine()
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", ErrCancelled
		}

		path := value
		if n, err := strconv.Atoi(value); err == nil && len(candidates) > 0 {
			if n < 1 || n > len(candidates) {
				t.invalid(errors.NewNotValid(nil, fmt.Sprintf("choose a number between 1 and %d", len(candidates))))
				if attempt >= MaxAttempts {
					return "", errors.NewNotValid(nil, "no file selected")
				}
				continue
			}
			path = candidates[n-1].path
		}

		path = filepath.Clean(path)
		verr := CheckFile(path, q.Extensions)
		if verr == nil {
			return path, nil
		}
		t.invalid(verr)
		if attempt >= MaxAttempts {
			return "", verr
		}
	}
}

func (t *Terminal) Confirm(label string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for attempt := 1; ; attempt++ {
		fmt.Fprintf(t.out, "  %s %s %s: ", cyan("?"), label, hint)
		value, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if attempt >= MaxAttempts {
			return false, ErrCancelled
		}
	}
}
