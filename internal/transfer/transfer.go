// internal/transfer/transfer.go
package transfer

import (
	"fmt"
	"strings"
	"time"

	"github.com/juju/errors"

	"github.com/rutvij26/omnistudio/internal/prompt"
	"github.com/rutvij26/omnistudio/internal/record"
)

// Phase is a step of a single command run.
type Phase int

const (
	Idle Phase = iota
	CollectingInput
	Validating
	Executing
	Reporting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case CollectingInput:
		return "collecting input"
	case Validating:
		return "validating"
	case Executing:
		return "executing"
	case Reporting:
		return "reporting"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Outcome is how a run ended.
type Outcome int

const (
	Cancelled Outcome = iota
	Invalid
	DryRun
	Succeeded
	Warned
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Cancelled:
		return "cancelled"
	case Invalid:
		return "invalid"
	case DryRun:
		return "dry run"
	case Succeeded:
		return "succeeded"
	case Warned:
		return "succeeded with warnings"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Request holds the answers gathered for one run.
type Request struct {
	Kind      record.Kind
	Operation record.Operation
	Alias     string
	// RecordID is empty when every record of the kind is exported.
	RecordID string
	Dir      string
	File     string
}

// Preset pre-fills answers so the matching prompts are skipped.
type Preset struct {
	Alias       string
	RecordID    string
	RecordIDSet bool
	Dir         string
	File        string
}

// Summary describes a finished run.
type Summary struct {
	Outcome Outcome
	Request Request
	Command string
	Elapsed time.Duration
	Err     error
}

// ImportExtensions are the file types accepted for import.
var ImportExtensions = []string{".json"}

func ValidateAlias(alias string) error {
	if strings.TrimSpace(alias) == "" {
		return errors.NewNotValid(nil, "Org alias is required")
	}
	return nil
}

func validateDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.NewNotValid(nil, "Export directory is required")
	}
	return nil
}

func validateImportFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.NewNotValid(nil, "Import file is required")
	}
	if !prompt.HasExtension(path, ImportExtensions) {
		return errors.NewNotValid(nil, fmt.Sprintf("%s is not a %s file", path, strings.Join(ImportExtensions, ", ")))
	}
	return nil
}
