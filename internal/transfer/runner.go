// internal/transfer/runner.go
package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/rutvij26/omnistudio/internal/config"
	"github.com/rutvij26/omnistudio/internal/executor"
	"github.com/rutvij26/omnistudio/internal/prompt"
	"github.com/rutvij26/omnistudio/internal/record"
	"github.com/rutvij26/omnistudio/internal/ui"
)

var logger = loggo.GetLogger("omnistudio.transfer")

// Runner walks a single export or import from the first prompt to the final
// notification. It keeps no state between runs.
type Runner struct {
	Prompter prompt.Prompter
	Exec     executor.Executor
	Notifier ui.Notifier
	Clock    clock.Clock

	CLI          string
	ExportDir    string
	DefaultAlias string
	OutputTitle  string

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
	// DryRun prints the command line instead of running it.
	DryRun bool
}

// NewRunner returns a Runner configured from cfg.
func NewRunner(cfg *config.Config, p prompt.Prompter, exec executor.Executor, n ui.Notifier) *Runner {
	return &Runner{
		Prompter:     p,
		Exec:         exec,
		Notifier:     n,
		Clock:        clock.WallClock,
		CLI:          cfg.CLI,
		ExportDir:    cfg.ExportDir,
		DefaultAlias: cfg.DefaultAlias,
		OutputTitle:  cfg.OutputTitle,
	}
}

func (r *Runner) clock() clock.Clock {
	if r.Clock == nil {
		return clock.WallClock
	}
	return r.Clock
}

func (r *Runner) outputTitle() string {
	if r.OutputTitle == "" {
		return config.DefaultOutputTitle
	}
	return r.OutputTitle
}

func (r *Runner) enter(req Request, p Phase) {
	logger.Debugf("%s %s: %s", req.Operation, req.Kind, p)
}

// Run performs op for the record kind described by d. Every failure is
// reported through the Notifier; the returned Summary says how it ended.
func (r *Runner) Run(ctx context.Context, d record.Descriptor, op record.Operation, preset Preset) Summary {
	req := Request{
		Kind:      d.Kind,
		Operation: op,
		Alias:     preset.Alias,
		RecordID:  preset.RecordID,
		Dir:       preset.Dir,
		File:      preset.File,
	}
	defer r.enter(req, Idle)

	r.enter(req, CollectingInput)
	if err := r.collect(d, &req, preset); err != nil {
		return r.abort(d, req, err)
	}

	r.enter(req, Validating)
	cmd, err := r.validate(ctx, d, req)
	if err != nil {
		return r.abort(d, req, err)
	}

	if !r.AssumeYes && !r.DryRun {
		ok, err := r.Prompter.Confirm(describe(d, req), true)
		if err != nil {
			return r.abort(d, req, err)
		}
		if !ok {
			return r.abort(d, req, prompt.ErrCancelled)
		}
	}

	if r.DryRun {
		r.Notifier.Output(r.outputTitle(), "Command:", cmd)
		return Summary{Outcome: DryRun, Request: req, Command: cmd}
	}

	r.enter(req, Executing)
	if op == record.Export {
		if err := r.Exec.MkdirAll(ctx, req.Dir, 0755); err != nil {
			err = fmt.Errorf("failed to create %s: %w", req.Dir, err)
			r.Notifier.Notify(ui.LevelError, fmt.Sprintf("Failed to %s %s: %s", op, d.Label, err))
			return Summary{Outcome: Failed, Request: req, Command: cmd, Err: err}
		}
	}

	r.Notifier.Status(fmt.Sprintf("%sing %s...", op.Title(), d.Label))
	start := r.clock().Now()
	res, err := r.Exec.Run(ctx, cmd)
	elapsed := r.clock().Now().Sub(start)
	logger.Debugf("%s exited with code %d after %s", cmd, res.ExitCode, elapsed)

	r.enter(req, Reporting)
	outcome := Report(r.Notifier, r.outputTitle(), d, op, res, err)
	return Summary{Outcome: outcome, Request: req, Command: cmd, Elapsed: elapsed, Err: err}
}

func (r *Runner) collect(d record.Descriptor, req *Request, preset Preset) error {
	var err error
	if req.Alias == "" {
		q := prompt.Question{
			Label:       "Enter Salesforce org alias",
			Placeholder: "e.g., myorg",
			Default:     r.DefaultAlias,
			Validate:    ValidateAlias,
		}
		if req.Operation == record.Import {
			q.Label = "Enter target Salesforce org alias"
			q.Placeholder = "e.g., production"
		}
		if req.Alias, err = r.Prompter.Ask(q); err != nil {
			return err
		}
	}
	req.Alias = strings.TrimSpace(req.Alias)
	if err := ValidateAlias(req.Alias); err != nil {
		return err
	}

	switch req.Operation {
	case record.Export:
		if !preset.RecordIDSet {
			req.RecordID, err = r.Prompter.Ask(prompt.Question{
				Label:       fmt.Sprintf("Enter %s ID (leave empty to export all %s)", d.Label, d.Plural),
				Placeholder: "e.g., 0Om...",
				Validate:    record.ValidateID,
			})
			if err != nil {
				return err
			}
		}
		req.RecordID = strings.TrimSpace(req.RecordID)

		if req.Dir == "" {
			req.Dir, err = r.Prompter.Ask(prompt.Question{
				Label:   "Enter export directory path",
				Default: r.ExportDir,
			})
			if err != nil {
				return err
			}
		}
		req.Dir = strings.TrimSpace(req.Dir)
		if req.Dir == "" {
			return prompt.ErrCancelled
		}

	case record.Import:
		if req.File == "" {
			req.File, err = r.Prompter.PickFile(prompt.FileQuestion{
				Title:      fmt.Sprintf("Select %s export file to import", d.Label),
				Dir:        r.ExportDir,
				Extensions: ImportExtensions,
			})
			if err != nil {
				return err
			}
		}
		req.File = strings.TrimSpace(req.File)
		if req.File == "" {
			return prompt.ErrCancelled
		}

	default:
		return errors.NotSupportedf("operation %q", req.Operation)
	}
	return nil
}

// validate checks the collected answers and builds the command line.
func (r *Runner) validate(ctx context.Context, d record.Descriptor, req Request) (string, error) {
	if err := ValidateAlias(req.Alias); err != nil {
		return "", err
	}

	switch req.Operation {
	case record.Export:
		if err := validateDir(req.Dir); err != nil {
			return "", err
		}
		query, err := d.ExportQuery(req.RecordID)
		if err != nil {
			return "", err
		}
		return record.ExportCommand(r.CLI, query, req.Alias, req.Dir), nil

	case record.Import:
		if err := validateImportFile(req.File); err != nil {
			return "", err
		}
		data, err := r.Exec.ReadFile(ctx, req.File)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewNotValid(nil, fmt.Sprintf("%s does not exist", req.File))
			}
			return "", fmt.Errorf("failed to read %s: %w", req.File, err)
		}
		if !json.Valid(data) {
			return "", errors.NewNotValid(nil, fmt.Sprintf("%s is not valid JSON", req.File))
		}
		return record.ImportCommand(r.CLI, req.File, req.Alias), nil
	}
	return "", errors.NotSupportedf("operation %q", req.Operation)
}

// abort ends a run before the external process was started.
func (r *Runner) abort(d record.Descriptor, req Request, err error) Summary {
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		logger.Debugf("%s %s cancelled", req.Operation, req.Kind)
		return Summary{Outcome: Cancelled, Request: req}
	case errors.Is(err, errors.NotValid):
		logger.Debugf("%s %s rejected: %v", req.Operation, req.Kind, err)
		r.Notifier.Status(err.Error())
		return Summary{Outcome: Invalid, Request: req, Err: err}
	}
	r.Notifier.Notify(ui.LevelError, fmt.Sprintf("Failed to %s %s: %s", req.Operation, d.Label, err))
	return Summary{Outcome: Failed, Request: req, Err: err}
}

func describe(d record.Descriptor, req Request) string {
	if req.Operation == record.Import {
		return fmt.Sprintf("Import %s into %s?", req.File, req.Alias)
	}
	what := "all " + d.Plural
	if req.RecordID != "" {
		what = fmt.Sprintf("%s %s", d.Label, req.RecordID)
	}
	return fmt.Sprintf("Export %s from %s into %s?", what, req.Alias, req.Dir)
}
