// internal/transfer/runner_test.go
package transfer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	jujuerrors "github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvij26/omnistudio/internal/executor"
	"github.com/rutvij26/omnistudio/internal/prompt"
	"github.com/rutvij26/omnistudio/internal/record"
	"github.com/rutvij26/omnistudio/internal/ui"
)

type fixture struct {
	prompter *prompt.MockPrompter
	exec     *executor.MockExecutor
	rec      *ui.Recorder
	runner   *Runner
}

func newFixture(answers ...string) *fixture {
	f := &fixture{
		prompter: prompt.NewMockPrompter(answers...),
		exec:     executor.NewMockExecutor(),
		rec:      ui.NewRecorder(),
	}
	f.runner = &Runner{
		Prompter:    f.prompter,
		Exec:        f.exec,
		Notifier:    f.rec,
		CLI:         "sfdx",
		ExportDir:   "./exports",
		OutputTitle: "Salesforce CLI Output",
	}
	return f
}

func lookup(t *testing.T, kind record.Kind) record.Descriptor {
	t.Helper()
	d, err := record.Lookup(kind)
	require.NoError(t, err)
	return d
}

func TestRun_CancelAtAliasPrompt(t *testing.T) {
	for _, d := range record.All() {
		for _, op := range record.Operations {
			f := newFixture()
			f.prompter.Answers = []prompt.Answer{{Err: prompt.ErrCancelled}}

			s := f.runner.Run(context.Background(), d, op, Preset{})

			assert.Equal(t, Cancelled, s.Outcome, d.CommandName(op))
			assert.Empty(t, f.exec.Calls, d.CommandName(op))
			assert.Empty(t, f.rec.Notifications, d.CommandName(op))
			require.Len(t, f.prompter.Asked, 1)
		}
	}
}

func TestRun_WhitespaceAliasRejected(t *testing.T) {
	for _, d := range record.All() {
		for _, op := range record.Operations {
			f := newFixture("   ", "", "")
			f.prompter.Files = []prompt.Answer{{Value: "exports/plan.json"}}

			s := f.runner.Run(context.Background(), d, op, Preset{})

			assert.Equal(t, Invalid, s.Outcome, d.CommandName(op))
			assert.True(t, jujuerrors.Is(s.Err, jujuerrors.NotValid))
			assert.Empty(t, f.exec.RunCalls())
			assert.Empty(t, f.rec.Notifications)
		}
	}
}

func TestRun_BlankPresetAliasStopsBeforeOtherPrompts(t *testing.T) {
	for _, d := range record.All() {
		for _, op := range record.Operations {
			f := newFixture("abc123", "./out")
			f.prompter.Files = []prompt.Answer{{Value: "exports/plan.json"}}

			s := f.runner.Run(context.Background(), d, op, Preset{Alias: "   "})

			assert.Equal(t, Invalid, s.Outcome, d.CommandName(op))
			assert.True(t, jujuerrors.Is(s.Err, jujuerrors.NotValid))
			assert.Empty(t, f.prompter.Asked)
			assert.Empty(t, f.prompter.FilesAsked)
			assert.Empty(t, f.exec.Calls)
		}
	}
}

func TestValidateAlias(t *testing.T) {
	assert.Error(t, ValidateAlias(""))
	assert.Error(t, ValidateAlias(" \t "))
	assert.NoError(t, ValidateAlias("myorg"))
}

func TestValidateImportFile(t *testing.T) {
	assert.NoError(t, validateImportFile("exports/plan.json"))
	assert.NoError(t, validateImportFile("exports/PLAN.JSON"))

	err := validateImportFile("exports/plan.csv")
	assert.True(t, jujuerrors.Is(err, jujuerrors.NotValid))
	assert.Contains(t, err.Error(), ".json")

	err = validateImportFile("  ")
	assert.True(t, jujuerrors.Is(err, jujuerrors.NotValid))
}

func TestRun_ExportCreatesDirBeforeRun(t *testing.T) {
	f := newFixture("myorg", "", "./out/omni")

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	require.Equal(t, Succeeded, s.Outcome)
	require.Len(t, f.exec.Calls, 2)
	assert.Equal(t, "MkdirAll", f.exec.Calls[0].Method)
	assert.Equal(t, "./out/omni", f.exec.Calls[0].Args[0])
	assert.Equal(t, "Run", f.exec.Calls[1].Method)
	assert.Equal(t, []string{"Exporting OmniScript..."}, f.rec.Statuses)
}

func TestRun_ExportAllOmitsFilter(t *testing.T) {
	f := newFixture("myorg", "", "")
	d := lookup(t, record.OmniScript)

	s := f.runner.Run(context.Background(), d, record.Export, Preset{})

	require.Equal(t, Succeeded, s.Outcome)
	want := `sfdx force:data:tree:export -q "` + d.Query + `" -u myorg -d ./exports -p`
	assert.Equal(t, []string{want}, f.exec.RunCalls())
	assert.NotContains(t, s.Command, "id='")
}

func TestRun_ExportWithID(t *testing.T) {
	f := newFixture("myorg", "abc123", "")

	s := f.runner.Run(context.Background(), lookup(t, record.DataRaptor), record.Export, Preset{})

	require.Equal(t, Succeeded, s.Outcome)
	require.Len(t, f.exec.RunCalls(), 1)
	cmd := f.exec.RunCalls()[0]
	assert.Contains(t, cmd, "FROM OmniDataTransform WHERE id='abc123'\"")
	assert.Equal(t, "abc123", s.Request.RecordID)
}

func TestRun_ExportRejectsQuotedID(t *testing.T) {
	f := newFixture("myorg", "abc' OR Name != '", "")

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	assert.Equal(t, Invalid, s.Outcome)
	assert.Empty(t, f.exec.Calls)
	assert.Len(t, f.rec.Statuses, 1)
}

func TestRun_ExportMkdirFailure(t *testing.T) {
	f := newFixture("myorg", "", "/root/forbidden")
	f.exec.MkdirErrors["/root/forbidden"] = errors.New("permission denied")

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	assert.Equal(t, Failed, s.Outcome)
	assert.Empty(t, f.exec.RunCalls())
	require.Equal(t, 1, f.rec.Count(ui.LevelError))
	assert.Contains(t, f.rec.Notifications[0].Message, "permission denied")
}

func TestRun_ExportFailureReported(t *testing.T) {
	f := newFixture("myorg", "", "")
	f.exec.DefaultResult = executor.Result{ExitCode: 1}
	f.exec.DefaultError = errors.New("auth expired")

	s := f.runner.Run(context.Background(), lookup(t, record.IntegrationProcedure), record.Export, Preset{})

	assert.Equal(t, Failed, s.Outcome)
	require.Len(t, f.rec.Notifications, 1)
	assert.Equal(t, "Failed to export Integration Procedure: auth expired", f.rec.Notifications[0].Message)
	assert.Len(t, f.rec.Outputs, 1)
}

func TestRun_ExportWarning(t *testing.T) {
	f := newFixture("myorg", "", "")
	f.exec.DefaultResult = executor.Result{Stdout: "ok", Stderr: "field X deprecated"}

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	assert.Equal(t, Warned, s.Outcome)
	require.Equal(t, 1, f.rec.Count(ui.LevelWarning))
	assert.Contains(t, f.rec.Notifications[0].Message, "field X deprecated")
}

func TestRun_DefaultAliasUsed(t *testing.T) {
	f := newFixture("", "", "")
	f.runner.DefaultAlias = "dev-sandbox"

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	require.Equal(t, Succeeded, s.Outcome)
	assert.Equal(t, "dev-sandbox", s.Request.Alias)
}

func TestRun_ConfirmDeclined(t *testing.T) {
	f := newFixture("myorg", "", "")
	f.prompter.Confirms = []bool{false}

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	assert.Equal(t, Cancelled, s.Outcome)
	assert.Empty(t, f.exec.Calls)
	assert.Empty(t, f.rec.Notifications)
	require.Len(t, f.prompter.Confirmed, 1)
	assert.Equal(t, "Export all OmniScripts from myorg into ./exports?", f.prompter.Confirmed[0])
}

func TestRun_AssumeYesSkipsConfirm(t *testing.T) {
	f := newFixture("myorg", "", "")
	f.runner.AssumeYes = true

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	assert.Equal(t, Succeeded, s.Outcome)
	assert.Empty(t, f.prompter.Confirmed)
}

func TestRun_DryRun(t *testing.T) {
	f := newFixture("myorg", "abc123", "./exports")
	f.runner.DryRun = true

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	assert.Equal(t, DryRun, s.Outcome)
	assert.Empty(t, f.exec.Calls)
	require.Len(t, f.rec.Outputs, 1)
	assert.Equal(t, s.Command, f.rec.Outputs[0].Text)
	assert.Contains(t, s.Command, "AND id='abc123'")
}

func TestRun_PresetSkipsPrompts(t *testing.T) {
	f := newFixture()
	preset := Preset{Alias: "uat", RecordIDSet: true, Dir: "./uat"}

	s := f.runner.Run(context.Background(), lookup(t, record.DataRaptor), record.Export, preset)

	require.Equal(t, Succeeded, s.Outcome)
	assert.Empty(t, f.prompter.Asked)
	assert.Contains(t, s.Command, "-u uat -d ./uat -p")
}

func TestRun_ImportHappyPath(t *testing.T) {
	f := newFixture("production")
	f.prompter.Files = []prompt.Answer{{Value: "exports/OmniProcess-plan.json"}}
	f.exec.Files["exports/OmniProcess-plan.json"] = []byte(`[{"sobject":"OmniProcess"}]`)
	f.exec.DefaultResult = executor.Result{Stdout: "Imported 4 records"}

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Import, Preset{})

	require.Equal(t, Succeeded, s.Outcome)
	assert.Equal(t, []string{"sfdx force:data:tree:import -p exports/OmniProcess-plan.json -u production"}, f.exec.RunCalls())
	assert.Equal(t, "OmniScript imported successfully!", f.rec.Notifications[0].Message)
	require.Len(t, f.prompter.FilesAsked, 1)
	assert.Equal(t, "Select OmniScript export file to import", f.prompter.FilesAsked[0].Title)
	assert.Equal(t, []string{".json"}, f.prompter.FilesAsked[0].Extensions)
	assert.Equal(t, "Enter target Salesforce org alias", f.prompter.Asked[0].Label)
	assert.Equal(t, "Import Output:", f.rec.Outputs[0].Heading)
}

func TestRun_ImportPickerCancelled(t *testing.T) {
	f := newFixture("production")

	s := f.runner.Run(context.Background(), lookup(t, record.DataRaptor), record.Import, Preset{})

	assert.Equal(t, Cancelled, s.Outcome)
	assert.Empty(t, f.exec.Calls)
	assert.Empty(t, f.rec.Notifications)
}

func TestRun_ImportRejectsInvalidJSON(t *testing.T) {
	f := newFixture("production")
	f.prompter.Files = []prompt.Answer{{Value: "plan.json"}}
	f.exec.Files["plan.json"] = []byte("not json")

	s := f.runner.Run(context.Background(), lookup(t, record.DataRaptor), record.Import, Preset{})

	assert.Equal(t, Invalid, s.Outcome)
	assert.Empty(t, f.exec.RunCalls())
	assert.True(t, strings.Contains(s.Err.Error(), "not valid JSON"))
}

func TestRun_ImportRejectsNonJSONPreset(t *testing.T) {
	f := newFixture()

	s := f.runner.Run(context.Background(), lookup(t, record.DataRaptor), record.Import, Preset{Alias: "prod", File: "plan.csv"})

	assert.Equal(t, Invalid, s.Outcome)
	assert.Empty(t, f.exec.Calls)
}

func TestRun_ImportUnreadableFileFails(t *testing.T) {
	f := newFixture("production")
	f.prompter.Files = []prompt.Answer{{Value: "plan.json"}}
	f.exec.ReadErrors["plan.json"] = errors.New("input/output error")

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Import, Preset{})

	assert.Equal(t, Failed, s.Outcome)
	require.Equal(t, 1, f.rec.Count(ui.LevelError))
	assert.Contains(t, f.rec.Notifications[0].Message, "input/output error")
}

func TestRun_MeasuresElapsed(t *testing.T) {
	f := newFixture("myorg", "", "")
	clk := testclock.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	f.runner.Clock = clk
	f.exec.OnRun = func(string) { clk.Advance(3 * time.Second) }

	s := f.runner.Run(context.Background(), lookup(t, record.OmniScript), record.Export, Preset{})

	require.Equal(t, Succeeded, s.Outcome)
	assert.Equal(t, 3*time.Second, s.Elapsed)
}

func TestOutcomeAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "succeeded with warnings", Warned.String())
	assert.Equal(t, "collecting input", CollectingInput.String())
}
