// internal/transfer/report.go
package transfer

import (
	"fmt"
	"strings"

	"github.com/rutvij26/omnistudio/internal/executor"
	"github.com/rutvij26/omnistudio/internal/record"
	"github.com/rutvij26/omnistudio/internal/ui"
)

// Report turns the result of the external process into exactly one
// notification and always shows the captured stdout in the output pane.
func Report(n ui.Notifier, title string, d record.Descriptor, op record.Operation, res executor.Result, err error) Outcome {
	var outcome Outcome
	switch {
	case err != nil:
		n.Notify(ui.LevelError, fmt.Sprintf("Failed to %s %s: %s", op, d.Label, err))
		outcome = Failed
	case res.Stderr != "":
		n.Notify(ui.LevelWarning, fmt.Sprintf("%s completed with warnings: %s", op.Title(), strings.TrimRight(res.Stderr, "\r\n")))
		outcome = Warned
	default:
		n.Notify(ui.LevelInfo, fmt.Sprintf("%s %s successfully!", d.Label, op.Past()))
		outcome = Succeeded
	}
	n.Output(title, op.Title()+" Output:", res.Stdout)
	return outcome
}
