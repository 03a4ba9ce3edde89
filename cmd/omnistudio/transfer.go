// cmd/omnistudio/transfer.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rutvij26/omnistudio/internal/executor"
	"github.com/rutvij26/omnistudio/internal/prompt"
	"github.com/rutvij26/omnistudio/internal/record"
	"github.com/rutvij26/omnistudio/internal/transfer"
	"github.com/rutvij26/omnistudio/internal/ui"
)

type transferFlags struct {
	alias string
	id    string
	dir   string
	file  string
}

// newTransferCmd builds the command that runs op for one record kind.
func newTransferCmd(d record.Descriptor, op record.Operation) *cobra.Command {
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   d.CommandName(op),
		Short: fmt.Sprintf("%s %s records", op.Title(), d.Label),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := transfer.NewRunner(cfg, prompt.NewTerminal(os.Stdin, os.Stdout), executor.NewLocalExecutor(), ui.Default())
			runner.AssumeYes = yesFlag
			runner.DryRun = dryRunFlag

			ui.Header(fmt.Sprintf("%s %s", op.Title(), d.Plural))
			preset := transfer.Preset{
				Alias:       flags.alias,
				RecordID:    flags.id,
				RecordIDSet: cmd.Flags().Changed("id"),
				Dir:         flags.dir,
				File:        flags.file,
			}
			summary := runner.Run(cmd.Context(), d, op, preset)
			if summary.Outcome == transfer.Failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.alias, "alias", "u", "", "Salesforce org alias")
	switch op {
	case record.Export:
		cmd.Long = fmt.Sprintf("Export %s from an org into a directory of JSON plan files.", d.Plural)
		cmd.Flags().StringVar(&flags.id, "id", "", fmt.Sprintf("%s ID (empty exports all %s)", d.Label, d.Plural))
		cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "export directory")
	case record.Import:
		cmd.Long = fmt.Sprintf("Import %s from a JSON plan file into an org.", d.Plural)
		cmd.Flags().StringVarP(&flags.file, "file", "p", "", "JSON plan file to import")
	}
	return cmd
}

func init() {
	for _, d := range record.All() {
		for _, op := range record.Operations {
			rootCmd.AddCommand(newTransferCmd(d, op))
		}
	}
}
