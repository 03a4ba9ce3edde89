// cmd/omnistudio/kinds.go
package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/rutvij26/omnistudio/internal/record"
	"github.com/rutvij26/omnistudio/internal/ui"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds [kind]",
	Short: "List supported record kinds and their commands",
	Long:  "Without an argument, kinds lists every record kind. With a kind, it shows that kind's commands and export query.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		console := ui.NewConsole(out)

		table := uitable.New()
		table.MaxColWidth = 40

		if len(args) == 1 {
			d, err := record.Lookup(record.Kind(args[0]))
			if err != nil {
				return err
			}
			console.Header(d.Label)
			table.Wrap = true
			table.MaxColWidth = 80
			table.AddRow("  KIND", string(d.Kind))
			table.AddRow("  EXPORT", d.CommandName(record.Export))
			table.AddRow("  IMPORT", d.CommandName(record.Import))
			table.AddRow("  QUERY", d.Query)
		} else {
			console.Header("Record kinds")
			table.AddRow("  KIND", "LABEL", "EXPORT", "IMPORT")
			for _, d := range record.All() {
				table.AddRow("  "+string(d.Kind), d.Label, d.CommandName(record.Export), d.CommandName(record.Import))
			}
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, table)
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
