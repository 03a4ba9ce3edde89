// cmd/omnistudio/root.go
package main

import (
	"fmt"
	"os"

	"github.com/juju/loggo/v2"
	"github.com/spf13/cobra"

	"github.com/rutvij26/omnistudio/internal/config"
)

var (
	configFlag string
	debugFlag  bool
	yesFlag    bool
	dryRunFlag bool

	cfg *config.Config
)

// skipConfig marks commands that run without reading the config file.
const skipConfig = "omnistudio/skip-config"

var rootCmd = &cobra.Command{
	Use:           "omnistudio",
	Short:         "Export and import OmniStudio records with the Salesforce CLI",
	Long:          "omnistudio moves OmniScripts, DataRaptors and Integration Procedures between a Salesforce org and local JSON files by driving the Salesforce CLI.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		if cmd.Annotations[skipConfig] != "" {
			return nil
		}
		path := configFlag
		if path == "" {
			path = config.DefaultPath()
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.omnistudio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "print the Salesforce CLI command instead of running it")
	rootCmd.AddCommand(versionCmd)
}

func setupLogging() error {
	spec := "<root>=WARNING"
	if debugFlag || os.Getenv("OMNISTUDIO_DEBUG") != "" {
		spec = "<root>=DEBUG"
	}
	if err := loggo.ConfigureLoggers(spec); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print omnistudio version",
	Annotations: map[string]string{skipConfig: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "omnistudio", version)
	},
}
