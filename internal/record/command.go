// internal/record/command.go
package record

import (
	"fmt"
	"regexp"

	"github.com/juju/utils/v4"
)

const (
	DefaultCLI = "sfdx"

	exportSubcommand = "force:data:tree:export"
	importSubcommand = "force:data:tree:import"
)

var safeArg = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// shellArg leaves plain words alone and single-quotes everything else.
func shellArg(s string) string {
	if safeArg.MatchString(s) {
		return s
	}
	return utils.ShQuote(s)
}

// ExportCommand builds the command line that exports query results from the
// org into dir as a data tree plan.
func ExportCommand(cli, query, alias, dir string) string {
	if cli == "" {
		cli = DefaultCLI
	}
	return fmt.Sprintf("%s %s -q \"%s\" -u %s -d %s -p", cli, exportSubcommand, query, shellArg(alias), shellArg(dir))
}

// ImportCommand builds the command line that imports a data tree plan file
// into the org.
func ImportCommand(cli, file, alias string) string {
	if cli == "" {
		cli = DefaultCLI
	}
	return fmt.Sprintf("%s %s -p %s -u %s", cli, importSubcommand, shellArg(file), shellArg(alias))
}
