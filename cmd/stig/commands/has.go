package commands

import (
	"errors"

	"github.com/spf13/cobra"

	config "github.com/0xalexb/stig-config"
)

// ErrKeyAbsent is returned by the has command for a missing key so the
// process exits non-zero without printing anything beyond the result.
var ErrKeyAbsent = errors.New("key absent")

var hasCmd = &cobra.Command{
	Use:   "has <file> <key>",
	Short: "Report whether a top-level key exists",
	Long: `Report whether a key exists at the top level of a configuration file.

Prints "true" or "false", and the exit status reflects the answer. Keys
holding false, null or empty values exist; only a key that is not in the
document reports false.

Examples:
  stig has app.yaml server
  stig has app.json features`,
	Args: cobra.ExactArgs(2),
	RunE: runHas,
}

func runHas(cmd *cobra.Command, args []string) error {
	cfg := config.New(args[0], config.WithRegistry(newRegistry()))

	// Load explicitly so an unreadable file surfaces as an error rather
	// than as plain absence.
	if err := cfg.Load(); err != nil {
		return err
	}

	present := cfg.Has(args[1])
	cmd.Println(present)

	if !present {
		return ErrKeyAbsent
	}

	return nil
}
