package commands

import (
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	config "github.com/0xalexb/stig-config"
)

var setCompact bool

var setCmd = &cobra.Command{
	Use:   "set <file> <path> <value>",
	Short: "Assign a value at a dotted path and save the file",
	Long: `Assign a value at a dotted path and save the file in place.

Missing intermediate mappings are created. The value is interpreted as JSON
when it parses as JSON, so numbers, booleans, nulls and structured values
keep their types; anything else is stored as a string.

Examples:
  stig set app.yaml server.port 9090
  stig set app.json features.cache true
  stig set app.yaml server.tags '["edge", "eu"]'
  stig set app.toml owner.name alice`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVar(&setCompact, "compact", false, "Save dense output for formats that support it")
}

func runSet(_ *cobra.Command, args []string) error {
	opts := []config.Option{
		config.WithRegistry(newRegistry()),
		config.WithReadWrite(),
	}

	if setCompact {
		opts = append(opts, config.WithCompact())
	}

	cfg := config.New(args[0], opts...)

	if err := cfg.Set(args[1], parseValue(args[2])); err != nil {
		return err
	}

	return cfg.Save()
}

// parseValue interprets raw as JSON when possible so typed values survive;
// anything that does not parse is kept as a plain string.
func parseValue(raw string) any {
	value, err := oj.ParseString(raw)
	if err != nil {
		return raw
	}

	return value
}
