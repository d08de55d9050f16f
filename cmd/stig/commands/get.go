package commands

import (
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	config "github.com/0xalexb/stig-config"
)

var (
	getDefault  string
	getRequired bool
	getRaw      bool
)

var getCmd = &cobra.Command{
	Use:   "get <file> <path> [fallback-path...]",
	Short: "Resolve a dotted path in a configuration file",
	Long: `Resolve a dotted path in a configuration file and print the value.

When several paths are given they form a fallback chain: the first one that
resolves wins. Scalars print bare; mappings and sequences print as JSON.

Examples:
  stig get app.yaml server.host
  stig get app.yaml server.port --default 8080
  stig get app.json database.url --required
  stig get app.yaml goodbye hello`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getDefault, "default", "", "Value printed when no path resolves")
	getCmd.Flags().BoolVar(&getRequired, "required", false, "Fail when no path resolves")
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "Print compound values as dense single-line JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg := config.New(args[0], config.WithRegistry(newRegistry()))

	var opts []config.GetOption

	if cmd.Flags().Changed("default") {
		opts = append(opts, config.WithDefault(getDefault))
	}

	if getRequired {
		opts = append(opts, config.WithRequired())
	}

	value, err := cfg.GetFirst(args[1:], opts...)
	if err != nil {
		return err
	}

	printValue(cmd, value, getRaw)

	return nil
}

// printValue renders scalars bare and compound values as JSON, indented
// unless raw is set. An absent value (nil without a default) prints nothing.
func printValue(cmd *cobra.Command, value any, raw bool) {
	switch value.(type) {
	case nil:
	case map[string]any, []any:
		if raw {
			cmd.Println(oj.JSON(value))
		} else {
			cmd.Println(oj.JSON(value, 2))
		}
	default:
		cmd.Println(value)
	}
}
