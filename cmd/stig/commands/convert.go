package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	config "github.com/0xalexb/stig-config"
	"github.com/0xalexb/stig-config/backend"
	"github.com/0xalexb/stig-config/fsio"
)

var convertCompact bool

var convertCmd = &cobra.Command{
	Use:   "convert <source> <destination>",
	Short: "Rewrite a configuration file in the format the destination filename selects",
	Long: `Rewrite a configuration file in another serialization format.

Both formats are selected by filename. Comments do not survive conversion,
and values without a representation in the destination format fail it.

Examples:
  stig convert app.yaml app.json
  stig convert app.json app.toml
  stig convert app.yaml compact.json --compact`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertCompact, "compact", false, "Write dense output for formats that support it")
}

func runConvert(_ *cobra.Command, args []string) error {
	registry := newRegistry()

	source := config.New(args[0], config.WithRegistry(registry))

	root, err := source.Get("")
	if err != nil {
		return err
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected document root type %T", root)
	}

	b, _, err := registry.Resolve(args[1])
	if err != nil {
		return err
	}

	data, err := b.Encode(doc, backend.EncodeOptions{Compact: convertCompact})
	if err != nil {
		return fmt.Errorf("encoding %q: %w", args[1], err)
	}

	return fsio.WriteAll(args[1], data, false)
}
