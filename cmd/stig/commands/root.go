// Package commands implements the stig CLI commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	config "github.com/0xalexb/stig-config"
	"github.com/0xalexb/stig-config/backend"
	tomlbackend "github.com/0xalexb/stig-config/backend/toml"
	"github.com/0xalexb/stig-config/logging"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "stig",
	Short: "Query and edit structured configuration files",
	Long: `stig reads and writes configuration files through dotted paths.

The serialization format is selected by filename: .json, .jsn and .jsonc
files are handled as JSON, .yaml and .yml as YAML, .toml as TOML. Paths
descend mappings by key and sequences by index:

  stig get app.yaml server.host
  stig get app.yaml companies.acme.users.0.name
  stig set app.json server.port 9090
  stig convert app.yaml app.toml`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger := logging.NewLogger(logging.Config{Level: logLevel, Format: logFormat}, os.Stderr)
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.SetVersionTemplate(fmt.Sprintf("stig %s (compiled %s)\n", config.Version, config.CompiledAt))

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(hasCmd)
	rootCmd.AddCommand(convertCmd)
}

// Execute runs the root command. Resolved values go to stdout; logs and
// errors go to stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)

	return rootCmd.Execute()
}

// newRegistry builds the registry the CLI works with: the built-in backends
// plus TOML, which library users opt into explicitly.
func newRegistry() *backend.Registry {
	registry := config.DefaultRegistry()
	registry.Register("toml", backend.Suffixes(tomlbackend.Suffixes...), tomlbackend.New())

	return registry
}
