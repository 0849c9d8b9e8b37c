// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/record-engine/internal/config"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var (
	configPath string // Path to the configuration file

	err     error
	devMode bool

	cfg config.Config
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

var rootCmd = &cobra.Command{
	Use:   "record-engine",
	Short: "record-engine validates and maintains PowerDNS records",
	Long: `record-engine is a record validation and comment synchronization
engine for PowerDNS. It validates resource record data, persists records
in the PowerDNS database and keeps the comments of forward records and
their PTR counterparts in step.`,
	Args:    cobra.OnlyValidArgs,
	Version: Version,
}

// loadConfig is the PreRun of every command that needs the configuration.
func loadConfig(_ *cobra.Command, _ []string) {
	if cfg, err = config.ReadConfig(configPath); err != nil {
		panic(err)
	}

	if devMode {
		cfg.DevMode = true
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
