package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/record-engine/internal/config"
	"github.com/GoPowerDNS-Admin/record-engine/internal/engine"
	"github.com/GoPowerDNS-Admin/record-engine/internal/powerdns"
)

func init() { //nolint: gochecknoinits
	checkCmd.Flags().BoolVar(&checkDump, "dump", false, "Print the effective configuration as JSON")

	rootCmd.AddCommand(checkCmd)
}

var (
	checkDump bool

	checkCmd = &cobra.Command{
		Use:    "check",
		Short:  "Check database and PowerDNS API connectivity",
		PreRun: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := engine.New(&cfg)
			if err != nil {
				return err
			}

			sqlDB, err := eng.DB.DB()
			if err != nil {
				return errors.Wrap(err, "failed to reach the database handle")
			}

			if err = sqlDB.Ping(); err != nil {
				return errors.Wrap(err, "database ping failed")
			}

			fmt.Println("database: ok")

			if cfg.PowerDNS.APIURL != "" {
				if err = powerdns.Engine.Test(); err != nil {
					return errors.Wrap(err, "PowerDNS API test failed")
				}

				fmt.Println("powerdns api: ok")
			}

			if checkDump {
				out, derr := config.DumpConfigJSON(&cfg)
				if derr != nil {
					return derr
				}

				fmt.Print(out)
			}

			return nil
		},
	}
)
