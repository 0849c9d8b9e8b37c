package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
	"github.com/GoPowerDNS-Admin/record-engine/internal/validation"
)

var errRecordDataInvalid = errors.New("record data invalid")

func init() { //nolint: gochecknoinits
	validateCmd.Flags().StringVar(&valName, "name", "", "Record name, relative to the zone when --zone is set")
	validateCmd.Flags().StringVar(&valZone, "zone", "", "Zone the name belongs to")
	validateCmd.Flags().StringVar(&valType, "type", "",
		"Record type, one of "+strings.Join(validation.NewRegistry().Types(), ", "))
	validateCmd.Flags().StringVar(&valContent, "content", "", "Record content")
	validateCmd.Flags().StringVar(&valTTL, "ttl", "", "Record TTL, empty for the default")
	validateCmd.Flags().StringVar(&valPrio, "prio", "", "Record priority, empty for the type default")
	validateCmd.Flags().IntVar(&valDefaultTTL, "default-ttl", 3600, "TTL substituted when --ttl is empty")

	_ = validateCmd.MarkFlagRequired("type")
	_ = validateCmd.MarkFlagRequired("content")

	rootCmd.AddCommand(validateCmd)
}

var (
	valName       string
	valZone       string
	valType       string
	valContent    string
	valTTL        string
	valPrio       string
	valDefaultTTL int

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate record data without touching any database",
		RunE: func(_ *cobra.Command, _ []string) error {
			name := valName
			if valZone != "" {
				name = dnsname.RestoreZoneSuffix(valName, valZone)
			}

			res, err := validation.NewRegistry().Validate(valType, valContent, name, valPrio, valTTL, valDefaultTTL)
			if err != nil {
				return err //nolint: wrapcheck
			}

			if !res.IsValid() {
				for _, problem := range res.Errors {
					fmt.Println(problem)
				}

				return errRecordDataInvalid
			}

			fmt.Printf("ok: %s %s %q ttl=%d prio=%d\n",
				res.Data.Name, valType, res.Data.Content, res.Data.TTL, res.Data.Prio)

			return nil
		},
	}
)
