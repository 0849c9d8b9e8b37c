package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/record-engine/internal/db/controller/domain"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/controller/record"
	"github.com/GoPowerDNS-Admin/record-engine/internal/engine"
	"github.com/GoPowerDNS-Admin/record-engine/internal/records"
)

var errMutationFailed = errors.New("record mutation failed, see the log for details")

func init() { //nolint: gochecknoinits
	recordAddCmd.Flags().StringVar(&addZone, "zone", "", "Zone the record belongs to")
	recordAddCmd.Flags().StringVar(&addName, "name", "", "Record name relative to the zone, empty or @ for the apex")
	recordAddCmd.Flags().StringVar(&addType, "type", "", "Record type")
	recordAddCmd.Flags().StringVar(&addContent, "content", "", "Record content")
	recordAddCmd.Flags().StringVar(&addTTL, "ttl", "", "Record TTL, empty for the configured default")
	recordAddCmd.Flags().StringVar(&addPrio, "prio", "", "Record priority, empty for the type default")
	recordAddCmd.Flags().StringVar(&addComment, "comment", "", "Comment attached to the record and its counterpart")
	recordAddCmd.Flags().StringVar(&addAccount, "account", "", "Acting account recorded with the mutation")
	_ = recordAddCmd.MarkFlagRequired("zone")
	_ = recordAddCmd.MarkFlagRequired("type")
	_ = recordAddCmd.MarkFlagRequired("content")

	recordUpdateCmd.Flags().Uint64Var(&updID, "id", 0, "ID of the record to update")
	recordUpdateCmd.Flags().StringVar(&updName, "name", "", "New record name relative to the zone")
	recordUpdateCmd.Flags().StringVar(&updType, "type", "", "New record type")
	recordUpdateCmd.Flags().StringVar(&updContent, "content", "", "New record content")
	recordUpdateCmd.Flags().StringVar(&updTTL, "ttl", "", "New record TTL, empty for the configured default")
	recordUpdateCmd.Flags().StringVar(&updPrio, "prio", "", "New record priority, empty for the type default")
	recordUpdateCmd.Flags().StringVar(&updComment, "comment", "", "New comment text")
	recordUpdateCmd.Flags().StringVar(&updAccount, "account", "", "Acting account recorded with the mutation")
	_ = recordUpdateCmd.MarkFlagRequired("id")
	_ = recordUpdateCmd.MarkFlagRequired("type")
	_ = recordUpdateCmd.MarkFlagRequired("content")

	recordDeleteCmd.Flags().Uint64Var(&delID, "id", 0, "ID of the record to delete")
	recordDeleteCmd.Flags().StringVar(&delAccount, "account", "", "Acting account recorded with the mutation")
	_ = recordDeleteCmd.MarkFlagRequired("id")

	recordListCmd.Flags().StringVar(&listZone, "zone", "", "Zone to list")
	_ = recordListCmd.MarkFlagRequired("zone")

	recordCmd.AddCommand(recordAddCmd, recordUpdateCmd, recordDeleteCmd, recordListCmd)
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage records in the PowerDNS database",
}

var (
	addZone    string
	addName    string
	addType    string
	addContent string
	addTTL     string
	addPrio    string
	addComment string
	addAccount string

	recordAddCmd = &cobra.Command{
		Use:    "add",
		Short:  "Validate and add a record to a zone",
		PreRun: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := engine.New(&cfg)
			if err != nil {
				return err
			}

			zone, err := domain.GetByName(eng.DB, addZone)
			if err != nil {
				return err //nolint: wrapcheck
			}

			ok := eng.Manager.CreateRecord(context.Background(), records.CreateInput{
				ZoneID:  zone.ID,
				Name:    addName,
				Type:    addType,
				Content: addContent,
				TTL:     addTTL,
				Prio:    addPrio,
				Comment: addComment,
				Account: addAccount,
			})
			if !ok {
				return errMutationFailed
			}

			fmt.Println("record added")

			return nil
		},
	}
)

var (
	updID      uint64
	updName    string
	updType    string
	updContent string
	updTTL     string
	updPrio    string
	updComment string
	updAccount string

	recordUpdateCmd = &cobra.Command{
		Use:    "update",
		Short:  "Validate and rewrite an existing record",
		PreRun: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := engine.New(&cfg)
			if err != nil {
				return err
			}

			ok := eng.Manager.UpdateRecord(context.Background(), records.UpdateInput{
				RecordID: updID,
				Name:     updName,
				Type:     updType,
				Content:  updContent,
				TTL:      updTTL,
				Prio:     updPrio,
				Comment:  updComment,
				Account:  updAccount,
			})
			if !ok {
				return errMutationFailed
			}

			fmt.Println("record updated")

			return nil
		},
	}
)

var (
	delID      uint64
	delAccount string

	recordDeleteCmd = &cobra.Command{
		Use:    "delete",
		Short:  "Delete a record and its comments",
		PreRun: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := engine.New(&cfg)
			if err != nil {
				return err
			}

			ok := eng.Manager.DeleteRecord(context.Background(), records.DeleteInput{
				RecordID: delID,
				Account:  delAccount,
			})
			if !ok {
				return errMutationFailed
			}

			fmt.Println("record deleted")

			return nil
		},
	}
)

var (
	listZone string

	recordListCmd = &cobra.Command{
		Use:    "list",
		Short:  "List the records of a zone",
		PreRun: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := engine.New(&cfg)
			if err != nil {
				return err
			}

			zone, err := domain.GetByName(eng.DB, listZone)
			if err != nil {
				return err //nolint: wrapcheck
			}

			recs, err := record.ListByDomain(eng.DB, zone.ID)
			if err != nil {
				return err //nolint: wrapcheck
			}

			fmt.Printf("%-10s %-40s %-6s %-40s %7s %5s\n", "ID", "NAME", "TYPE", "CONTENT", "TTL", "PRIO")

			for _, r := range recs {
				fmt.Printf("%-10d %-40s %-6s %-40s %7d %5d\n", r.ID, r.Name, r.Type, r.Content, r.TTL, r.Prio)
			}

			return nil
		},
	}
)
