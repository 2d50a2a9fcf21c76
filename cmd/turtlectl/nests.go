package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	nestsCmd := &cobra.Command{Use: "nests", Short: "Nest declaration operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List declared nests",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkStatus(newClient().R().Get("/api/nests"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	nestsCmd.AddCommand(listCmd)

	// declare
	var beachID, hatchDate, notes string
	var count int
	declareCmd := &cobra.Command{
		Use:   "declare",
		Short: "Declare a nest (requires a volunteer or admin session)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"beachId":     beachID,
				"turtleCount": count,
				"hatchDate":   hatchDate,
			}
			if notes != "" {
				payload["notes"] = notes
			}
			resp, err := checkStatus(newClient().R().SetBody(payload).Post("/api/nests"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	declareCmd.Flags().StringVarP(&beachID, "beach", "b", "", "Beach ID (required)")
	declareCmd.Flags().IntVarP(&count, "count", "c", 0, "Egg/turtle count, 1-500 (required)")
	declareCmd.Flags().StringVar(&hatchDate, "hatch-date", "", "Expected hatch date (required)")
	declareCmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	_ = declareCmd.MarkFlagRequired("beach")
	_ = declareCmd.MarkFlagRequired("count")
	_ = declareCmd.MarkFlagRequired("hatch-date")
	nestsCmd.AddCommand(declareCmd)

	// status
	statusCmd := &cobra.Command{
		Use:   "status NEST_ID STATUS",
		Short: "Set a nest status (active|hatched|failed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"status": args[1]}
			resp, err := checkStatus(newClient().R().SetBody(payload).Patch("/api/nests/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	nestsCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(nestsCmd)
}
