package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	beachesCmd := &cobra.Command{Use: "beaches", Short: "Beach catalog operations"}

	var listQuery, listThreat string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List monitored beaches",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := newClient().R()
			if listQuery != "" {
				req.SetQueryParam("query", listQuery)
			}
			if listThreat != "" {
				req.SetQueryParam("threat", listThreat)
			}
			resp, err := checkStatus(req.Get("/api/beaches"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Match name or country, case-insensitive")
	listCmd.Flags().StringVar(&listThreat, "threat", "", "Filter by threat level (\"all\" matches everything)")
	beachesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get BEACH_ID",
		Short: "Get a beach by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkStatus(newClient().R().Get("/api/beaches/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	beachesCmd.AddCommand(getCmd)

	var name, country, threat string
	var lat, lng float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a beach (requires an admin session)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"name":        name,
				"country":     country,
				"threatLevel": threat,
				"location":    map[string]float64{"lat": lat, "lng": lng},
			}
			resp, err := checkStatus(newClient().R().SetBody(payload).Post("/api/beaches"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Beach name (required)")
	addCmd.Flags().StringVarP(&country, "country", "c", "", "Country (required)")
	addCmd.Flags().StringVar(&threat, "threat", "low", "Threat level")
	addCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	addCmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("country")
	beachesCmd.AddCommand(addCmd)

	rootCmd.AddCommand(beachesCmd)
}
