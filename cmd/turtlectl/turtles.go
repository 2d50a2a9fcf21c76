package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	turtlesCmd := &cobra.Command{Use: "turtles", Short: "Turtle catalog operations"}

	var listQuery, listStatus, listSpecies string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked turtles",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := newClient().R()
			if listQuery != "" {
				req.SetQueryParam("query", listQuery)
			}
			if listStatus != "" {
				req.SetQueryParam("status", listStatus)
			}
			if listSpecies != "" {
				req.SetQueryParam("species", listSpecies)
			}
			resp, err := checkStatus(req.Get("/api/turtles"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Match name or species, case-insensitive")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by lifecycle status (\"all\" matches everything)")
	listCmd.Flags().StringVar(&listSpecies, "species", "", "Filter by species")
	turtlesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get TURTLE_ID",
		Short: "Get a turtle by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkStatus(newClient().R().Get("/api/turtles/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	turtlesCmd.AddCommand(getCmd)

	// add
	var name, species, status, healthStatus, threat string
	var lat, lng float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a turtle (requires an admin session)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"name":         name,
				"species":      species,
				"status":       status,
				"healthStatus": healthStatus,
				"threatLevel":  threat,
				"location":     map[string]float64{"lat": lat, "lng": lng},
			}
			resp, err := checkStatus(newClient().R().SetBody(payload).Post("/api/turtles"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	addCmd.Flags().StringVarP(&species, "species", "s", "", "Species (required)")
	addCmd.Flags().StringVar(&status, "status", "active", "Lifecycle status")
	addCmd.Flags().StringVar(&healthStatus, "health", "good", "Health status")
	addCmd.Flags().StringVar(&threat, "threat", "low", "Threat level")
	addCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	addCmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("species")
	turtlesCmd.AddCommand(addCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete TURTLE_ID",
		Short: "Delete a turtle (requires an admin session)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkStatus(newClient().R().Delete("/api/turtles/" + args[0]))
			return err
		},
	}
	turtlesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(turtlesCmd)
}
