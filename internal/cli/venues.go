package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVenuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Venue commands",
	}

	cmd.AddCommand(newVenuesListCmd())
	cmd.AddCommand(newVenuesGetCmd())

	return cmd
}

// coordinateFlags adds the --lat/--lon flags shared by every location-aware command
func coordinateFlags(cmd *cobra.Command, lat, lon *float64) {
	cmd.Flags().Float64Var(lat, "lat", 0, "Your latitude")
	cmd.Flags().Float64Var(lon, "lon", 0, "Your longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
}

func newVenuesListCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues sorted by distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []NearbyVenue

			path := fmt.Sprintf("/api/v1/venues?lat=%f&lon=%f", lat, lon)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
	coordinateFlags(cmd, &lat, &lon)
	return cmd
}

func newVenuesGetCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "get <venue-id>",
		Short: "Show one venue with its distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NearbyVenue

			path := fmt.Sprintf("/api/v1/venues/%s?lat=%f&lon=%f", args[0], lat, lon)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
	coordinateFlags(cmd, &lat, &lon)
	return cmd
}
