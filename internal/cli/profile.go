package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile and check-in commands",
	}

	cmd.AddCommand(newProfileGetCmd())
	cmd.AddCommand(newProfileCheckInCmd())
	cmd.AddCommand(newProfileSetNameCmd())
	cmd.AddCommand(newProfileSetAvatarCmd())
	cmd.AddCommand(newProfileResetCmd())

	return cmd
}

func profilePath() string {
	return fmt.Sprintf("/api/v1/profiles/%s", cfg.ProfileID)
}

func newProfileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the profile with points, level, and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Get(profilePath(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileCheckInCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "checkin <venue-id>",
		Short: "Check in at a venue (must be within 50m)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"venue_id":  args[0],
				"latitude":  lat,
				"longitude": lon,
			}

			var result Profile
			if err := client.Post(profilePath()+"/check-ins", body, &result); err != nil {
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

func newProfileSetNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-name <name>",
		Short: "Change the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Patch(profilePath(), map[string]string{"name": args[0]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileSetAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-avatar <avatar>",
		Short: "Change the avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Patch(profilePath(), map[string]string{"avatar": args[0]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the profile to a fresh default",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Delete(profilePath(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
