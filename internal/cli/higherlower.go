package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHigherLowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hl",
		Short: "Higher-lower game commands",
	}

	cmd.AddCommand(newHLNewCmd())
	cmd.AddCommand(newHLGetCmd())
	cmd.AddCommand(newHLBetCmd())
	cmd.AddCommand(newHLAdvanceCmd())
	cmd.AddCommand(newHLNewRoundCmd())

	return cmd
}

func hlPath(id string) string {
	return fmt.Sprintf("/api/v1/higher-lower/%s", id)
}

func newHLNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <player>...",
		Short: "Start a new game with the given players",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HigherLower

			if err := client.Post("/api/v1/higher-lower", map[string]any{"players": args}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHLGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show the game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HigherLower

			if err := client.Get(hlPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHLBetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bet <game-id> <higher|lower>",
		Short: "Place the current player's bet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HigherLower

			if err := client.Post(hlPath(args[0])+"/bet", map[string]string{"direction": args[1]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHLAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <game-id>",
		Short: "Move on to the next turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HigherLower

			if err := client.Post(hlPath(args[0])+"/advance", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHLNewRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-round <game-id>",
		Short: "Reshuffle a full deck for the same players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HigherLower

			if err := client.Post(hlPath(args[0])+"/new-round", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
