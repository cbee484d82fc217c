package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Lowest-card-loses game commands",
	}

	cmd.AddCommand(newCardNewCmd())
	cmd.AddCommand(newCardGetCmd())
	cmd.AddCommand(newCardAddPlayerCmd())
	cmd.AddCommand(newCardRemovePlayerCmd())
	cmd.AddCommand(newCardDealCmd())
	cmd.AddCommand(newCardRevealCmd())
	cmd.AddCommand(newCardAgainCmd())
	cmd.AddCommand(newCardResetCmd())

	return cmd
}

func cardPath(id string) string {
	return fmt.Sprintf("/api/v1/card-games/%s", id)
}

// cardAction builds the common pattern: POST an action on a game id and print
// the resulting session.
func cardAction(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CardGame

			if err := client.Post(cardPath(args[0])+action, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCardNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new card game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CardGame

			if err := client.Post("/api/v1/card-games", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCardGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show the game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CardGame

			if err := client.Get(cardPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCardAddPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <game-id> <name>",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CardGame

			if err := client.Post(cardPath(args[0])+"/players", map[string]string{"name": args[1]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCardRemovePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id> <player-id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CardGame

			if err := client.Delete(cardPath(args[0])+"/players/"+args[1], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCardDealCmd() *cobra.Command {
	return cardAction("deal <game-id>", "Shuffle and deal one card per player", "/deal")
}

func newCardRevealCmd() *cobra.Command {
	return cardAction("reveal <game-id>", "Reveal the next card", "/reveal")
}

func newCardAgainCmd() *cobra.Command {
	return cardAction("again <game-id>", "Re-deal for the same roster", "/play-again")
}

func newCardResetCmd() *cobra.Command {
	return cardAction("reset <game-id>", "Clear the session back to setup", "/reset")
}
