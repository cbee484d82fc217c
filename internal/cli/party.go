package cli

import (
	"github.com/spf13/cobra"
)

func newPartyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Spin-the-bottle and truth-or-dare commands",
	}

	cmd.AddCommand(newPartySpinCmd())
	cmd.AddCommand(newPartyPromptCmd())

	return cmd
}

func newPartySpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin <player>...",
		Short: "Spin the bottle",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SpinResult

			if err := client.Post("/api/v1/party/spin", map[string]any{"players": args}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPartyPromptCmd() *cobra.Command {
	var promptType string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Draw a truth-or-dare prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Prompt

			body := map[string]string{"type": promptType}
			if err := client.Post("/api/v1/party/prompt", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&promptType, "type", "t", "", "Prompt type: truth, dare (random if omitted)")
	return cmd
}
