package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "barquest",
		Short: "CLI tool for the barquest API",
		Long: `barquest is a CLI tool for interacting with the barquest JSON API.

It covers venue discovery, check-ins and profile progression, and the
party games: lowest card, higher-lower, spin the bottle, and truth or dare.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: BARQUEST_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.ProfileID, "profile", cfg.ProfileID, "Profile ID (env: BARQUEST_PROFILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	rootCmd.AddCommand(newVenuesCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newCardCmd())
	rootCmd.AddCommand(newHigherLowerCmd())
	rootCmd.AddCommand(newPartyCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
