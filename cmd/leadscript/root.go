// Package main provides the entry point for the leadscript CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for leadscript.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leadscript",
		Short: "Generate personalized outreach scripts from a lead CSV",
		Long: `leadscript reads a CSV of sales leads and generates a personalized email
subject, email body, and LinkedIn connection message for every lead.

Leads are prioritized by title seniority (P1/P2/P3) and segmented by
company type (startup, mid-market, enterprise, agency), and each segment
gets its own message templates.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
