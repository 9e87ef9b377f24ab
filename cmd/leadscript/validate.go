package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/BasinLeon/lead-script-generator/internal/config"
	"github.com/BasinLeon/lead-script-generator/internal/loader"
	"github.com/BasinLeon/lead-script-generator/internal/log"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <lead-file.csv>",
		Short: "Check a lead CSV without generating scripts",
		Long: `Validate performs a dry run over a lead CSV: it resolves the column
headers against the known aliases, parses every row, and reports what a
generate run would process.

The exit code is non-zero when a required column (company or title, plus
a first name or combined name column) cannot be resolved, so it can gate
a CI step or a batch job.

Examples:
  # Check the file and show the resolved columns
  leadscript validate leads.csv

  # With extra aliases from a config file
  leadscript validate -c .leadscript leads.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runValidateCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .leadscript in current or home directory)")

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.InputPath = args[0]

	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configPath := config.FindConfigFile(configFilePath); configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if configFilePath != "" {
		return fmt.Errorf("configuration file not found: %s", configFilePath)
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ld := loader.New(
		loader.WithExtraAliases(cfg.ExtraAliases),
		loader.WithLogger(logger),
	)

	run, err := ld.LoadFile(cfg.InputPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: OK\n\n", cfg.InputPath)

	printResolvedColumns(out, cfg, run.SourceHeader)

	fmt.Fprintf(out, "Rows:         %d\n", run.TotalLeads()+len(run.Skipped))
	fmt.Fprintf(out, "Usable leads: %d\n", run.TotalLeads())
	fmt.Fprintf(out, "Skipped rows: %d\n", len(run.Skipped))

	for _, skipped := range run.Skipped {
		fmt.Fprintf(out, "  row %d: %s\n", skipped.Row, skipped.Reason)
	}

	return nil
}

// printResolvedColumns shows which canonical field each input header maps to.
func printResolvedColumns(out io.Writer, cfg *config.Config, header []string) {
	resolver := loader.NewResolver(cfg.ExtraAliases)
	columns, err := resolver.Resolve(header)
	if err != nil {
		// LoadFile already succeeded, so this should not happen; show the
		// raw header as a fallback.
		fmt.Fprintf(out, "Header: %v\n\n", header)
		return
	}

	canonicals := make([]string, 0, len(columns))
	for canonical := range columns {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	fmt.Fprintln(out, "Resolved columns:")
	for _, canonical := range canonicals {
		idx := columns[canonical]
		source := ""
		if idx >= 0 && idx < len(header) {
			source = header[idx]
		}
		fmt.Fprintf(out, "  %-12s <- %q (column %d)\n", canonical, source, idx+1)
	}
	fmt.Fprintln(out)
}
