package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BasinLeon/lead-script-generator/internal/classify"
	"github.com/BasinLeon/lead-script-generator/internal/config"
	"github.com/BasinLeon/lead-script-generator/internal/loader"
	"github.com/BasinLeon/lead-script-generator/internal/log"
	"github.com/BasinLeon/lead-script-generator/internal/model"
	"github.com/BasinLeon/lead-script-generator/internal/pipeline"
	"github.com/BasinLeon/lead-script-generator/internal/render"
	"github.com/BasinLeon/lead-script-generator/internal/report"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <lead-file.csv>",
		Short: "Generate outreach scripts from a lead CSV",
		Long: `Generate reads a CSV of leads and produces a personalized email subject,
email body, and LinkedIn connection message for every lead.

Each lead is classified by title seniority (P1/P2/P3) and company type
(startup, mid-market, enterprise, agency). The classification selects the
message templates; lead fields, the sender identity, and a per-segment
pain point are substituted into them.

Column headers are matched case-insensitively and common aliases are
recognized (e.g. "First Name", "employee_count", "Organization"). Rows
missing a first name, company, or title are skipped and reported; use
--strict to abort on such rows instead.

Examples:
  # Human-readable preview to the terminal
  leadscript generate leads.csv

  # Export CSV with the script columns appended
  leadscript generate --csv -o scripts.csv leads.csv

  # JSON for tool integration
  leadscript generate --json leads.csv

  # Only the hottest leads, as a compact table
  leadscript generate --table --priority P1 leads.csv

  # Custom sender identity
  leadscript generate --sender "Jordan Reyes" --value-prop "sales automation" leads.csv

Configuration file (.leadscript) example:
  sender:
    name: Jordan Reyes
    valueProp: sales automation
  classifier:
    archetype:
      startupMaxEmployees: 80
  aliases:
    first_name: [vorname]`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerateCmd,
	}

	// Sender identity flags
	cmd.Flags().StringP("sender", "s", config.DefaultSenderName,
		"Sender name used in email sign-offs")
	cmd.Flags().String("value-prop", config.DefaultValueProp,
		"Value proposition woven into the generated copy")

	// Input handling flags
	cmd.Flags().Bool("strict", false,
		"Abort when a row is missing required fields instead of skipping it")
	cmd.Flags().StringP("priority", "p", "",
		"Only output leads in the given tier (P1, P2, or P3)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .leadscript in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with other format flags)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with other format flags)")
	cmd.Flags().Bool("table", false,
		"Output a compact summary table (mutually exclusive with other format flags)")
	cmd.Flags().Bool("csv", false,
		"Output CSV with script columns appended (mutually exclusive with other format flags)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with contact-detail masking
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGenerate(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence, lowest to highest: built-in defaults,
// config file, flags the user actually set.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the configuration file before applying flags so explicit flags
	// win over file values.
	// If the user explicitly specified a config file path, error if not
	// found. If no path was specified, silently proceed without one.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("sender") {
		cfg.SenderName, err = cmd.Flags().GetString("sender")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("value-prop") {
		cfg.ValueProp, err = cmd.Flags().GetString("value-prop")
		if err != nil {
			return nil, err
		}
	}

	cfg.Strict, err = cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, err
	}

	cfg.PriorityFilter, err = cmd.Flags().GetString("priority")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.TableReport, err = cmd.Flags().GetBool("table")
	if err != nil {
		return nil, err
	}

	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Writing to a .csv file implies the CSV format unless the user asked
	// for something else.
	if cfg.OutputFile != "" && !cfg.JSONReport && !cfg.MarkdownReport && !cfg.TableReport {
		if strings.EqualFold(filepath.Ext(cfg.OutputFile), ".csv") {
			cfg.CSVReport = true
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runGenerate loads the leads, runs the processing pipeline, and writes
// the report.
func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting run",
		"input", cfg.InputPath,
		"strict", cfg.Strict,
		"sender", cfg.SenderName,
	)

	ld := loader.New(
		loader.WithExtraAliases(cfg.ExtraAliases),
		loader.WithStrict(cfg.Strict),
		loader.WithLogger(logger),
	)

	startTime := time.Now()

	run, err := ld.LoadFile(cfg.InputPath)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewClassifyStep(classify.New(cfg.Rules)),
		pipeline.NewRenderStep(render.New(cfg.SenderName, cfg.ValueProp,
			render.WithProfiles(cfg.Profiles))),
	)

	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	if cfg.PriorityFilter != "" {
		tier, err := model.ParsePriority(cfg.PriorityFilter)
		if err != nil {
			return err
		}
		run = run.FilterByPriority(tier)
	}

	elapsed := time.Since(startTime)
	logger.Info("run completed",
		"leads", run.TotalLeads(),
		"failed", run.FailedCount(),
		"skipped", len(run.Skipped),
		"elapsed", elapsed.Round(time.Millisecond),
	)

	return outputReport(cmd, cfg, run)
}

// outputReport writes the run report in the requested format.
func outputReport(cmd *cobra.Command, cfg *config.Config, run *model.RunReport) error {
	var output *os.File
	if cfg.OutputFile != "" {
		dir := filepath.Dir(cfg.OutputFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Lead exports carry contact details, so the file is owner-only.
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	case cfg.TableReport:
		writer = report.NewTableWriter(output)
	case cfg.CSVReport:
		writer = report.NewCSVWriter(output)
	default:
		writer = report.NewTextWriter(output, report.WithVerbose(cfg.Verbose))
	}

	if _, err := writer.Write(run); err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.OutputFile)
	}

	return nil
}
