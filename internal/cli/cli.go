package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bkraemer/tde-import/internal/fetch"
	"github.com/bkraemer/tde-import/internal/logger"
	"github.com/bkraemer/tde-import/internal/tde"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL     string
	flagFormat  string
	flagOutput  string
	flagTimeout time.Duration
	flagRetries uint64
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tde-import",
		Short: "Import a team match from turnier.de / tournamentsoftware.com",
		Long: `Fetches a team match page plus both teams' roster pages and prints the
normalized match record as JSON, either bare or wrapped in the export
envelope the scoring frontend accepts.`,
		RunE: runImport,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", "", "Team match page URL (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "raw", "Output format: raw or export")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Write JSON to this file instead of stdout")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", fetch.DefaultTimeout, "Per-request network timeout")
	cmd.Flags().Uint64Var(&flagRetries, "retries", 0, "Fetch retries with exponential backoff")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("url")

	return cmd
}

// runImport is the main command logic
func runImport(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatRaw && format != FormatExport {
		return fmt.Errorf("invalid format: %s (must be 'raw' or 'export')", flagFormat)
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	client := fetch.New(
		fetch.WithTimeout(flagTimeout),
		fetch.WithRetries(flagRetries),
	)
	importer := tde.NewImporter(client)

	rec, err := importer.Import(cmd.Context(), flagURL)
	if err != nil {
		return fmt.Errorf("importing team match: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := WriteDocument(out, rec, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
