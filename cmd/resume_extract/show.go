package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/db"
	"github.com/jonathan/resume-extractor/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a stored extraction",
	Long:  "Loads an extraction by id from PostgreSQL, or lists recent extractions when no id is given.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShow(cmd.Context(), cmd.OutOrStdout(), showOpts)
	},
}

type showOptions struct {
	id          string
	databaseURL string
	status      string
	limit       int
	segments    bool
	verbose     bool
}

var showOpts showOptions

func init() {
	showCmd.Flags().StringVar(&showOpts.id, "id", "", "Extraction id")
	showCmd.Flags().StringVar(&showOpts.databaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	showCmd.Flags().StringVar(&showOpts.status, "status", "", "Only list extractions with this status")
	showCmd.Flags().IntVar(&showOpts.limit, "limit", 20, "Maximum extractions to list")
	showCmd.Flags().BoolVar(&showOpts.segments, "segments", false, "Include stored segment results and steps")
	showCmd.Flags().BoolVarP(&showOpts.verbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")

	rootCmd.AddCommand(showCmd)
}

// storedExtraction is the JSON view printed by show.
type storedExtraction struct {
	*db.Extraction
	Segments []db.SegmentRow `json:"segments,omitempty"`
	Steps    []db.StepRow    `json:"steps,omitempty"`
}

func runShow(ctx context.Context, stdout io.Writer, opts showOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var id uuid.UUID
	if opts.id != "" {
		parsed, err := uuid.Parse(opts.id)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		id = parsed
	}

	databaseURL := opts.databaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if id == uuid.Nil {
		list, err := database.ListExtractions(ctx, db.ExtractionFilters{Status: opts.status, Limit: opts.limit})
		if err != nil {
			return fmt.Errorf("failed to list extractions: %w", err)
		}
		for _, e := range list {
			_, _ = fmt.Fprintf(stdout, "%s  %-9s  %-6s  %s\n", e.ID, e.Status, e.Format, e.DocumentName)
		}
		return nil
	}

	extraction, err := database.GetExtraction(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get extraction: %w", err)
	}
	if extraction == nil {
		return fmt.Errorf("extraction not found: %s", id)
	}

	view := storedExtraction{Extraction: extraction}
	if opts.segments {
		if view.Segments, err = database.ListSegmentResults(ctx, id); err != nil {
			return fmt.Errorf("failed to list segment results: %w", err)
		}
		if view.Steps, err = database.ListSteps(ctx, id); err != nil {
			return fmt.Errorf("failed to list steps: %w", err)
		}
	}

	if opts.verbose {
		printExtraction(stdout, view)
		return nil
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

func printExtraction(out io.Writer, view storedExtraction) {
	_, _ = fmt.Fprintf(out, "Extraction %s (%s, %s)\n", view.ID, view.Status, view.Backend)
	_, _ = fmt.Fprintf(out, "Document: %s [%s]\n", view.DocumentName, view.Format)
	if view.ErrorCode != nil {
		msg := ""
		if view.ErrorMessage != nil {
			msg = *view.ErrorMessage
		}
		_, _ = fmt.Fprintf(out, "Error: %s: %s\n", *view.ErrorCode, msg)
	}
	printer := observability.NewPrinter(out)
	printer.PrintRecord(view.Record)
	for _, s := range view.Steps {
		_, _ = fmt.Fprintf(out, "%s  [%s] %s\n", s.CreatedAt.Format("15:04:05.000"), s.Step, s.Message)
	}
}
