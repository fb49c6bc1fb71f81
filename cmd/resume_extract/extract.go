package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/db"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/response"
	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/source"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured resume record from a document",
	Long: `Reads a resume (segments JSON, plain text, HTML, PDF, DOCX, DOC, ODT or RTF), classifies and extracts every segment, and writes the schema-validated response JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values, which override environment variables.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExtract(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), extractOpts)
	},
}

type extractOptions struct {
	commonFlags
	in    string
	out   string
	reuse bool
}

var extractOpts extractOptions

func init() {
	extractCmd.Flags().StringVarP(&extractOpts.in, "in", "i", "", "Path to the resume document")
	extractCmd.Flags().StringVarP(&extractOpts.out, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	extractCmd.Flags().StringVar(&extractOpts.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	extractCmd.Flags().IntVar(&extractOpts.parallelism, "parallel", 0, "Concurrent segment extractions (0 = sequential)")
	extractCmd.Flags().BoolVar(&extractOpts.reuse, "reuse", false, "Return the stored record when the same document was already extracted")
	extractOpts.register(extractCmd.Flags())
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(ctx context.Context, stdout, stderr io.Writer, opts extractOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.in == "" {
		return fmt.Errorf("--in is required")
	}

	rt, err := newRuntime(opts.commonFlags)
	if err != nil {
		return err
	}
	defer rt.close()

	doc, err := source.FromDocument(ctx, opts.in)
	if err != nil {
		if writeErr := writeResponse(stdout, opts.out, response.Failure("", err)); writeErr != nil {
			return writeErr
		}
		return fmt.Errorf("failed to read document: %w", err)
	}
	rt.logger.Info().
		Str("document", doc.Name).
		Str("format", doc.Format).
		Int("segments", len(doc.Segments)).
		Msg("document segmented")

	var database *db.DB
	if rt.cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, rt.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database: %w", err)
		}
		if opts.reuse {
			existing, err := database.FindByFingerprint(ctx, doc.Fingerprint)
			if err != nil {
				return fmt.Errorf("failed to look up document: %w", err)
			}
			if existing != nil && existing.Record != nil {
				rt.logger.Info().Str("extraction_id", existing.ID.String()).Msg("reusing stored extraction")
				return writeResponse(stdout, opts.out, response.Success(existing.ID.String(), existing.Record))
			}
		}
	}

	var events []pipeline.ProgressEvent
	onProgress := func(e pipeline.ProgressEvent) {
		events = append(events, e)
		if rt.cfg.Verbose {
			_, _ = fmt.Fprintf(stderr, "[%s] %s\n", e.Step, e.Message)
		}
	}
	p, err := rt.pipeline(onProgress)
	if err != nil {
		return err
	}

	input := &db.ExtractionInput{
		DocumentName: doc.Name,
		Format:       doc.Format,
		Fingerprint:  doc.Fingerprint,
		Backend:      rt.registry.Backend(),
	}

	res, err := p.RunDetailed(ctx, doc.Segments)
	if err != nil {
		if database != nil {
			recordFailure(ctx, database, input, err)
		}
		if writeErr := writeResponse(stdout, opts.out, response.Failure("", err)); writeErr != nil {
			return writeErr
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	resp := response.Success(res.RunID.String(), res.Record)
	if err := resp.Validate(); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	if database != nil {
		input.ID = res.RunID
		id, err := database.SaveExtraction(ctx, input, res.Record, res.Segments, res.Duration)
		if err != nil {
			return fmt.Errorf("failed to save extraction: %w", err)
		}
		for _, e := range events {
			if err := database.RecordStep(ctx, id, e.Step, e.Category, e.Message); err != nil {
				rt.logger.Warn().Err(err).Str("step", e.Step).Msg("failed to record step")
				break
			}
		}
	}

	if rt.cfg.Verbose {
		printer := observability.NewPrinter(stderr)
		printer.PrintSegments(res.Segments)
		printer.PrintRecord(res.Record)
		printer.PrintFailures(res.Segments)
	}

	return writeResponse(stdout, opts.out, resp)
}

func recordFailure(ctx context.Context, database *db.DB, input *db.ExtractionInput, cause error) {
	// The run context may be the cancelled one.
	ctx = context.WithoutCancel(ctx)
	id, err := database.CreateExtraction(ctx, input)
	if err != nil || id == uuid.Nil {
		return
	}
	_ = database.FailExtraction(ctx, id, response.Code(cause), cause.Error())
}

func writeResponse(stdout io.Writer, path string, resp *response.Response) error {
	data, err := resp.JSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
