package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/types"
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Classify and extract a single text segment",
	Long:  "Runs the per-segment stage on one piece of text and prints the segment result with every candidate it produced.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSegment(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), segmentOpts)
	},
}

type segmentOptions struct {
	commonFlags
	text  string
	label string
}

var segmentOpts segmentOptions

func init() {
	segmentCmd.Flags().StringVarP(&segmentOpts.text, "text", "t", "", "Segment text")
	segmentCmd.Flags().StringVarP(&segmentOpts.label, "label", "l", "", "Approximate label from the layout source")
	segmentOpts.register(segmentCmd.Flags())
	_ = segmentCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(segmentCmd)
}

func runSegment(ctx context.Context, stdout, stderr io.Writer, opts segmentOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := newRuntime(opts.commonFlags)
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := rt.pipeline(nil)
	if err != nil {
		return err
	}
	res := p.RunSegment(ctx, types.Segment{Label: opts.label, Text: opts.text})

	if rt.cfg.Verbose {
		printer := observability.NewPrinter(stderr)
		printer.PrintSegments([]*types.SegmentResult{res})
		printer.PrintFailures([]*types.SegmentResult{res})
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
