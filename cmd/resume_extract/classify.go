package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/classify"
	"github.com/jonathan/resume-extractor/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print the section label of a text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runClassify(cmd.Context(), cmd.OutOrStdout(), classifyOpts)
	},
}

type classifyOptions struct {
	commonFlags
	text string
}

var classifyOpts classifyOptions

func init() {
	classifyCmd.Flags().StringVarP(&classifyOpts.text, "text", "t", "", "Text to classify")
	classifyOpts.register(classifyCmd.Flags())
	_ = classifyCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(ctx context.Context, stdout io.Writer, opts classifyOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := newRuntime(opts.commonFlags)
	if err != nil {
		return err
	}
	defer rt.close()

	c := classify.New(rt.registry, rt.profile, rt.logger)
	res, err := c.Classify(ctx, types.Segment{ID: "cli", Text: opts.text})
	switch {
	case errors.Is(err, classify.ErrNoUsableLabel):
		_, err = fmt.Fprintln(stdout, "unclassified")
		return err
	case err != nil:
		return fmt.Errorf("failed to classify text: %w", err)
	case res.Skipped:
		_, err = fmt.Fprintln(stdout, "skipped (blank text)")
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\t%.2f\t%s\n", res.Label, res.Score, res.Source)
	return err
}
