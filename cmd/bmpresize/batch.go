package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davesmith10/bmpresize/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <factor> <input>...",
	Short: "Resize several BMPs into an output directory",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringP("out-dir", "o", "", "Output directory")
	batchCmd.Flags().String("y-factor", "", "Vertical scale factor (default: same as factor)")
	batchCmd.Flags().Int("workers", 0, "Files resized concurrently (default from config)")
	batchCmd.MarkFlagRequired("out-dir")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	yFactorExpr, _ := cmd.Flags().GetString("y-factor")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = cfg.Workers
	}

	opts, err := resizeOptions(args[0], yFactorExpr)
	if err != nil {
		return err
	}
	inputs := args[1:]

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return &pipeline.IOError{Op: "create", Path: outDir, Err: err}
	}
	if err := checkDistinctOutputs(inputs); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, in := range inputs {
		out := filepath.Join(outDir, filepath.Base(in))
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			fileOpts := opts
			fileOpts.Logger = logger.WithField("input", in)
			res, err := pipeline.RunFile(in, out, fileOpts)
			if err != nil {
				return err
			}
			fmt.Printf("%s → %s (%dx%d)\n", in, out, res.Out.Width, res.Out.Rows())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"files":   len(inputs),
		"workers": workers,
		"out_dir": outDir,
	}).Info("Batch complete")
	return nil
}

// checkDistinctOutputs rejects inputs that would be written to the same
// output name.
func checkDistinctOutputs(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		base := filepath.Base(in)
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("%w: %s and %s both map to output %s", pipeline.ErrArgument, prev, in, base)
		}
		seen[base] = in
	}
	return nil
}
