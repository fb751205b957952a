package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpresize/internal/pipeline"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <factor> <input> <output>",
	Short: "Resize a 24-bit BMP by a scale factor",
	Long: `Resize a 24-bit BMP by a scale factor.

The factor may be any arithmetic expression such as 2, 0.5 or 3/2. Pixels are
replicated or dropped, never interpolated. --y-factor scales the height
independently of the width.`,
	Args: cobra.ExactArgs(3),
	RunE: runResize,
}

func init() {
	resizeCmd.Flags().String("y-factor", "", "Vertical scale factor (default: same as factor)")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	factorExpr, inputPath, outputPath := args[0], args[1], args[2]
	yFactorExpr, _ := cmd.Flags().GetString("y-factor")

	opts, err := resizeOptions(factorExpr, yFactorExpr)
	if err != nil {
		return err
	}

	result, err := pipeline.RunFile(inputPath, outputPath, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Resized %dx%d → %dx%d\n", result.In.Width, result.In.Rows(), result.Out.Width, result.Out.Rows())
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, result.Size)
	return nil
}
