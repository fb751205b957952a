package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpresize/internal/bmp"
	"github.com/davesmith10/bmpresize/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic 24-bit BMP test image",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Output BMP file")
	generateCmd.Flags().Int("width", 0, "Image width")
	generateCmd.Flags().Int("height", 0, "Image height")
	generateCmd.Flags().String("pattern", "solid", "Pattern ("+strings.Join(bmp.Patterns, ", ")+")")
	generateCmd.Flags().String("color", "ff0000", "RRGGBB colour for solid and checker patterns")
	generateCmd.Flags().Bool("top-down", false, "Store rows top-down (negative height)")
	generateCmd.MarkFlagRequired("output")
	generateCmd.MarkFlagRequired("width")
	generateCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	pattern, _ := cmd.Flags().GetString("pattern")
	colorStr, _ := cmd.Flags().GetString("color")
	topDown, _ := cmd.Flags().GetBool("top-down")

	color, err := parseColor(colorStr)
	if err != nil {
		return err
	}

	img, err := bmp.Synthesize(pattern, width, height, color)
	if err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrArgument, err)
	}
	img.TopDown = topDown

	f, err := os.Create(outputPath)
	if err != nil {
		return &pipeline.IOError{Op: "create", Path: outputPath, Err: err}
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		os.Remove(outputPath)
		return &pipeline.IOError{Op: "write", Path: outputPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return &pipeline.IOError{Op: "write", Path: outputPath, Err: err}
	}

	logger.WithField("output", outputPath).Debug("Generated image")
	fmt.Printf("Generated %dx%d %s → %s (%d bytes)\n", width, height, pattern, outputPath,
		bmp.HeadersSize+bmp.ImageSize(width, height))
	return nil
}

// parseColor parses an RRGGBB hex string, with or without a leading '#'.
func parseColor(s string) (bmp.Triple, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(b) != 3 {
		return bmp.Triple{}, fmt.Errorf("%w: colour %q is not RRGGBB", pipeline.ErrArgument, s)
	}
	return bmp.Triple{R: b[0], G: b[1], B: b[2]}, nil
}
