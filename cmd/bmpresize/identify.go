package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpresize/internal/bmp"
	"github.com/davesmith10/bmpresize/internal/pipeline"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect BMP header info",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Bool("decode", false, "Also decode the file with golang.org/x/image/bmp")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	decode, _ := cmd.Flags().GetBool("decode")

	data, err := os.ReadFile(path)
	if err != nil {
		return &pipeline.IOError{Op: "open", Path: path, Err: err}
	}

	info, err := bmp.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	order := "bottom-up"
	if info.TopDown {
		order = "top-down"
	}
	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Signature:   0x%04x\n", info.File.Type)
	fmt.Printf("File size:   %d bytes (header says %d)\n", len(data), info.File.Size)
	fmt.Printf("Data offset: %d\n", info.File.OffBits)
	fmt.Printf("Header size: %d\n", info.Info.Size)
	fmt.Printf("Dimensions:  %d x %d (%s)\n", info.Width, info.Height, order)
	fmt.Printf("Bit count:   %d\n", info.Info.BitCount)
	fmt.Printf("Compression: %d\n", info.Info.Compression)
	fmt.Printf("Image size:  %d\n", info.Info.SizeImage)
	fmt.Printf("Row padding: %d bytes (stride %d)\n", info.Padding, info.Stride)
	fmt.Printf("Resolution:  %d x %d px/m\n", info.Info.XPixelsPerM, info.Info.YPixelsPerM)

	if info.Unsupported != nil {
		fmt.Printf("Supported:   no (%v)\n", info.Unsupported)
	} else if info.Truncated() {
		fmt.Printf("Supported:   no (%d pixel bytes, need %d)\n", info.PixelBytes, info.Stride*info.Height)
	} else {
		fmt.Println("Supported:   yes")
	}

	if decode {
		w, h, err := bmp.CheckDecodable(data)
		if err != nil {
			fmt.Printf("Decode:      failed: %v\n", err)
		} else {
			fmt.Printf("Decode:      ok (%d x %d)\n", w, h)
		}
	}
	return nil
}
