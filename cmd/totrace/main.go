package main

import (
	"flag"
	"fmt"
	"github.com/neurlang/gosilhouette/trace"
	"os"
	"strings"
)

func main() {
	samples := flag.Int("s", 100, "samples per image column")
	height := flag.Int("H", 256, "output image height in pixels")
	output := flag.String("o", "", "path for the output PNG file (default: input filename plus .png)")
	spectral := flag.Bool("spec", false, "render a spectrogram instead of the silhouette trace")
	window := flag.Int("w", 256, "spectrogram frame shift")
	resolut := flag.Int("n", 2048, "spectrogram FFT resolution")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: totrace [flags] <wav_or_flac_filename>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	if *samples < 1 || *height < 1 || *window < 1 || *resolut < 2 {
		fmt.Println("Error: samples per column, height, frame shift and resolution must be positive.")
		os.Exit(1)
	}

	// Create a new instance of Trace
	var t = trace.NewTrace()

	// Set parameters
	t.SamplesPerColumn = *samples
	t.Height = *height
	t.Spectral = *spectral
	t.Window = *window
	t.Resolut = *resolut

	outputFile := *output
	if outputFile == "" {
		outputFile = filename + ".png"
	}

	if strings.HasSuffix(filename, ".flac") {
		err := t.ToPngFlac(filename, outputFile)
		if err != nil {
			fmt.Printf("Error rendering trace: %v\n", err)
			os.Exit(1)
		}
	} else {
		err := t.ToPngWav(filename, outputFile)
		if err != nil {
			fmt.Printf("Error rendering trace: %v\n", err)
			os.Exit(1)
		}
	}
}
