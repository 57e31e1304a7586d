package main

import (
	"flag"
	"fmt"
	"github.com/neurlang/gosilhouette/silhouette"
	"os"
	"path/filepath"
)

func main() {
	freq := flag.Float64("f", 880.0, "carrier frequency in Hz for the sine wave")
	samples := flag.Int("s", 100, "samples per pixel column, controls audio duration")
	rate := flag.Int("r", 44100, "output sample rate in Hz")
	output := flag.String("o", "", "path for the output WAV file (default: input filename with a .wav extension)")
	envfile := flag.String("e", "", "optional path to dump the extracted envelope")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: towav [flags] <png_filename>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	if _, err := os.Stat(filename); err != nil {
		fmt.Printf("Error: file not found at '%s'\n", filename)
		os.Exit(1)
	}
	if *freq <= 0 || *samples < 1 || *rate < 1 {
		fmt.Println("Error: frequency, samples per column and sample rate must be positive.")
		os.Exit(1)
	}

	outputFile := *output
	if outputFile == "" {
		base := filename[:len(filename)-len(filepath.Ext(filename))]
		outputFile = base + ".wav"
	}

	// Create a new instance of Silhouette
	var s = silhouette.NewSilhouette()

	// Set parameters
	s.CarrierFreq = *freq
	s.SamplesPerColumn = *samples
	s.SampleRate = *rate
	s.Progress = func(status string) {
		fmt.Println(status)
	}

	if *envfile == "" {
		if err := s.ToWavPng(filename, outputFile); err != nil {
			fmt.Printf("Error generating waveform from image: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// With an envelope dump requested the pipeline runs staged.
	img, err := silhouette.LoadImage(filename)
	if err != nil {
		fmt.Printf("Error: could not open image file: %v\n", err)
		os.Exit(1)
	}
	env, err := s.ToEnvelope(img)
	if err != nil {
		fmt.Printf("Error extracting envelope: %v\n", err)
		os.Exit(1)
	}
	if err := silhouette.SaveEnvelope(*envfile, env); err != nil {
		fmt.Printf("Error saving envelope: %v\n", err)
		os.Exit(1)
	}
	buf, err := s.FromEnvelope(env)
	if err != nil {
		fmt.Printf("Error generating audio samples: %v\n", err)
		os.Exit(1)
	}
	if err := silhouette.SaveWav(outputFile, s.Quantize(buf), s.SampleRate); err != nil {
		fmt.Printf("Error: could not save .wav file: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done.")
}
