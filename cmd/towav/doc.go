// Command towav converts transparent images (PNG/WebP) to audio files (WAV).
//
// This tool extracts the vertical silhouette of the image's opaque content
// and synthesizes a sine carrier whose amplitude envelope traces that shape,
// writing the result as a mono 16-bit WAV file.
//
// Usage:
//
//	towav [flags] <png_file>
//
// Flags:
//
//	-f  carrier frequency in Hz (default 880)
//	-s  samples per pixel column (default 100)
//	-r  output sample rate in Hz (default 44100)
//	-o  output WAV path (default: input filename with a .wav extension)
//	-e  optional path to dump the extracted envelope as packed half floats
package main
