// Package silhouette converts transparent raster images into audio waveforms.
//
// This package scans the alpha channel of a decoded image and turns its
// vertical silhouette into the amplitude envelope of a sine carrier. It supports:
//   - Extracting a per-column top/bottom envelope from any image with transparency
//   - Synthesizing an amplitude-modulated sine waveform that traces the silhouette
//   - Quantizing the waveform to 16-bit PCM and saving it as a mono WAV file
//   - Serializing extracted envelopes as packed half-precision floats
//
// The pipeline is deterministic: the same image and parameters always produce
// bit-identical samples.
package silhouette
