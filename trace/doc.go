// Package trace recovers image silhouettes from audio waveforms.
//
// This package is the inverse direction of package silhouette. It supports:
//   - Recovering a per-column min/max envelope from a wave buffer
//   - Rendering the envelope as a transparent PNG silhouette
//   - Rendering an STFT log-magnitude spectrogram PNG
//   - Loading mono WAV and FLAC audio files
package trace
