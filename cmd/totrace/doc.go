// Command totrace converts audio files (WAV/FLAC) to silhouette images (PNG).
//
// This tool recovers the per-column amplitude envelope of the waveform and
// renders it as a transparent PNG, reconstructing the silhouette the audio
// was generated from. With -spec it renders an STFT log-magnitude
// spectrogram instead.
//
// Usage:
//
//	totrace [flags] <audio_file>
//
// The output PNG file will be named <audio_file>.png unless -o is given.
//
// Supported input formats: .wav, .flac
package main
