package trace

import "github.com/r9y9/gossp/stft"
import "errors"
import "math"

// Trace represents the configuration for recovering silhouettes from waveforms.
type Trace struct {
	SamplesPerColumn int
	Height           int
	Window           int
	Resolut          int
	YReverse         bool

	// Spectral switches the PNG render from the silhouette trace to a
	// log-magnitude spectrogram.
	Spectral bool
}

// NewTrace creates a new Trace instance with default values.
func NewTrace() *Trace {
	return &Trace{
		SamplesPerColumn: 100,
		Height:           256,
		Window:           256,
		Resolut:          2048,
	}
}

var ErrFileNotLoaded = errors.New("wavNotLoaded")
var ErrInvalidParameters = errors.New("invalidParameters")

// FromWave recovers a per-column envelope from a wave buffer: for each block
// of SamplesPerColumn samples, env[x][0] is the block maximum and env[x][1]
// the block minimum. This is the inverse of silhouette synthesis up to the
// carrier's sampling of its own peaks.
func (t *Trace) FromWave(buf []float64) ([][2]float64, error) {
	if t.SamplesPerColumn < 1 {
		return nil, ErrInvalidParameters
	}
	spc := t.SamplesPerColumn
	cols := (len(buf) + spc - 1) / spc
	env := make([][2]float64, cols)

	for x := 0; x < cols; x++ {
		lo := x * spc
		hi := lo + spc
		if hi > len(buf) {
			hi = len(buf)
		}
		top, bottom := buf[lo], buf[lo]
		for _, v := range buf[lo+1 : hi] {
			if v > top {
				top = v
			}
			if v < bottom {
				bottom = v
			}
		}
		env[x] = [2]float64{top, bottom}
	}

	return env, nil
}

// Spectrogram computes STFT magnitudes of a wave buffer, one frame per row,
// Resolut/2 bins per frame.
func (t *Trace) Spectrogram(buf []float64) ([][]float64, error) {
	if t.Window < 1 || t.Resolut < 2 {
		return nil, ErrInvalidParameters
	}

	buf = pad(buf, t.Resolut)

	stft := stft.New(t.Window, t.Resolut)

	spectrum := stft.STFT(buf)

	out := make([][]float64, len(spectrum))
	for i := range spectrum {
		row := make([]float64, t.Resolut/2)
		for j := 0; j < t.Resolut/2; j++ {

			var v = spectrum[i][j]

			row[j] = math.Sqrt(real(v)*real(v) + imag(v)*imag(v))
		}
		out[i] = row
	}

	return out, nil
}

// LoadWav loads a mono wav file to a sample vector and its sample rate, or it
// returns an error like ErrFileNotLoaded
func LoadWav(inputFile string) ([]float64, uint32, error) {
	mono, sr := loadwav(inputFile)
	if len(mono) == 0 || sr == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return mono, uint32(sr), nil
}

// LoadFlac loads a mono flac file to a sample vector and its sample rate, or
// it returns an error like ErrFileNotLoaded
func LoadFlac(inputFile string) ([]float64, uint32, error) {
	mono, sr := loadflac(inputFile)
	if len(mono) == 0 || sr == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return mono, uint32(sr), nil
}

// ToPngWav renders an input WAV audio file as a PNG image: a transparent
// silhouette trace, or a spectrogram when Spectral is set.
func (t *Trace) ToPngWav(inputFile, outputFile string) error {

	var buf, _ = loadwav(inputFile)
	if len(buf) == 0 {
		return ErrFileNotLoaded
	}

	return t.render(outputFile, buf)
}

// ToPngFlac renders an input FLAC audio file as a PNG image: a transparent
// silhouette trace, or a spectrogram when Spectral is set.
func (t *Trace) ToPngFlac(inputFile, outputFile string) error {

	var buf, _ = loadflac(inputFile)
	if len(buf) == 0 {
		return ErrFileNotLoaded
	}

	return t.render(outputFile, buf)
}

func (t *Trace) render(outputFile string, buf []float64) error {
	if t.Spectral {
		spec, err := t.Spectrogram(buf)
		if err != nil {
			return err
		}
		return dumpspectrogram(outputFile, spec, t.YReverse)
	}
	if t.Height < 1 {
		return ErrInvalidParameters
	}
	env, err := t.FromWave(buf)
	if err != nil {
		return err
	}
	return dumpimage(outputFile, env, t.Height, t.YReverse)
}

func pad(buf []float64, size int) []float64 {
	if len(buf) >= size {
		return buf
	}
	out := make([]float64, size)
	copy(out, buf)
	return out
}
