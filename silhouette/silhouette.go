package silhouette

import "golang.org/x/sync/errgroup"
import "image"
import "math"
import "errors"
import "runtime"

// Silhouette represents the configuration for converting image silhouettes to waveforms.
type Silhouette struct {
	CarrierFreq      float64
	SamplesPerColumn int
	SampleRate       int
	AlphaThreshold   uint8
	YReverse         bool

	// Progress, when set, is called with a status message at each
	// pipeline milestone. It has no effect on results.
	Progress func(status string)
}

// NewSilhouette creates a new Silhouette instance with default values.
func NewSilhouette() *Silhouette {
	return &Silhouette{
		CarrierFreq:      880.0,
		SamplesPerColumn: 100,
		SampleRate:       44100,
		AlphaThreshold:   128,
	}
}

var ErrImageNotLoaded = errors.New("imageNotLoaded")
var ErrInvalidParameters = errors.New("invalidParameters")
var ErrBadEnvelope = errors.New("envelopeCorrupt")

// ToEnvelope scans the alpha channel of an image and returns the per-column
// envelope: env[x][0] is the amplitude of the topmost opaque pixel, env[x][1]
// the amplitude of the bottommost. A fully transparent column yields {0, 0}.
// Row 0 maps to amplitude +1.0 and row H to -1.0, so env[x][0] >= env[x][1].
func (s *Silhouette) ToEnvelope(img image.Image) ([][2]float64, error) {
	if img == nil {
		return nil, ErrImageNotLoaded
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, ErrImageNotLoaded
	}

	env := make([][2]float64, w)

	// Columns are independent, so extraction runs chunked across cores.
	var g errgroup.Group
	for _, c := range chunks(w, runtime.GOMAXPROCS(0)) {
		lo, hi := c[0], c[1]
		g.Go(func() error {
			for x := lo; x < hi; x++ {
				env[x] = s.column(img, bounds, x, h)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return env, nil
}

// column finds the vertical extent of opaque content in one image column.
func (s *Silhouette) column(img image.Image, bounds image.Rectangle, x, h int) [2]float64 {
	topY := -1
	for y := 0; y < h; y++ {
		if s.alphaAt(img, bounds, x, y, h) > s.AlphaThreshold {
			topY = y
			break
		}
	}
	if topY < 0 {
		return [2]float64{0, 0}
	}

	// The upward scan is bounded by topY and finds at least topY itself.
	bottomY := topY
	for y := h - 1; y >= topY; y-- {
		if s.alphaAt(img, bounds, x, y, h) > s.AlphaThreshold {
			bottomY = y
			break
		}
	}

	return [2]float64{amplitude(topY, h), amplitude(bottomY, h)}
}

// amplitude maps a row index to a normalized amplitude, row 0 being +1.0.
func amplitude(y, h int) float64 {
	return 1.0 - (2.0 * float64(y) / float64(h))
}

func (s *Silhouette) alphaAt(img image.Image, bounds image.Rectangle, x, y, h int) uint8 {
	if s.YReverse {
		y = h - 1 - y
	}
	return alpha(img, bounds.Min.X+x, bounds.Min.Y+y)
}

// FromEnvelope generates the waveform for an envelope: a sine carrier at
// CarrierFreq, amplitude-modulated per column so that every sample stays
// within [env[x][1], env[x][0]]. The output holds SamplesPerColumn samples
// per envelope column. The carrier phase is evaluated from absolute time,
// never accumulated, so chunking cannot introduce drift.
func (s *Silhouette) FromEnvelope(env [][2]float64) ([]float64, error) {
	if s.CarrierFreq <= 0 || s.SamplesPerColumn < 1 || s.SampleRate < 1 {
		return nil, ErrInvalidParameters
	}

	out := make([]float64, len(env)*s.SamplesPerColumn)
	omega := 2 * math.Pi * s.CarrierFreq
	rate := float64(s.SampleRate)

	var g errgroup.Group
	for _, c := range chunks(len(out), runtime.GOMAXPROCS(0)) {
		lo, hi := c[0], c[1]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				t := float64(i) / rate
				col := env[i/s.SamplesPerColumn]
				center := (col[0] + col[1]) / 2
				radius := (col[0] - col[1]) / 2
				out[i] = center + math.Sin(omega*t)*radius
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Quantize converts normalized samples to 16-bit PCM. Samples are clamped to
// [-1, 1] before scaling, then truncated toward zero.
func (s *Silhouette) Quantize(buf []float64) []int16 {
	out := make([]int16, len(buf))
	for i, v := range buf {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = int16(v * 32767)
	}
	return out
}

// LoadImage loads an image file carrying a transparency channel (PNG or WebP).
func LoadImage(inputFile string) (image.Image, error) {
	return loadimage(inputFile)
}

// SaveWav saves a mono 16-bit wav file from a quantized sample vector.
func SaveWav(outputFile string, buf []int16, sr int) error {
	return dumpwav(outputFile, buf, sr)
}

// SaveEnvelope saves an envelope as packed half-precision floats.
func SaveEnvelope(outputFile string, env [][2]float64) error {
	return dumpenvelope(outputFile, env)
}

// LoadEnvelope loads an envelope saved by SaveEnvelope.
func LoadEnvelope(inputFile string) ([][2]float64, error) {
	return loadenvelope(inputFile)
}

// ToWavPng generates a waveform from an input image file and saves it as a
// mono 16-bit WAV file at the configured sample rate.
func (s *Silhouette) ToWavPng(inputFile, outputFile string) error {

	s.progress("Loading image...")
	img, err := loadimage(inputFile)
	if err != nil {
		return err
	}

	s.progress("Scanning image and extracting envelope...")
	env, err := s.ToEnvelope(img)
	if err != nil {
		return err
	}

	s.progress("Generating audio samples...")
	buf, err := s.FromEnvelope(env)
	if err != nil {
		return err
	}

	s.progress("Saving audio file...")
	if err := dumpwav(outputFile, s.Quantize(buf), s.SampleRate); err != nil {
		return err
	}

	s.progress("Done.")
	return nil
}

func (s *Silhouette) progress(status string) {
	if s.Progress != nil {
		s.Progress(status)
	}
}

// chunks splits n indices into at most workers contiguous [lo, hi) ranges.
func chunks(n, workers int) [][2]int {
	var out [][2]int
	if n == 0 || workers < 1 {
		return out
	}
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}
	return out
}
