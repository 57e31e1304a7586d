package trace

import "image"
import "image/color"
import "image/png"
import "io"
import "math"
import "os"

import "github.com/faiface/beep/wav"
import "github.com/mewkiz/flac"

func loadwav(name string) (out []float64, sr int) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0
	}
	defer stream.Close()

	var samples = make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			out = append(out, samples[i][0])
		}
	}

	return out, int(format.SampleRate)
}

func loadflac(name string) (out []float64, sr int) {
	stream, err := flac.ParseFile(name)
	if err != nil {
		return nil, 0
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0
		}
		for _, sample := range frame.Subframes[0].Samples {
			out = append(out, float64(sample)/scale)
		}
	}

	return out, int(stream.Info.SampleRate)
}

func dumpimage(name string, env [][2]float64, height int, reverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, len(env), height))

	for x := 0; x < len(env); x++ {
		if env[x][0] == 0 && env[x][1] == 0 {
			continue
		}
		top := row(env[x][0], height)
		bottom := row(env[x][1], height)
		for y := top; y <= bottom; y++ {
			if reverse {
				img.SetNRGBA(x, height-y-1, color.NRGBA{A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// row maps a normalized amplitude back to a row index, +1.0 being row 0.
func row(amp float64, height int) int {
	y := int((1 - amp) * float64(height) / 2)
	if y < 0 {
		y = 0
	}
	if y > height-1 {
		y = height - 1
	}
	return y
}

func dumpspectrogram(name string, spec [][]float64, reverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	frames := len(spec)
	bins := 0
	if frames > 0 {
		bins = len(spec[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, frames, bins))

	var mgc_max, mgc_min = (-99999999.), (9999999.)

	for x := 0; x < frames; x++ {
		for y := 0; y < bins; y++ {
			var w = spec[x][y]
			if w < 1e-5 {
				w = 1e-5
			}
			w = math.Log(w)
			spec[x][y] = w
			if w > mgc_max {
				mgc_max = w
			}
			if w < mgc_min {
				mgc_min = w
			}
		}
	}
	if mgc_max == mgc_min {
		mgc_max = mgc_min + 1
	}
	for x := 0; x < frames; x++ {
		for y := 0; y < bins; y++ {
			var col color.RGBA
			val := (spec[x][y] - mgc_min) / (mgc_max - mgc_min)
			col.R = uint8(int(255 * val))
			col.G = uint8(int(255 * val))
			col.B = uint8(int(255 * val))
			col.A = uint8(255)
			if reverse {
				img.SetRGBA(x, bins-y-1, col)
			} else {
				img.SetRGBA(x, y, col)
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
