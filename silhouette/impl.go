package silhouette

import "encoding/binary"
import "image"
import "os"

import _ "image/png"

import _ "golang.org/x/image/webp"

import "github.com/go-audio/audio"
import "github.com/go-audio/wav"
import "github.com/x448/float16"

func loadimage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// alpha reads the opacity of one pixel on a 0-255 scale. The common decoded
// formats are read directly, anything else goes through the color model.
func alpha(img image.Image, x, y int) uint8 {
	switch p := img.(type) {
	case *image.NRGBA:
		return p.Pix[p.PixOffset(x, y)+3]
	case *image.RGBA:
		return p.Pix[p.PixOffset(x, y)+3]
	default:
		_, _, _, a := img.At(x, y).RGBA()
		return uint8(a >> 8)
	}
}

func dumpwav(name string, buf []int16, sr int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	data := make([]int, len(buf))
	for i, v := range buf {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(f, sr, 16, 1, 1)
	if err := enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sr},
		Data:           data,
		SourceBitDepth: 16,
	}); err != nil {
		enc.Close()
		f.Close()
		return err
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func dumpenvelope(name string, env [][2]float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	packed := make([]uint16, 0, 2*len(env))
	for _, col := range env {
		packed = append(packed,
			float16.Fromfloat32(float32(col[0])).Bits(),
			float16.Fromfloat32(float32(col[1])).Bits())
	}

	if err := binary.Write(f, binary.LittleEndian, packed); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func loadenvelope(name string) ([][2]float64, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, ErrBadEnvelope
	}

	env := make([][2]float64, 0, len(data)/4)
	for i := 0; i+3 < len(data); i += 4 {
		top := float16.Frombits(binary.LittleEndian.Uint16(data[i:]))
		bottom := float16.Frombits(binary.LittleEndian.Uint16(data[i+2:]))
		env = append(env, [2]float64{float64(top.Float32()), float64(bottom.Float32())})
	}

	return env, nil
}
