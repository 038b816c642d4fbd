package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 30, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 5, G: 90, B: 250, A: 255})
			}
		}
	}
	return img
}

func TestSaveRoundTrips(t *testing.T) {
	src := checker()
	decoders := map[string]func([]byte) (image.Image, error){
		"png":  func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) },
		"webp": func(b []byte) (image.Image, error) { return webp.Decode(bytes.NewReader(b)) },
		"tga":  func(b []byte) (image.Image, error) { return tga.Decode(bytes.NewReader(b)) },
	}
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "frame."+format)
			require.NoError(t, Save(path, src))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			got, err := decoders[format](data)
			require.NoError(t, err)
			require.Equal(t, src.Bounds(), got.Bounds())

			want := color.NRGBAModel.Convert(src.At(3, 2)).(color.NRGBA)
			have := color.NRGBAModel.Convert(got.At(3, 2)).(color.NRGBA)
			assert.Equal(t, want, have)
		})
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.gif")
	err := Save(path, checker())
	assert.ErrorContains(t, err, "unsupported format")
	assert.NoFileExists(t, path)
}
