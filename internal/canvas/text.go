package canvas

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"crease-renderer/internal/logger"
	"crease-renderer/internal/surface"
)

var (
	fontsOnce   sync.Once
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
)

func loadFonts() {
	var err error
	if regularFont, err = opentype.Parse(lmroman10regular.TTF); err != nil {
		logger.Sugar.Warnf("canvas: regular font unavailable, using basicfont: %v", err)
	}
	if boldFont, err = opentype.Parse(lmroman10bold.TTF); err != nil {
		logger.Sugar.Warnf("canvas: bold font unavailable, using basicfont: %v", err)
	}
}

// faceCache hands out font faces for one render; faces are not safe for
// concurrent use, so every render owns its cache.
type faceCache struct {
	dpi   float64
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

func newFaceCache(dpi float64) *faceCache {
	fontsOnce.Do(loadFonts)
	return &faceCache{dpi: dpi, faces: make(map[faceKey]font.Face)}
}

func (fc *faceCache) face(size float64, bold bool) font.Face {
	k := faceKey{size, bold}
	if f, ok := fc.faces[k]; ok {
		return f
	}
	src := regularFont
	if bold {
		src = boldFont
	}
	var f font.Face = basicfont.Face7x13
	if src != nil {
		face, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size,
			DPI:     fc.dpi,
			Hinting: font.HintingFull,
		})
		if err == nil {
			f = face
		}
	}
	fc.faces[k] = f
	return f
}

func (fc *faceCache) close() {
	for _, f := range fc.faces {
		_ = f.Close()
	}
}

// drawText renders a possibly multi-line label. (x, y) is the anchor in
// pixels; the last line's baseline sits on it.
func drawText(dst *image.NRGBA, face font.Face, text string, x, y float64, align surface.HAlign, c color.NRGBA) {
	lines := strings.Split(text, "\n")
	lineH := float64(face.Metrics().Height.Ceil())
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	for i, line := range lines {
		w := float64(d.MeasureString(line).Ceil())
		lx := x
		switch align {
		case surface.AlignCenter:
			lx -= w / 2
		case surface.AlignRight:
			lx -= w
		}
		ly := y - float64(len(lines)-1-i)*lineH
		d.Dot = fixed.P(int(lx+0.5), int(ly+0.5))
		d.DrawString(line)
	}
}
