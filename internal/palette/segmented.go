package palette

import "image/color"

// Stop is one control point of a Segmented colormap. Channels are in [0, 1].
type Stop struct {
	Pos     float64
	R, G, B float64
}

// Segmented interpolates linearly between sorted stops.
type Segmented struct {
	name  string
	stops []Stop
}

// NewSegmented builds a colormap from stops sorted by Pos, spanning [0, 1].
func NewSegmented(name string, stops ...Stop) *Segmented {
	return &Segmented{name: name, stops: stops}
}

func (s *Segmented) Name() string { return s.name }

func (s *Segmented) At(t float64) color.NRGBA {
	t = clamp01(t)
	st := s.stops
	if len(st) == 0 {
		return color.NRGBA{A: 0xff}
	}
	if t <= st[0].Pos {
		return st[0].nrgba()
	}
	for i := 1; i < len(st); i++ {
		if t <= st[i].Pos {
			a, b := st[i-1], st[i]
			f := (t - a.Pos) / (b.Pos - a.Pos)
			return Stop{
				R: a.R + (b.R-a.R)*f,
				G: a.G + (b.G-a.G)*f,
				B: a.B + (b.B-a.B)*f,
			}.nrgba()
		}
	}
	return st[len(st)-1].nrgba()
}

func (s Stop) nrgba() color.NRGBA {
	return color.NRGBA{R: to8(s.R), G: to8(s.G), B: to8(s.B), A: 0xff}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Matplotlib-compatible tables.
var builtin = map[string]*Segmented{
	"terrain": NewSegmented("terrain",
		Stop{0.00, 0.2, 0.2, 0.6},
		Stop{0.15, 0.0, 0.6, 1.0},
		Stop{0.25, 0.0, 0.8, 0.4},
		Stop{0.50, 1.0, 1.0, 0.6},
		Stop{0.75, 0.5, 0.36, 0.33},
		Stop{1.00, 1.0, 1.0, 1.0},
	),
	"gray": NewSegmented("gray",
		Stop{0, 0, 0, 0},
		Stop{1, 1, 1, 1},
	),
	"coolwarm": NewSegmented("coolwarm",
		Stop{0.0, 0.2298, 0.2987, 0.7537},
		Stop{0.5, 0.8654, 0.8654, 0.8654},
		Stop{1.0, 0.7057, 0.0156, 0.1502},
	),
	"viridis": NewSegmented("viridis",
		Stop{0.00, 0.267, 0.005, 0.329},
		Stop{0.25, 0.229, 0.322, 0.546},
		Stop{0.50, 0.128, 0.567, 0.551},
		Stop{0.75, 0.369, 0.789, 0.383},
		Stop{1.00, 0.993, 0.906, 0.144},
	),
}
