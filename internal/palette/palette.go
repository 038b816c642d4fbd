// Package palette maps scalar positions in [0, 1] to colors. Palettes are
// plain values resolved by name once and then passed around explicitly.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"cogentcore.org/core/colors/colormap"
)

// ErrUnknown is returned by Lookup for names no registry knows.
var ErrUnknown = errors.New("palette: unknown colormap")

// Colormap is a continuous color palette.
type Colormap interface {
	Name() string
	At(t float64) color.NRGBA
}

// Sample maps index linearly over [0, count) and looks it up in cm, the way
// a Normalize(0, count) scalar mappable would. The alpha channel is opaque.
func Sample(cm Colormap, index, count int) color.NRGBA {
	t := 0.0
	if count > 0 {
		t = float64(index) / float64(count)
	}
	c := cm.At(t)
	c.A = 0xff
	return c
}

// SampleAll returns Sample(cm, i, count) for every i in [0, count).
func SampleAll(cm Colormap, count int) []color.NRGBA {
	out := make([]color.NRGBA, count)
	for i := range out {
		out[i] = Sample(cm, i, count)
	}
	return out
}

// Lookup resolves a colormap by name. Built-in tables take priority, then
// the cogentcore colormap registry (exact, then case-insensitive match).
func Lookup(name string) (Colormap, error) {
	if s, ok := builtin[strings.ToLower(name)]; ok {
		return s, nil
	}
	if m, ok := colormap.AvailableMaps[name]; ok {
		return registryMap{name: name, m: m}, nil
	}
	for n, m := range colormap.AvailableMaps {
		if strings.EqualFold(n, name) {
			return registryMap{name: n, m: m}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names lists every resolvable colormap name, sorted.
func Names() []string {
	seen := make(map[string]bool)
	var out []string
	for n := range builtin {
		seen[strings.ToLower(n)] = true
		out = append(out, n)
	}
	for n := range colormap.AvailableMaps {
		if !seen[strings.ToLower(n)] {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// registryMap adapts a cogentcore colormap.
type registryMap struct {
	name string
	m    *colormap.Map
}

func (r registryMap) Name() string { return r.name }

func (r registryMap) At(t float64) color.NRGBA {
	c := color.NRGBAModel.Convert(r.m.Map(float32(clamp01(t)))).(color.NRGBA)
	c.A = 0xff
	return c
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
