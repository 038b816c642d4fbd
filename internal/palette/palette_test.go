package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainEndpoints(t *testing.T) {
	cm, err := Lookup("terrain")
	require.NoError(t, err)
	assert.Equal(t, "terrain", cm.Name())
	assert.Equal(t, color.NRGBA{51, 51, 153, 255}, cm.At(0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, cm.At(1))
	assert.Equal(t, color.NRGBA{255, 255, 153, 255}, cm.At(0.5))
	assert.Equal(t, cm.At(0), cm.At(-3), "positions clamp")
}

func TestSegmentedInterpolates(t *testing.T) {
	cm := NewSegmented("ramp", Stop{0, 0, 0, 0}, Stop{1, 1, 0.5, 0})
	assert.Equal(t, color.NRGBA{128, 64, 0, 255}, cm.At(0.5))
	assert.Equal(t, color.NRGBA{A: 255}, NewSegmented("empty").At(0.3))
}

func TestSampleNormalizesOverCount(t *testing.T) {
	cm := NewSegmented("ramp", Stop{0, 0, 0, 0}, Stop{1, 1, 1, 1})
	assert.Equal(t, cm.At(0), Sample(cm, 0, 4))
	assert.Equal(t, cm.At(0.25), Sample(cm, 1, 4))
	assert.Equal(t, cm.At(0.75), Sample(cm, 3, 4))
	assert.Equal(t, cm.At(0), Sample(cm, 3, 0), "empty range samples the start")
}

func TestSampleAllIsMonotonic(t *testing.T) {
	cm, err := Lookup("gray")
	require.NoError(t, err)
	colors := SampleAll(cm, 10)
	require.Len(t, colors, 10)
	for i := 1; i < len(colors); i++ {
		assert.Greater(t, colors[i].R, colors[i-1].R)
		assert.Equal(t, uint8(255), colors[i].A)
	}
}

func TestLookupIsCaseInsensitiveForBuiltins(t *testing.T) {
	cm, err := Lookup("Terrain")
	require.NoError(t, err)
	assert.Equal(t, "terrain", cm.Name())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-palette")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestRegistryMapsResolve(t *testing.T) {
	names := Names()
	require.Contains(t, names, "terrain")

	for _, n := range names {
		cm, err := Lookup(n)
		require.NoError(t, err, n)
		c := cm.At(0.5)
		assert.Equal(t, uint8(255), c.A, n)
	}
}
