package maze_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	maze "github.com/yalue/region_maze"
)

func TestHSVToRGB(t *testing.T) {
	cases := []struct {
		name                   string
		hue, saturation, value float64
		want                   color.RGBA
	}{
		{"Black", 0.4, 1, 0, color.RGBA{0, 0, 0, 255}},
		{"White", 0.7, 0, 1, color.RGBA{255, 255, 255, 255}},
		{"Red", 0, 1, 1, color.RGBA{255, 63, 63, 255}},
		{"Green", 1.0 / 3.0, 1, 1, color.RGBA{63, 255, 63, 255}},
		{"Blue", 2.0 / 3.0, 1, 1, color.RGBA{63, 63, 255, 255}},
		{"RedWrapped", 1, 1, 1, color.RGBA{255, 63, 63, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, maze.HSVToRGB(tc.hue, tc.saturation,
				tc.value))
		})
	}
}

// TestHSVToRGB_Gray checks the value curve: with no saturation every channel
// is value^1.5 of full brightness.
func TestHSVToRGB_Gray(t *testing.T) {
	for _, v := range []float64{0.1, 0.25, 0.5, 0.9} {
		want := uint8(v * math.Sqrt(v) * 255)
		got := maze.HSVToRGB(0.3, 0, v)
		assert.Equal(t, color.RGBA{want, want, want, 255}, got)
	}
}

func TestPalette_Color(t *testing.T) {
	p := maze.NewPalette(maze.NewRand(2), 2, maze.HueRange{From: 0, To: 0})
	black := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, black, p.Color(maze.FieldCell{Region: maze.NoRegion,
		Distance: -1}, 10))
	assert.Equal(t, black, p.Color(maze.FieldCell{Region: 2}, 10))

	// Centers are pale and bright; the farthest cells are saturated and
	// dark.
	expected := func(fade float64) color.RGBA {
		return maze.HSVToRGB(0, 0.2+0.8*fade, 1-0.6*fade)
	}
	near := p.Color(maze.FieldCell{Region: 0, Distance: 0}, 10)
	assert.Equal(t, expected(0), near)
	far := p.Color(maze.FieldCell{Region: 1, Distance: 10}, 10)
	assert.Equal(t, expected(1), far)
	half := p.Color(maze.FieldCell{Region: 1, Distance: 5}, 10)
	assert.Equal(t, expected(0.5), half)
	assert.NotEqual(t, near, far)

	// A field with only centers in it.
	assert.Equal(t, near, p.Color(maze.FieldCell{Region: 1, Distance: 0}, 0))
}

func TestPalette_Empty(t *testing.T) {
	p := maze.NewPalette(maze.NewRand(2), 0, maze.FullHueRange)
	assert.Equal(t, 0, p.Regions())
	p = maze.NewPalette(maze.NewRand(2), -3, maze.FullHueRange)
	assert.Equal(t, 0, p.Regions())
}
