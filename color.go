package maze

import (
	"image/color"
	"math"
)

// A range of hues, in degrees. The bounds may be given in either order and
// may fall outside of [0, 360); hues wrap around.
type HueRange struct {
	From float64
	To   float64
}

// The hue range covering every color.
var FullHueRange = HueRange{From: 0, To: 360}

// Returns the range's bounds with the smaller one first.
func (h HueRange) bounds() (float64, float64) {
	if h.From > h.To {
		return h.To, h.From
	}
	return h.From, h.To
}

// Maps a cell's region and distance to a color. Each region gets its own
// hue; cells fade from pale and bright near their center to saturated and dark
// at the edge of the maze's distance range.
type Palette struct {
	// One hue per region, as a fraction of a full turn.
	hues []float64
}

// Draws one hue for each of the given number of regions, uniformly from the
// hue range.
func NewPalette(rng RandomSource, regions int, hues HueRange) *Palette {
	if regions < 0 {
		regions = 0
	}
	low, high := hues.bounds()
	toReturn := &Palette{
		hues: make([]float64, regions),
	}
	for i := range toReturn.hues {
		toReturn.hues[i] = (low + rng.Float64()*(high-low)) / 360
	}
	return toReturn
}

// Returns the number of regions the palette has hues for.
func (p *Palette) Regions() int {
	return len(p.hues)
}

// Returns the color of a cell, given the field's maximum distance.
// Unreachable cells are black.
func (p *Palette) Color(c FieldCell, maxDistance int) color.RGBA {
	if (c.Region < 0) || (c.Region >= len(p.hues)) {
		return color.RGBA{0, 0, 0, 255}
	}
	fade := 0.0
	if maxDistance > 0 {
		fade = float64(c.Distance) / float64(maxDistance)
	}
	saturation := 0.2 + 0.8*fade
	value := 1.0 - 0.6*fade
	return HSVToRGB(p.hues[c.Region], saturation, value)
}

// Converts a color from HSV to RGB. The hue is a fraction of a full turn,
// and saturation and value are in [0, 1]. Instead of the usual piecewise
// linear hexcone this uses a smooth cosine curve for each channel, and applies
// a gamma-like adjustment to the saturation and value.
func HSVToRGB(hue, saturation, value float64) color.RGBA {
	haversine := func(t float64) float64 {
		return (1 - math.Cos(t)) / 2
	}
	value = value * math.Sqrt(value)
	saturation = math.Sqrt(saturation)
	channel := func(offset float64) uint8 {
		v := value * (1 - saturation*haversine((hue-offset/3)*2*math.Pi))
		v *= 255
		if v <= 0 {
			return 0
		}
		if v >= 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: channel(0),
		G: channel(1),
		B: channel(2),
		A: 255,
	}
}
