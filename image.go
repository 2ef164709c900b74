package maze

import (
	"image"
	"image/color"
)

// Satisfies the image.Image interface, drawing each cell of a maze as a
// single pixel colored by its region and distance. Create using Render.
type RegionImage struct {
	field   *DistanceField
	palette *Palette
	centers []Position
}

// Picks the given number of centers, computes the distance field for them,
// and picks one hue per region from the hue range. All randomness is drawn
// from rng, in that order.
func Render(rng RandomSource, g *Grid, regions int,
	hues HueRange) *RegionImage {
	centers := RandomCenters(rng, g, regions)
	field := ComputeDistanceField(g, centers)
	palette := NewPalette(rng, len(centers), hues)
	return &RegionImage{
		field:   field,
		palette: palette,
		centers: centers,
	}
}

// Returns the centers the regions grow from, indexed by region.
func (m *RegionImage) Centers() []Position {
	return m.centers
}

// Returns the distance field the image is colored from.
func (m *RegionImage) Field() *DistanceField {
	return m.field
}

// Returns the color of a single cell.
func (m *RegionImage) CellColor(p Position) color.RGBA {
	return m.palette.Color(m.field.At(p), m.field.MaxDistance())
}

// Returns the colors of every cell, indexed as [y][x].
func (m *RegionImage) Raster() [][]color.RGBA {
	toReturn := make([][]color.RGBA, m.field.Height())
	for y := range toReturn {
		toReturn[y] = make([]color.RGBA, m.field.Width())
		for x := range toReturn[y] {
			toReturn[y][x] = m.CellColor(Position{x, y})
		}
	}
	return toReturn
}

func (m *RegionImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *RegionImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.field.Width(), m.field.Height())
}

func (m *RegionImage) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= m.field.Width()) ||
		(y >= m.field.Height()) {
		return color.Transparent
	}
	return m.CellColor(Position{x, y})
}

// Satisfies the Image interface, surrounds an image with a solid-color border.
type imageBorder struct {
	pic         image.Image
	picBounds   image.Rectangle
	borderWidth int
	fillColor   color.Color
}

func (b *imageBorder) ColorModel() color.Model {
	return b.pic.ColorModel()
}

func (b *imageBorder) Bounds() image.Rectangle {
	tmp := b.picBounds
	w := b.borderWidth * 2
	return image.Rect(0, 0, tmp.Dx()+w, tmp.Dy()+w)
}

func (b *imageBorder) At(x, y int) color.Color {
	tmp := b.picBounds
	if (x < b.borderWidth) || (y < b.borderWidth) {
		return b.fillColor
	}
	if (x >= tmp.Dx()+b.borderWidth) || (y >= tmp.Dy()+b.borderWidth) {
		return b.fillColor
	}
	return b.pic.At(x-b.borderWidth+tmp.Min.X, y-b.borderWidth+tmp.Min.Y)
}

// Returns a new image, consisting of the given image surrounded by a border
// with the given width in pixels and color. Returns pic unchanged if width
// isn't positive.
func AddImageBorder(pic image.Image, width int, fill color.Color) image.Image {
	if width <= 0 {
		return pic
	}
	return &imageBorder{
		pic:         pic,
		picBounds:   pic.Bounds(),
		borderWidth: width,
		fillColor:   fill,
	}
}
