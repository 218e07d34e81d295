package chaos

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the point set so dots on the bounding box stay visible
const drawPadding = 10

// RenderImage plots a generated point set as small dots on a black
// background, scaled so the set's bounding box fills the image. The point
// set must be non-empty.
func RenderImage(points []Point, scale float64) image.Image {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetRGB(0, 1, 1)
	for _, p := range points {
		c.DrawPoint(p.X, p.Y, 1/scale)
	}
	c.Fill()

	return c.Image()
}

// Helper to draw and print a point set in the terminal (iTerm only) for
// debugging a preset without leaving the shell.
func dbgDraw(points []Point, scale float64) {
	c := gg.NewContextForImage(RenderImage(points, scale))
	c.SavePNG("/tmp/chaos_points.png")
	imgcat.CatFile("/tmp/chaos_points.png", os.Stdout)
}
