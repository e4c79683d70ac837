package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Frame is a finished render: rows of opaque 8-bit pixels, top row first
type Frame struct {
	Width  int
	Height int
	Rows   [][]color.RGBA
	Stats  RenderStats
}

// NewFrame creates a black frame with the given dimensions
func NewFrame(width, height int) *Frame {
	rows := make([][]color.RGBA, height)
	for y := range rows {
		rows[y] = make([]color.RGBA, width)
	}
	return &Frame{Width: width, Height: height, Rows: rows}
}

// PPM encodes the frame as a plain text (P3) PPM image
func (f *Frame) PPM() []byte {
	var buf bytes.Buffer
	// Every pixel is at most "255 255 255    "
	buf.Grow(32 + f.Width*f.Height*15 + f.Height)

	fmt.Fprintf(&buf, "P3\n%d %d\n255\n", f.Width, f.Height)
	for _, row := range f.Rows {
		for _, pixel := range row {
			fmt.Fprintf(&buf, "%d %d %d    ", pixel.R, pixel.G, pixel.B)
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Image returns the frame as an RGBA image for PNG encoding
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y, row := range f.Rows {
		for x, pixel := range row {
			img.SetRGBA(x, y, pixel)
		}
	}
	return img
}
