package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/vector"
)

// Size is the width and height of the tray icon in pixels
const Size = 64

const cornerRadius = 12

var (
	// Green marks reminders as running
	Green = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	// Red marks reminders as off
	Red = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}

	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// Render draws the tray icon: a white rounded square with a green circle
// when reminders are active, or a red horizontal bar when they are not.
func Render(active bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))

	fill(img, black, func(z *vector.Rasterizer) { roundedRect(z, 0, 0, Size, Size, cornerRadius) })
	fill(img, white, func(z *vector.Rasterizer) { roundedRect(z, 1, 1, Size-1, Size-1, cornerRadius-1) })

	if active {
		fill(img, Green, func(z *vector.Rasterizer) { circle(z, 32, 32, 20) })
	} else {
		fill(img, Red, func(z *vector.Rasterizer) { rect(z, 12, 28, 52, 36) })
	}
	return img
}

// PNG returns the encoded icon
func PNG(active bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(active)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fill(dst *image.RGBA, c color.Color, path func(z *vector.Rasterizer)) {
	z := vector.NewRasterizer(Size, Size)
	path(z)
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}

func roundedRect(z *vector.Rasterizer, x0, y0, x1, y1, r float32) {
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.QuadTo(x1, y0, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.QuadTo(x1, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.QuadTo(x0, y1, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.QuadTo(x0, y0, x0+r, y0)
	z.ClosePath()
}

// circle approximates a circle with four cubic Béziers.
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.5522848
	c := r * k
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
	z.CubeTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
	z.CubeTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
	z.CubeTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	z.ClosePath()
}
