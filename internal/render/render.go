// Package render draws routes onto a plain preview image.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/pjot/routeconv/internal/nav"
)

var (
	Background = color.RGBA{0, 0, 0, 255}
	Stroke     = color.RGBA{255, 255, 255, 255}
)

// margin is added around the data, as a fraction of its extent.
const margin = 0.05

var ErrNoPositions = errors.New("render: nothing to draw")

type T func(float64) float64

func transformer(mi float64, ma float64, size int, flip bool) T {
	s := float64(size)
	scale := s / (ma - mi)
	return func(p float64) float64 {
		if flip {
			return s - (p-mi)*scale
		}
		return (p - mi) * scale
	}
}

func createImage(width int, height int, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	return img
}

func addLine(img *image.RGBA, positions []nav.Position, tx T, ty T) {
	if len(positions) == 0 {
		return
	}
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(Stroke)
	gc.SetLineWidth(1)
	gc.BeginPath()
	first := positions[0]
	gc.MoveTo(tx(first.Longitude), ty(first.Latitude))
	for _, p := range positions[1:] {
		gc.LineTo(tx(p.Longitude), ty(p.Latitude))
	}
	gc.Stroke()
}

func bounds(routes []*nav.Route) (minx, miny, maxx, maxy float64, ok bool) {
	for _, r := range routes {
		x0, y0, x1, y1, rok := r.Bounds()
		if !rok {
			continue
		}
		if !ok {
			minx, miny, maxx, maxy, ok = x0, y0, x1, y1, true
			continue
		}
		if x0 < minx {
			minx = x0
		}
		if y0 < miny {
			miny = y0
		}
		if x1 > maxx {
			maxx = x1
		}
		if y1 > maxy {
			maxy = y1
		}
	}
	return
}

func pad(mi, ma float64) (float64, float64) {
	d := (ma - mi) * margin
	if d == 0 {
		d = 0.001
	}
	return mi - d, ma + d
}

// Draw renders every route as a polyline fitted to the image.
func Draw(routes []*nav.Route, width, height int) (*image.RGBA, error) {
	minx, miny, maxx, maxy, ok := bounds(routes)
	if !ok {
		return nil, ErrNoPositions
	}
	minx, maxx = pad(minx, maxx)
	miny, maxy = pad(miny, maxy)

	img := createImage(width, height, Background)
	tx := transformer(minx, maxx, width, false)
	ty := transformer(miny, maxy, height, true)
	for _, r := range routes {
		addLine(img, r.Positions, tx, ty)
	}
	return img, nil
}

// DrawFile renders routes and saves them as PNG.
func DrawFile(path string, routes []*nav.Route, width, height int) error {
	img, err := Draw(routes, width, height)
	if err != nil {
		return err
	}
	return draw2dimg.SaveToPngFile(path, img)
}
