/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package iccserver

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mechiko/go-iccprof/pkg/icc"
	xdraw "golang.org/x/image/draw"
)

const (
	trcSuperSize = 1024
	trcPlotSize  = 256
)

type trcSeries struct {
	curve *icc.Curve
	color color.Color
}

// getTRCImage plots a profile's tone reproduction curves on a white
// square: each curve is evaluated at supersampled resolution, then the
// canvas is downscaled to the final size with a Catmull-Rom filter so
// the plotted lines come out antialiased.
func (s *Server) getTRCImage(c echo.Context) error {
	id := c.Param("id")
	e, ok := s.lookup(id)
	if !ok {
		return s.notFound(c, fmt.Errorf("no profile with id %q", id))
	}
	p := e.profile

	var series []trcSeries
	if p.GrayTRC != nil {
		series = append(series, trcSeries{p.GrayTRC, color.Black})
	}
	if p.RedTRC != nil {
		series = append(series, trcSeries{p.RedTRC, color.RGBA{R: 210, A: 255}})
	}
	if p.GreenTRC != nil {
		series = append(series, trcSeries{p.GreenTRC, color.RGBA{G: 160, A: 255}})
	}
	if p.BlueTRC != nil {
		series = append(series, trcSeries{p.BlueTRC, color.RGBA{B: 210, A: 255}})
	}
	if len(series) == 0 {
		return s.badRequest(c, fmt.Errorf("profile %q has no TRC curves to render", id))
	}

	super := image.NewRGBA(image.Rect(0, 0, trcSuperSize, trcSuperSize))
	stddraw.Draw(super, super.Bounds(), &image.Uniform{C: color.White}, image.Point{}, stddraw.Src)
	plotAxes(super)

	for _, sr := range series {
		plotCurve(super, sr.curve, sr.color)
	}

	out := image.NewRGBA(image.Rect(0, 0, trcPlotSize, trcPlotSize))
	xdraw.CatmullRom.Scale(out, out.Bounds(), super, super.Bounds(), stddraw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return s.serverError(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func plotAxes(img *image.RGBA) {
	n := img.Bounds().Dy()
	axis := color.RGBA{A: 255, R: 200, G: 200, B: 200}
	for i := 0; i < n; i++ {
		img.Set(i, n-1, axis)
		img.Set(0, n-1-i, axis)
	}
}

// plotCurve draws curve across the full width of img, sampling once per
// column and connecting consecutive samples with a thin vertical run so
// steep segments don't leave gaps.
func plotCurve(img *image.RGBA, curve *icc.Curve, col color.Color) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	prevY := -1
	for x := 0; x < w; x++ {
		v := curve.Evaluate(float64(x) / float64(w-1))
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		y := h - 1 - int(v*float64(h-1))
		if prevY == -1 {
			prevY = y
		}
		lo, hi := y, prevY
		if lo > hi {
			lo, hi = hi, lo
		}
		for yy := lo; yy <= hi; yy++ {
			img.Set(x, yy, col)
		}
		prevY = y
	}
}
