package gauge

import (
	"fmt"
	"math"
)

const axisWidth = 5 // "-10 |"

// RenderChart draws the scrolling time-series from window points. X spans
// [0, capacity) samples; Y spans [minDeg, maxDeg]. Points outside the Y
// range are pinned to the nearest edge.
func RenderChart(width, height int, pts []Point, capacity int, minDeg, maxDeg float64) string {
	c := chartCanvas(width, height, pts, capacity, minDeg, maxDeg)
	if c == nil {
		return ""
	}
	return c.render()
}

func chartCanvas(width, height int, pts []Point, capacity int, minDeg, maxDeg float64) *canvas {
	if width < axisWidth+5 || height < 4 || maxDeg <= minDeg {
		return nil
	}
	if capacity < 2 {
		capacity = 2
	}
	c := newCanvas(width, height)

	plotW := width - axisWidth
	plotH := height - 2 // axis line + x labels

	rowOf := func(v float64) int {
		if math.IsNaN(v) {
			return -1
		}
		frac := (maxDeg - v) / (maxDeg - minDeg)
		r := int(math.Round(frac * float64(plotH-1)))
		if r < 0 {
			r = 0
		}
		if r > plotH-1 {
			r = plotH - 1
		}
		return r
	}
	colOf := func(i int) int {
		return axisWidth + int(math.Round(float64(i)*float64(plotW-1)/float64(capacity-1)))
	}

	// Y axis
	for r := 0; r < plotH; r++ {
		c.set(axisWidth-1, r, '|', cellAxis)
	}
	for _, v := range []float64{0, 90, 180, 270, 360} {
		if v < minDeg || v > maxDeg {
			continue
		}
		r := rowOf(v)
		c.text(0, r, fmt.Sprintf("%3.0f", v), cellLabel)
		c.set(axisWidth-1, r, '+', cellAxis)
		for col := axisWidth; col < width; col += 2 {
			c.set(col, r, '.', cellDot)
		}
	}

	// X axis
	c.set(axisWidth-1, plotH, '+', cellAxis)
	for col := axisWidth; col < width; col++ {
		c.set(col, plotH, '-', cellAxis)
	}
	c.text(axisWidth, plotH+1, "0", cellLabel)
	last := fmt.Sprintf("%d", capacity)
	c.text(width-len(last), plotH+1, last, cellLabel)

	// Trace: connect consecutive samples, then mark the samples themselves.
	for i := 1; i < len(pts); i++ {
		r0, r1 := rowOf(pts[i-1].Y), rowOf(pts[i].Y)
		if r0 < 0 || r1 < 0 {
			continue
		}
		c0, c1 := colOf(pts[i-1].X), colOf(pts[i].X)
		steps := max(abs(c1-c0), abs(r1-r0))
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			col := int(math.Round(float64(c0) + t*float64(c1-c0)))
			row := int(math.Round(float64(r0) + t*float64(r1-r0)))
			c.set(col, row, '.', cellTrace)
		}
	}
	for _, p := range pts {
		if r := rowOf(p.Y); r >= 0 {
			c.set(colOf(p.X), r, '*', cellTrace)
		}
	}

	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
