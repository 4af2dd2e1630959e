package gauge

import (
	"math"
	"strconv"
	"strings"

	"angle-gauge.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorBright = lipgloss.Color("#00FF41")
	colorMid    = lipgloss.Color("#008F11")
	colorDim    = lipgloss.Color("#004A0A")
	colorNeedle = lipgloss.Color("#FFCC00")
	colorAxis   = lipgloss.Color("#003300")

	styleCenter = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleRing   = lipgloss.NewStyle().Foreground(colorMid)
	styleTick   = lipgloss.NewStyle().Foreground(colorBright)
	styleLabel  = lipgloss.NewStyle().Foreground(colorMid)
	styleNeedle = lipgloss.NewStyle().Foreground(colorNeedle).Bold(true)
	styleAxis   = lipgloss.NewStyle().Foreground(colorAxis)
	styleTrace  = lipgloss.NewStyle().Foreground(colorBright)
	styleDot    = lipgloss.NewStyle().Foreground(colorDim)
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellRing
	cellTick
	cellLabel
	cellAxis
	cellCenter
	cellNeedle
	cellTrace
	cellDot
)

// canvas is a character grid with a style class per cell.
type canvas struct {
	w, h  int
	chars [][]byte
	kinds [][]cellKind
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, chars: make([][]byte, h), kinds: make([][]cellKind, h)}
	for r := range c.chars {
		c.chars[r] = []byte(strings.Repeat(" ", w))
		c.kinds[r] = make([]cellKind, w)
	}
	return c
}

func (c *canvas) set(col, row int, ch byte, k cellKind) {
	if col >= 0 && col < c.w && row >= 0 && row < c.h {
		c.chars[row][col] = ch
		c.kinds[row][col] = k
	}
}

func (c *canvas) text(col, row int, s string, k cellKind) {
	for i := 0; i < len(s); i++ {
		c.set(col+i, row, s[i], k)
	}
}

func (c *canvas) render() string {
	var sb strings.Builder
	for row := 0; row < c.h; row++ {
		for col := 0; col < c.w; col++ {
			ch := string(c.chars[row][col])
			switch c.kinds[row][col] {
			case cellRing:
				sb.WriteString(styleRing.Render(ch))
			case cellTick:
				sb.WriteString(styleTick.Render(ch))
			case cellLabel:
				sb.WriteString(styleLabel.Render(ch))
			case cellAxis:
				sb.WriteString(styleAxis.Render(ch))
			case cellCenter:
				sb.WriteString(styleCenter.Render(ch))
			case cellNeedle:
				sb.WriteString(styleNeedle.Render(ch))
			case cellTrace:
				sb.WriteString(styleTrace.Render(ch))
			case cellDot:
				sb.WriteString(styleDot.Render(ch))
			default:
				sb.WriteString(ch)
			}
		}
		if row < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderDial draws the polar gauge with the needle at needle radians
// (0=north, clockwise). Returns "" when the area is too small to draw.
func RenderDial(width, height int, needle float64, hasValue bool) string {
	c := dialCanvas(width, height, needle, hasValue)
	if c == nil {
		return ""
	}
	return c.render()
}

func dialCanvas(width, height int, needle float64, hasValue bool) *canvas {
	if width < 11 || height < 5 {
		return nil
	}
	c := newCanvas(width, height)

	fcx := float64(width-1) / 2.0
	fcy := float64(height-1) / 2.0
	// Leave a margin for the degree labels outside the ring.
	rx := math.Min(fcx-4, (fcy-1.5)/config.AspectRatio)
	if rx < 3 {
		rx = 3
	}
	ry := rx * config.AspectRatio

	// Outline
	steps := int(rx * 8)
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		c.set(col, row, ringChar(a), cellRing)
	}

	// Faint axes
	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))
	for r := cy - int(ry) + 1; r < cy+int(ry); r++ {
		if r != cy {
			c.set(cx, r, ':', cellAxis)
		}
	}
	for col := cx - int(rx) + 1; col < cx+int(rx); col++ {
		if col != cx {
			c.set(col, cy, '.', cellAxis)
		}
	}

	// Ticks and degree labels
	for d := 0; d < 360; d += config.DialTickDeg {
		a := float64(d) * math.Pi / 180.0
		sinA, cosA := math.Sin(a), math.Cos(a)
		c.set(int(math.Round(fcx+rx*sinA)), int(math.Round(fcy-ry*cosA)), '+', cellTick)

		label := strconv.Itoa(d)
		lc := int(math.Round(fcx + (rx+2)*sinA))
		lr := int(math.Round(fcy - (ry+1)*cosA))
		// Anchor so labels grow away from the ring.
		switch {
		case sinA > 0.3:
			c.text(lc, lr, label, cellLabel)
		case sinA < -0.3:
			c.text(lc-len(label)+1, lr, label, cellLabel)
		default:
			c.text(lc-len(label)/2, lr, label, cellLabel)
		}
	}

	c.set(cx, cy, '+', cellCenter)

	if !hasValue || math.IsNaN(needle) || math.IsInf(needle, 0) {
		return c
	}

	// Needle
	a := needle
	sinA, cosA := math.Sin(a), math.Cos(a)
	n := int(math.Max(rx, ry) * config.NeedleFrac)
	if n < 2 {
		n = 2
	}
	shaft := needleChar(a)
	tipCol, tipRow := cx, cy
	for s := 1; s <= n; s++ {
		t := float64(s) / float64(n) * config.NeedleFrac
		col := int(math.Round(fcx + t*rx*sinA))
		row := int(math.Round(fcy - t*ry*cosA))
		if col == cx && row == cy {
			continue
		}
		c.set(col, row, shaft, cellNeedle)
		tipCol, tipRow = col, row
	}
	if tipCol != cx || tipRow != cy {
		c.set(tipCol, tipRow, needleTip(a), cellNeedle)
	}

	return c
}
