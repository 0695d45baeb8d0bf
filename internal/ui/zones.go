package ui

import "strings"

// rect is a screen region in cells; x and y are zero-based.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type zone struct {
	id   string
	area rect
}

// zoneMap records where each clickable control was drawn in the last frame.
// Later zones win when regions overlap.
type zoneMap struct {
	zones []zone
}

func (z *zoneMap) add(id string, area rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	z.zones = append(z.zones, zone{id: id, area: area})
}

// at returns the control drawn at (x, y).
func (z *zoneMap) at(x, y int) (string, bool) {
	for i := len(z.zones) - 1; i >= 0; i-- {
		if z.zones[i].area.contains(x, y) {
			return z.zones[i].id, true
		}
	}
	return "", false
}

// find returns the area of a control.
func (z *zoneMap) find(id string) (rect, bool) {
	for _, zn := range z.zones {
		if zn.id == id {
			return zn.area, true
		}
	}
	return rect{}, false
}

func (z *zoneMap) reset() {
	z.zones = z.zones[:0]
}

// canvas accumulates rendered lines top to bottom and the zones drawn on them.
type canvas struct {
	width int
	lines []string
	zones *zoneMap
}

// block appends s and returns the row it starts at.
func (c *canvas) block(s string) int {
	y := len(c.lines)
	c.lines = append(c.lines, strings.Split(s, "\n")...)
	return y
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// height returns the number of rows drawn so far.
func (c *canvas) height() int {
	return len(c.lines)
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// centerOffset returns the left offset that centers w columns in width.
func centerOffset(width, w int) int {
	if w >= width {
		return 0
	}
	return (width - w) / 2
}
