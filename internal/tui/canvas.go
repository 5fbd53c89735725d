package tui

import (
	"math"
	"strings"

	"github.com/san-kum/fk3r/internal/kinematics"
)

// poseCanvas draws the chain with box characters. Terminal cells are about
// twice as tall as they are wide, so x is scaled by two.
type poseCanvas struct {
	w, h int
	grid [][]rune
}

func newPoseCanvas(w, h int) *poseCanvas {
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
	}
	c := &poseCanvas{w: w, h: h, grid: grid}
	c.clear()
	return c
}

func (c *poseCanvas) clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = ' '
		}
	}
}

func (c *poseCanvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.grid[y][x] = r
	}
}

func (c *poseCanvas) line(x1, y1, x2, y2 int, r rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawChain fits the workspace disk of s into the canvas, base at the
// center. A chain that overflows float64 gets only the base.
func (c *poseCanvas) drawChain(s kinematics.JointState) {
	ox, oy := c.w/2, c.h/2
	for x := 0; x < c.w; x++ {
		c.set(x, oy, '·')
	}
	if !kinematics.Drawable(s) {
		c.set(ox, oy, '▲')
		return
	}

	reach := kinematics.Reach(s)
	if reach == 0 {
		reach = 1
	}
	sy := float64(c.h/2-1) / reach
	sx := 2 * sy
	if maxX := float64(c.w/2-1) / reach; sx > maxX {
		sx = maxX
		sy = sx / 2
	}

	pts := kinematics.Chain(s)
	cells := make([][2]int, len(pts))
	for i, p := range pts {
		cells[i] = [2]int{ox + round(p.X*sx), oy - round(p.Y*sy)}
	}
	for i := 1; i < len(cells); i++ {
		c.line(cells[i-1][0], cells[i-1][1], cells[i][0], cells[i][1], '•')
	}
	for i := 1; i < len(cells)-1; i++ {
		c.set(cells[i][0], cells[i][1], '●')
	}
	c.set(cells[0][0], cells[0][1], '▲')
	c.set(cells[len(cells)-1][0], cells[len(cells)-1][1], '◆')
}

func (c *poseCanvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// maxCell bounds cell coordinates so a stray value cannot send line on a
// near-endless walk.
const maxCell = 1 << 16

func round(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxCell:
		return maxCell
	case v < -maxCell:
		return -maxCell
	}
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
