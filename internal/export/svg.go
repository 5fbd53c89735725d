package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/fk3r/internal/kinematics"
)

// ChainToSVG draws the links as a polyline and every joint as a dot. The
// view box is fitted to the points with 10% padding and keeps the aspect
// ratio of the world so angles look right. Non-finite points, or bounds too
// wide for float64, give an empty string.
func ChainToSVG(points []kinematics.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}
	for _, p := range points {
		if !p.IsFinite() {
			return ""
		}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	span := maxX - minX
	if maxY-minY > span {
		span = maxY - minY
	}
	if span == 0 {
		span = 1
	}
	cx, cy := minX/2+maxX/2, minY/2+maxY/2
	span *= 1.2
	if math.IsInf(span, 0) {
		return ""
	}
	minX, minY = cx-span/2, cy-span/2

	size := width
	if height < size {
		size = height
	}
	scale := float64(size) / span
	offX := (float64(width) - float64(size)) / 2
	offY := (float64(height) - float64(size)) / 2

	toScreen := func(p kinematics.Point) (float64, float64) {
		return offX + (p.X-minX)*scale, float64(height) - offY - (p.Y-minY)*scale
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="3" stroke-linejoin="round" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x, y := toScreen(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n<g fill=\"#ffffff\">\n")

	for _, p := range points {
		x, y := toScreen(p)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4"/>
`, x, y))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PoseToSVG renders the chain of s.
func PoseToSVG(s kinematics.JointState, width, height int) string {
	pts := kinematics.Chain(s)
	return ChainToSVG(pts[:], width, height, "#00ccff")
}
