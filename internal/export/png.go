package export

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const pngDPI = 150

// ErrNotDrawable indicates a pose whose coordinates overflow float64.
var ErrNotDrawable = errors.New("export: pose is not finite")

// PosePlot builds a plot of the chain: links as a line, joints as dots,
// axes fixed to the workspace disk so poses are comparable.
func PosePlot(s kinematics.JointState) (*plot.Plot, error) {
	if !kinematics.Drawable(s) {
		return nil, ErrNotDrawable
	}
	chain := kinematics.Chain(s)
	pts := make(plotter.XYs, len(chain))
	for i, p := range chain {
		pts[i].X = p.X
		pts[i].Y = p.Y
	}

	p := plot.New()
	p.Title.Text = "pose " + form.FormatPosition(kinematics.Forward(s))
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	stylePlot(p)

	reach := kinematics.Reach(s)
	if reach == 0 {
		reach = 1
	}
	reach = math.Min(reach*1.1, math.MaxFloat64)
	p.X.Min, p.X.Max = -reach, reach
	p.Y.Min, p.Y.Max = -reach, reach

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("cannot create link line: %w", err)
	}
	line.LineStyle.Width = vg.Points(3)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0x99, B: 0xcc, A: 0xff}

	joints, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("cannot create joint markers: %w", err)
	}
	joints.GlyphStyle.Shape = draw.CircleGlyph{}
	joints.GlyphStyle.Radius = vg.Points(4)

	p.Add(plotter.NewGrid(), line, joints)
	return p, nil
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(8)

	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.LineStyle.Width = vg.Points(1.5)
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.X.Padding = vg.Points(10)
	p.Y.Padding = vg.Points(10)
}

// SavePosePNG writes the pose plot of s to path. widthIn and heightIn are in
// inches.
func SavePosePNG(s kinematics.JointState, path string, widthIn, heightIn float64) error {
	p, err := PosePlot(s)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(pngDPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}
