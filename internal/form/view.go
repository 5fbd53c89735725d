package form

import (
	"fmt"

	"github.com/san-kum/fk3r/internal/kinematics"
)

const Title = "3r: forward kinematics"

const (
	PositionLabel = "(x, y, ɸ)"
	VelocityLabel = "(vₓ, vᵧ, ɸ̇)"
)

// View is a declarative description of the form for one state. Front ends
// turn it into widgets; it carries no behavior.
type View struct {
	Title   string
	Groups  []GroupView
	Results Results
}

type GroupView struct {
	Group  Group
	Name   string
	Inputs []Input
}

// Input is one labeled field: Symbol, Subscript, " = ", Value, Unit.
type Input struct {
	Field     Field
	Symbol    string
	Subscript string
	Unit      string
	Value     string
}

type Results struct {
	Output   kinematics.Output
	Position string
	Velocity string
}

// Render builds the view of s. It is pure: the same state always gives the
// same view.
func Render(s kinematics.JointState) View {
	v := View{Title: Title}
	for g := Lengths; g <= Velocities; g++ {
		gv := GroupView{Group: g, Name: g.String()}
		for _, f := range Fields() {
			if f.Group() != g {
				continue
			}
			gv.Inputs = append(gv.Inputs, Input{
				Field:     f,
				Symbol:    f.Symbol(),
				Subscript: f.Subscript(),
				Unit:      f.Unit(),
				Value:     FormatValue(f.Get(s)),
			})
		}
		v.Groups = append(v.Groups, gv)
	}

	out := kinematics.Forward(s)
	v.Results = Results{
		Output:   out,
		Position: FormatPosition(out),
		Velocity: FormatVelocity(out),
	}
	return v
}

func FormatPosition(out kinematics.Output) string {
	return fmt.Sprintf("(%.3f m, %.3f m, %sº)", out.X, out.Y, FormatValue(out.Heading))
}

func FormatVelocity(out kinematics.Output) string {
	return fmt.Sprintf("(%.3f m/s, %.3f m/s, %s rad/s)", out.VX, out.VY, FormatValue(out.HeadingRate))
}
