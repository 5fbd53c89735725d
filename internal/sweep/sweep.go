// Package sweep evaluates the forward kinematics while one form field moves
// across a range, for charting how the end-effector responds.
package sweep

import (
	"errors"
	"fmt"

	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
)

var (
	ErrTooFewSteps     = errors.New("sweep: need at least 2 steps")
	ErrUnknownQuantity = errors.New("sweep: unknown quantity")
)

// Quantities lists the names accepted by Series.
var Quantities = []string{"x", "y", "phi", "vx", "vy", "omega"}

type Sample struct {
	Value  float64
	Output kinematics.Output
}

// Run varies field f from `from` to `to` in steps evenly spaced samples,
// both ends included, holding every other field of base fixed.
func Run(base kinematics.JointState, f form.Field, from, to float64, steps int) ([]Sample, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, steps)
	}
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %s", form.ErrUnknownField, f)
	}

	samples := make([]Sample, steps)
	for i := range samples {
		v := from + (to-from)*float64(i)/float64(steps-1)
		s := base
		f.Set(&s, v)
		samples[i] = Sample{Value: v, Output: kinematics.Forward(s)}
	}
	return samples, nil
}

// Series extracts one output quantity from the samples.
func Series(samples []Sample, quantity string) ([]float64, error) {
	pick, err := selector(quantity)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = pick(s.Output)
	}
	return data, nil
}

func selector(quantity string) (func(kinematics.Output) float64, error) {
	switch quantity {
	case "x":
		return func(o kinematics.Output) float64 { return o.X }, nil
	case "y":
		return func(o kinematics.Output) float64 { return o.Y }, nil
	case "phi":
		return func(o kinematics.Output) float64 { return o.Heading }, nil
	case "vx":
		return func(o kinematics.Output) float64 { return o.VX }, nil
	case "vy":
		return func(o kinematics.Output) float64 { return o.VY }, nil
	case "omega":
		return func(o kinematics.Output) float64 { return o.HeadingRate }, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownQuantity, quantity, Quantities)
}

// Unit is the display unit of a quantity accepted by Series.
func Unit(quantity string) string {
	switch quantity {
	case "x", "y":
		return "m"
	case "phi":
		return "deg"
	case "vx", "vy":
		return "m/s"
	case "omega":
		return "rad/s"
	}
	return ""
}
