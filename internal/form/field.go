package form

import (
	"fmt"
	"strings"

	"github.com/san-kum/fk3r/internal/kinematics"
)

// Field identifies one of the nine scalar inputs of the form.
type Field int

const (
	L1 Field = iota
	L2
	L3
	A1
	A2
	A3
	O1
	O2
	O3
	numFields
)

var fieldIDs = [numFields]string{"L1", "L2", "L3", "A1", "A2", "A3", "O1", "O2", "O3"}

// Fields returns every field in display order.
func Fields() []Field {
	fs := make([]Field, numFields)
	for i := range fs {
		fs[i] = Field(i)
	}
	return fs
}

// ParseField resolves an identifier such as "L1" or "a2", case-insensitive.
func ParseField(id string) (Field, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	for i, name := range fieldIDs {
		if name == id {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, id)
}

func (f Field) Valid() bool { return f >= 0 && f < numFields }

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldIDs[f]
}

// Group is the category a field is listed under.
type Group int

const (
	Lengths Group = iota
	Angles
	Velocities
)

func (g Group) String() string {
	switch g {
	case Lengths:
		return "Lengths"
	case Angles:
		return "Angles"
	case Velocities:
		return "Velocities"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

func (f Field) Group() Group { return Group(f / 3) }

// Index is the joint number, 1 to 3.
func (f Field) Index() int { return int(f%3) + 1 }

func (f Field) Symbol() string {
	switch f.Group() {
	case Lengths:
		return "L"
	case Angles:
		return "θ"
	default:
		return "ω"
	}
}

func (f Field) Subscript() string { return fmt.Sprint(f.Index()) }

// Unit is the suffix printed after the input, including its leading space
// where there is one.
func (f Field) Unit() string {
	switch f.Group() {
	case Lengths:
		return " m"
	case Angles:
		return "º"
	default:
		return " rad/s"
	}
}

// Get reads the field from a joint state.
func (f Field) Get(s kinematics.JointState) float64 {
	switch f {
	case L1:
		return s.L1
	case L2:
		return s.L2
	case L3:
		return s.L3
	case A1:
		return s.Theta1
	case A2:
		return s.Theta2
	case A3:
		return s.Theta3
	case O1:
		return s.Omega1
	case O2:
		return s.Omega2
	case O3:
		return s.Omega3
	}
	return 0
}

// Set writes the field into a joint state, leaving the other eight untouched.
func (f Field) Set(s *kinematics.JointState, v float64) {
	switch f {
	case L1:
		s.L1 = v
	case L2:
		s.L2 = v
	case L3:
		s.L3 = v
	case A1:
		s.Theta1 = v
	case A2:
		s.Theta2 = v
	case A3:
		s.Theta3 = v
	case O1:
		s.Omega1 = v
	case O2:
		s.Omega2 = v
	case O3:
		s.Omega3 = v
	}
}
