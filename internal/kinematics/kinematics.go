package kinematics

import "math"

const (
	DefaultLength = 1.0

	DefaultTheta1 = 25.0
	DefaultTheta2 = 310.0
	DefaultTheta3 = 60.0

	DefaultOmega1 = 4.0
	DefaultOmega2 = -2.0
	DefaultOmega3 = 6.0
)

// JointState is the joint-space description of the chain.
// Lengths are in meters, angles in degrees, angular velocities in rad/s.
type JointState struct {
	L1, L2, L3             float64
	Theta1, Theta2, Theta3 float64
	Omega1, Omega2, Omega3 float64
}

// Defaults returns the demonstration state the form starts with.
func Defaults() JointState {
	return JointState{
		L1: DefaultLength, L2: DefaultLength, L3: DefaultLength,
		Theta1: DefaultTheta1, Theta2: DefaultTheta2, Theta3: DefaultTheta3,
		Omega1: DefaultOmega1, Omega2: DefaultOmega2, Omega3: DefaultOmega3,
	}
}

func (s JointState) IsValid() bool {
	for _, v := range s.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s JointState) values() [9]float64 {
	return [9]float64{
		s.L1, s.L2, s.L3,
		s.Theta1, s.Theta2, s.Theta3,
		s.Omega1, s.Omega2, s.Omega3,
	}
}

// Output is the task-space state of the end-effector.
type Output struct {
	X, Y float64
	// Heading is the end-effector orientation in degrees, in (-180, 180].
	Heading float64
	VX, VY  float64
	// HeadingRate is ω1+ω2+ω3 in rad/s, not normalized.
	HeadingRate float64
}

type Point struct {
	X, Y float64
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Drawable reports whether the chain of s and its reach are finite. Huge
// finite lengths can still overflow once summed.
func Drawable(s JointState) bool {
	if r := Reach(s); math.IsNaN(r) || math.IsInf(r, 0) {
		return false
	}
	for _, p := range Chain(s) {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// NormalizeHeading maps an unbounded angle in degrees to its nearest
// representative in (-180, 180]. Halfway cases round the multiple of 360
// down, so 180 and -180 both map to 180.
func NormalizeHeading(deg float64) float64 {
	return deg - math.Ceil(deg/360-0.5)*360
}

// Forward maps a joint state to the end-effector output.
func Forward(s JointState) Output {
	a1 := Radians(s.Theta1)
	a12 := a1 + Radians(s.Theta2)
	a123 := a12 + Radians(s.Theta3)

	sin1, cos1 := math.Sincos(a1)
	sin12, cos12 := math.Sincos(a12)
	sin123, cos123 := math.Sincos(a123)

	w1 := s.Omega1
	w12 := w1 + s.Omega2
	w123 := w12 + s.Omega3

	return Output{
		X:           s.L1*cos1 + s.L2*cos12 + s.L3*cos123,
		Y:           s.L1*sin1 + s.L2*sin12 + s.L3*sin123,
		Heading:     NormalizeHeading(s.Theta1 + s.Theta2 + s.Theta3),
		VX:          -s.L1*w1*sin1 - s.L2*w12*sin12 - s.L3*w123*sin123,
		VY:          s.L1*w1*cos1 + s.L2*w12*cos12 + s.L3*w123*cos123,
		HeadingRate: w123,
	}
}

// Chain returns the base, the two intermediate joints and the end-effector.
func Chain(s JointState) [4]Point {
	a1 := Radians(s.Theta1)
	a12 := a1 + Radians(s.Theta2)
	a123 := a12 + Radians(s.Theta3)

	sin1, cos1 := math.Sincos(a1)
	sin12, cos12 := math.Sincos(a12)
	sin123, cos123 := math.Sincos(a123)

	var pts [4]Point
	pts[1] = Point{s.L1 * cos1, s.L1 * sin1}
	pts[2] = Point{pts[1].X + s.L2*cos12, pts[1].Y + s.L2*sin12}
	pts[3] = Point{pts[2].X + s.L3*cos123, pts[2].Y + s.L3*sin123}
	return pts
}

// Reach is the sum of the absolute link lengths, the radius of the
// workspace disk.
func Reach(s JointState) float64 {
	return math.Abs(s.L1) + math.Abs(s.L2) + math.Abs(s.L3)
}
