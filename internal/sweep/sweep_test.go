package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
)

func TestRun_Endpoints(t *testing.T) {
	samples, err := Run(kinematics.Defaults(), form.A1, 0, 90, 4)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}

	want := []float64{0, 30, 60, 90}
	for i, s := range samples {
		if math.Abs(s.Value-want[i]) > 1e-12 {
			t.Errorf("sample %d value = %v, want %v", i, s.Value, want[i])
		}
	}

	base := kinematics.Defaults()
	base.Theta1 = 90
	if samples[3].Output != kinematics.Forward(base) {
		t.Errorf("last sample = %+v, want %+v", samples[3].Output, kinematics.Forward(base))
	}
}

func TestRun_HoldsOtherFields(t *testing.T) {
	samples, err := Run(kinematics.Defaults(), form.O2, -1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	// ω3 and ω1 stay at 6 and 4
	for _, s := range samples {
		if want := 10 + s.Value; math.Abs(s.Output.HeadingRate-want) > 1e-12 {
			t.Errorf("heading rate at ω2=%v = %v, want %v", s.Value, s.Output.HeadingRate, want)
		}
	}
}

func TestRun_TooFewSteps(t *testing.T) {
	if _, err := Run(kinematics.Defaults(), form.L1, 0, 1, 1); !errors.Is(err, ErrTooFewSteps) {
		t.Errorf("expected ErrTooFewSteps, got %v", err)
	}
}

func TestRun_InvalidField(t *testing.T) {
	if _, err := Run(kinematics.Defaults(), form.Field(-1), 0, 1, 2); !errors.Is(err, form.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestSeries(t *testing.T) {
	samples, err := Run(kinematics.JointState{L1: 1, L2: 1, L3: 1}, form.L3, 0, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	x, err := Series(samples, "x")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 3, 4}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}

	for _, q := range Quantities {
		if _, err := Series(samples, q); err != nil {
			t.Errorf("quantity %s: %v", q, err)
		}
		if Unit(q) == "" {
			t.Errorf("quantity %s has no unit", q)
		}
	}
}

func TestSeries_UnknownQuantity(t *testing.T) {
	if _, err := Series(nil, "torque"); !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("expected ErrUnknownQuantity, got %v", err)
	}
}
