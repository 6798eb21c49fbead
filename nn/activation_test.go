package nn

import (
	"math"
	"testing"
)

func TestActivationValues(t *testing.T) {
	tests := []struct {
		act Activation
		x   float64
		out float64
		der float64
	}{
		{Identity{}, -3.5, -3.5, 1},
		{Identity{}, 0, 0, 1},
		{Identity{}, 2.25, 2.25, 1},
		{ReLU{}, -1.5, 0, 0},
		{ReLU{}, 0, 0, 0},
		{ReLU{}, 1.5, 1.5, 1},
		{Sigmoid{}, 0, 0.5, 0.25},
		{Tanh{}, 0, 0, 1},
	}
	for _, tt := range tests {
		if got := tt.act.Output(tt.x); math.Abs(got-tt.out) > 1e-12 {
			t.Errorf("%s.Output(%v) = %v, want %v", tt.act, tt.x, got, tt.out)
		}
		if got := tt.act.Der(tt.x); math.Abs(got-tt.der) > 1e-12 {
			t.Errorf("%s.Der(%v) = %v, want %v", tt.act, tt.x, got, tt.der)
		}
	}
}

func TestSigmoidDerMatchesOutput(t *testing.T) {
	// der must equal out*(1-out) at every point
	s := Sigmoid{}
	for _, x := range []float64{-4, -1, -0.1, 0, 0.1, 1, 4} {
		out := s.Output(x)
		want := out * (1 - out)
		if got := s.Der(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("Sigmoid.Der(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestTanhSaturation(t *testing.T) {
	th := Tanh{}
	if got := th.Output(math.Inf(1)); got != 1 {
		t.Errorf("Tanh.Output(+Inf) = %v, want 1", got)
	}
	if got := th.Output(math.Inf(-1)); got != -1 {
		t.Errorf("Tanh.Output(-Inf) = %v, want -1", got)
	}
	if got := th.Der(math.Inf(1)); got != 0 {
		t.Errorf("Tanh.Der(+Inf) = %v, want 0", got)
	}
	out := th.Output(2.0)
	if want := 1 - out*out; math.Abs(th.Der(2.0)-want) > 1e-12 {
		t.Errorf("Tanh.Der(2) = %v, want %v", th.Der(2.0), want)
	}
}

func TestSquareError(t *testing.T) {
	se := SquareError{}
	if got := se.Error(3, 1); got != 2 {
		t.Errorf("SquareError.Error(3, 1) = %v, want 2", got)
	}
	if got := se.Error(1, 1); got != 0 {
		t.Errorf("SquareError.Error(1, 1) = %v, want 0", got)
	}
	if got := se.Der(3, 1); got != 2 {
		t.Errorf("SquareError.Der(3, 1) = %v, want 2", got)
	}
	if got := se.Der(0.25, 1); got != -0.75 {
		t.Errorf("SquareError.Der(0.25, 1) = %v, want -0.75", got)
	}
}

func TestRegularizationValues(t *testing.T) {
	l1, l2 := L1{}, L2{}

	if got := l1.Output(-2.5); got != 2.5 {
		t.Errorf("L1.Output(-2.5) = %v, want 2.5", got)
	}
	if got := l1.Der(-2.5); got != -1 {
		t.Errorf("L1.Der(-2.5) = %v, want -1", got)
	}
	if got := l1.Der(2.5); got != 1 {
		t.Errorf("L1.Der(2.5) = %v, want 1", got)
	}
	if got := l1.Der(0); got != 0 {
		t.Errorf("L1.Der(0) = %v, want 0", got)
	}

	if got := l2.Output(3); got != 4.5 {
		t.Errorf("L2.Output(3) = %v, want 4.5", got)
	}
	if got := l2.Der(-3); got != -3 {
		t.Errorf("L2.Der(-3) = %v, want -3", got)
	}
}

func TestLookupNames(t *testing.T) {
	for name, act := range ActivationLookup {
		if act.String() != name {
			t.Errorf("ActivationLookup[%q].String() = %q", name, act.String())
		}
	}
	for name, ef := range ErrorLookup {
		if ef.String() != name {
			t.Errorf("ErrorLookup[%q].String() = %q", name, ef.String())
		}
	}
	for name, reg := range RegularizationLookup {
		if name == "none" {
			if reg != nil {
				t.Errorf("RegularizationLookup[none] = %v, want nil", reg)
			}
			continue
		}
		if reg.String() != name {
			t.Errorf("RegularizationLookup[%q].String() = %q", name, reg.String())
		}
	}
}
