package dataset

import (
	"math"
	"testing"
)

func TestInputs(t *testing.T) {
	x, y := 0.5, -2.0
	got := Inputs(AllFeatures(), x, y)
	want := []float64{0.5, -2.0, 0.25, 4.0, -1.0, math.Sin(0.5), math.Sin(-2.0)}
	if len(got) != len(want) {
		t.Fatalf("Inputs returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("input %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFeatureIDs(t *testing.T) {
	got := FeatureIDs(AllFeatures())
	want := []string{"x", "y", "x2", "y2", "xy", "sinx", "siny"}
	if len(got) != len(want) {
		t.Fatalf("FeatureIDs returned %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id %d = %q, want %q", i, got[i], want[i])
		}
	}

	def := FeatureIDs(DefaultFeatures())
	if len(def) != 2 || def[0] != "x" || def[1] != "y" {
		t.Errorf("default feature ids = %v, want [x y]", def)
	}
}

func TestSelectFeatures(t *testing.T) {
	features, err := SelectFeatures([]string{"xy", "x"})
	if err != nil {
		t.Fatalf("SelectFeatures failed: %v", err)
	}
	if len(features) != 2 || features[0].ID != "xy" || features[1].ID != "x" {
		t.Errorf("SelectFeatures order = %v", FeatureIDs(features))
	}

	if _, err := SelectFeatures([]string{"x", "cube"}); err == nil {
		t.Error("SelectFeatures accepted unknown id")
	}
}
