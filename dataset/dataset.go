package dataset

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Example is one labeled 2-D point. Label holds the class for the
// classification sets (+1 or -1) or a continuous value in [-1, 1] for the
// regression sets.
type Example struct {
	X     float64
	Y     float64
	Label float64
}

// Generator produces n examples at the given noise level (0 to 0.5) from
// src. A nil src falls back to the shared global source.
type Generator func(n int, noise float64, src rand.Source) []Example

// Lookup resolves a generator by its command-line name.
var Lookup = map[string]Generator{
	"gauss":     TwoGauss,
	"circle":    Circle,
	"xor":       XOR,
	"spiral":    Spiral,
	"reg-plane": RegressPlane,
	"reg-gauss": RegressGauss,
}

// TwoGauss samples two Gaussian clusters: one centered at (2,2) labeled +1,
// one at (-2,-2) labeled -1. Noise remaps linearly onto cluster variance in
// [0.5, 4].
func TwoGauss(n int, noise float64, src rand.Source) []Example {
	variance := remap(noise, 0, 0.5, 0.5, 4)
	sigma := math.Sqrt(variance)
	points := make([]Example, 0, n)

	genGauss := func(cx, cy, label float64, count int) {
		xNorm := distuv.Normal{Mu: cx, Sigma: sigma, Src: src}
		yNorm := distuv.Normal{Mu: cy, Sigma: sigma, Src: src}
		for i := 0; i < count; i++ {
			points = append(points, Example{X: xNorm.Rand(), Y: yNorm.Rand(), Label: label})
		}
	}
	genGauss(2, 2, 1, n/2)
	genGauss(-2, -2, -1, n-n/2)
	return points
}

// Circle samples a disk of radius 5: points inside half the radius label
// +1, points on the outer ring from 0.7 to the full radius label -1. Labels
// are decided after noise displacement, so noise bleeds classes across the
// boundary.
func Circle(n int, noise float64, src rand.Source) []Example {
	const radius = 5.0
	points := make([]Example, 0, n)

	genArc := func(rMin, rMax float64, count int) {
		for i := 0; i < count; i++ {
			r := randUniform(rMin, rMax, src)
			angle := randUniform(0, 2*math.Pi, src)
			x := r * math.Sin(angle)
			y := r * math.Cos(angle)
			noiseX := randUniform(-radius, radius, src) * noise
			noiseY := randUniform(-radius, radius, src) * noise
			label := -1.0
			if math.Hypot(x+noiseX, y+noiseY) < radius*0.5 {
				label = 1
			}
			points = append(points, Example{X: x, Y: y, Label: label})
		}
	}
	genArc(0, radius*0.5, n/2)
	genArc(radius*0.7, radius, n-n/2)
	return points
}

// XOR samples uniformly over [-5, 5]², pads every coordinate 0.3 away from
// the axes, and labels by the sign of x·y after noise displacement.
func XOR(n int, noise float64, src rand.Source) []Example {
	const padding = 0.3
	points := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := randUniform(-5, 5, src)
		if x > 0 {
			x += padding
		} else {
			x -= padding
		}
		y := randUniform(-5, 5, src)
		if y > 0 {
			y += padding
		} else {
			y -= padding
		}
		noiseX := randUniform(-5, 5, src) * noise
		noiseY := randUniform(-5, 5, src) * noise
		label := -1.0
		if (x+noiseX)*(y+noiseY) >= 0 {
			label = 1
		}
		points = append(points, Example{X: x, Y: y, Label: label})
	}
	return points
}

// Spiral samples two interleaved spiral arms, the +1 arm at phase 0 and the
// -1 arm half a turn behind. Noise jitters each coordinate by a uniform
// draw.
func Spiral(n int, noise float64, src rand.Source) []Example {
	points := make([]Example, 0, n)

	genArm := func(phase, label float64, count int) {
		for i := 0; i < count; i++ {
			r := float64(i) / float64(count) * 5
			t := 1.75*float64(i)/float64(count)*2*math.Pi + phase
			x := r*math.Sin(t) + randUniform(-1, 1, src)*noise
			y := r*math.Cos(t) + randUniform(-1, 1, src)*noise
			points = append(points, Example{X: x, Y: y, Label: label})
		}
	}
	genArm(0, 1, n/2)
	genArm(math.Pi, -1, n-n/2)
	return points
}

// RegressPlane samples uniformly over [-6, 6]² with a continuous label
// linear in x+y, clamped to [-1, 1].
func RegressPlane(n int, noise float64, src rand.Source) []Example {
	const radius = 6.0
	points := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := randUniform(-radius, radius, src)
		y := randUniform(-radius, radius, src)
		noiseX := randUniform(-radius, radius, src) * noise
		noiseY := randUniform(-radius, radius, src) * noise
		label := clampedRemap(x+noiseX+y+noiseY, -10, 10, -1, 1)
		points = append(points, Example{X: x, Y: y, Label: label})
	}
	return points
}

// Gaussian bump centers with their label signs for RegressGauss.
var bumps = [][3]float64{
	{-4, 2.5, 1},
	{0, 2.5, -1},
	{4, 2.5, 1},
	{-4, -2.5, -1},
	{0, -2.5, 1},
	{4, -2.5, -1},
}

// RegressGauss samples uniformly over [-6, 6]² with a continuous label from
// a grid of positive and negative bumps; the bump nearest the (noise
// displaced) point dominates and influence fades to zero two units out.
func RegressGauss(n int, noise float64, src rand.Source) []Example {
	const radius = 6.0
	label := func(x, y float64) float64 {
		best := 0.0
		for _, b := range bumps {
			v := b[2] * clampedRemap(math.Hypot(x-b[0], y-b[1]), 0, 2, 1, 0)
			if math.Abs(v) > math.Abs(best) {
				best = v
			}
		}
		return best
	}

	points := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := randUniform(-radius, radius, src)
		y := randUniform(-radius, radius, src)
		noiseX := randUniform(-radius, radius, src) * noise
		noiseY := randUniform(-radius, radius, src) * noise
		points = append(points, Example{X: x, Y: y, Label: label(x+noiseX, y+noiseY)})
	}
	return points
}

// Shuffle permutes examples in place.
func Shuffle(examples []Example, src rand.Source) {
	swap := func(i, j int) { examples[i], examples[j] = examples[j], examples[i] }
	if src == nil {
		rand.Shuffle(len(examples), swap)
		return
	}
	rand.New(src).Shuffle(len(examples), swap)
}

// Split divides examples at ratio in [0, 1]: the first part trains, the
// rest evaluates. Shuffle first for a random split.
func Split(examples []Example, ratio float64) (train, test []Example) {
	cut := int(float64(len(examples)) * ratio)
	if cut < 0 {
		cut = 0
	}
	if cut > len(examples) {
		cut = len(examples)
	}
	return examples[:cut], examples[cut:]
}

func randUniform(a, b float64, src rand.Source) float64 {
	return distuv.Uniform{Min: a, Max: b, Src: src}.Rand()
}

// remap linearly maps v from [lo, hi] onto [outLo, outHi].
func remap(v, lo, hi, outLo, outHi float64) float64 {
	return outLo + (v-lo)*(outHi-outLo)/(hi-lo)
}

func clampedRemap(v, lo, hi, outLo, outHi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return remap(v, lo, hi, outLo, outHi)
}
