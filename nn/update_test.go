package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestUpdatePlainGradientStep(t *testing.T) {
	net, err := Build([]int{2, 2, 1}, Tanh{}, Identity{}, nil, []string{"x", "y"}, false, rand.NewSource(31))
	require.NoError(t, err)

	inputs := [][]float64{{0.5, -0.5}, {1, 0.25}, {-0.75, 2}}
	for _, in := range inputs {
		_, err := net.Forward(in)
		require.NoError(t, err)
		net.Backward(1.0, SquareError{})
	}

	type snap struct {
		weight float64
		acc    float64
		n      int
	}
	weights := make([]snap, len(net.Links))
	for i, link := range net.Links {
		weights[i] = snap{link.Weight, link.AccErrorDer, link.NumAccumulatedDers}
		assert.Equal(t, 3, link.NumAccumulatedDers, "link %s accumulation count", link.ID)
	}
	biases := make([]snap, len(net.Nodes))
	for i, node := range net.Nodes {
		biases[i] = snap{node.Bias, node.AccInputDer, node.NumAccumulatedDers}
	}

	const lr = 0.1
	net.Update(lr, 0)

	for i, link := range net.Links {
		want := weights[i].weight - lr/float64(weights[i].n)*weights[i].acc
		assert.InDelta(t, want, link.Weight, 1e-15, "link %s weight after update", link.ID)
		assert.Zero(t, link.AccErrorDer, "link %s accErrorDer reset", link.ID)
		assert.Zero(t, link.NumAccumulatedDers, "link %s count reset", link.ID)
		assert.False(t, link.IsDead, "link %s must stay alive without regularization", link.ID)
	}
	for _, layer := range net.Layers[1:] {
		for _, idx := range layer {
			node := net.Nodes[idx]
			want := biases[idx].weight - lr*biases[idx].acc/float64(biases[idx].n)
			assert.InDelta(t, want, node.Bias, 1e-15, "node %s bias after update", node.ID)
			assert.Zero(t, node.AccInputDer, "node %s accInputDer reset", node.ID)
			assert.Zero(t, node.NumAccumulatedDers, "node %s count reset", node.ID)
		}
	}
}

func TestUpdateWithoutAccumulationIsNoOp(t *testing.T) {
	net, err := Build([]int{2, 3, 1}, Tanh{}, Tanh{}, L2{}, []string{"x", "y"}, false, rand.NewSource(37))
	require.NoError(t, err)

	weights := make([]float64, len(net.Links))
	for i, link := range net.Links {
		weights[i] = link.Weight
	}
	biases := make([]float64, len(net.Nodes))
	for i, node := range net.Nodes {
		biases[i] = node.Bias
	}

	net.Update(0.5, 0.5)

	for i, link := range net.Links {
		assert.Equal(t, weights[i], link.Weight, "link %s weight", link.ID)
	}
	for i, node := range net.Nodes {
		assert.Equal(t, biases[i], node.Bias, "node %s bias", node.ID)
	}
}

func TestUpdateL1PrunesOnZeroCrossing(t *testing.T) {
	net, err := Build([]int{2, 1}, Identity{}, Identity{}, L1{}, []string{"x", "y"}, true, nil)
	require.NoError(t, err)

	link := &net.Links[0]
	link.Weight = 0.1
	link.NumAccumulatedDers = 1 // no gradient, pure penalty step

	net.Update(1.0, 0.2)

	assert.True(t, link.IsDead, "penalty step across zero must kill the link")
	assert.Zero(t, link.Weight, "pruned weight pins at 0")

	// the untouched sibling link had no accumulations and stays alive
	assert.False(t, net.Links[1].IsDead)
	assert.Zero(t, net.Links[1].Weight)
}

func TestUpdateL1KeepsSameSignWeight(t *testing.T) {
	net, err := Build([]int{2, 1}, Identity{}, Identity{}, L1{}, []string{"x", "y"}, true, nil)
	require.NoError(t, err)

	link := &net.Links[0]
	link.Weight = 0.5
	link.NumAccumulatedDers = 1

	net.Update(1.0, 0.2)

	assert.False(t, link.IsDead)
	assert.InDelta(t, 0.3, link.Weight, 1e-15)
}

func TestUpdateL2NeverPrunes(t *testing.T) {
	net, err := Build([]int{2, 1}, Identity{}, Identity{}, L2{}, []string{"x", "y"}, true, nil)
	require.NoError(t, err)

	link := &net.Links[0]
	link.Weight = 0.1
	link.NumAccumulatedDers = 1

	// penalty step large enough to flip the sign
	net.Update(1.0, 15)

	assert.False(t, link.IsDead, "L2 may cross zero but never prunes")
	assert.InDelta(t, 0.1-1.0*15*0.1, link.Weight, 1e-15)
}

func TestUpdateRegularizationUsesPreStepWeight(t *testing.T) {
	net, err := Build([]int{1, 1}, Identity{}, Identity{}, L1{}, []string{"x"}, true, nil)
	require.NoError(t, err)

	// gradient step flips the weight from +1 to -2; the penalty derivative
	// must still be the sign of the old weight (+1), not the new one
	link := &net.Links[0]
	link.Weight = 1.0
	link.AccErrorDer = 30
	link.NumAccumulatedDers = 1

	net.Update(0.1, 1.0)

	assert.False(t, link.IsDead)
	assert.InDelta(t, -2.1, link.Weight, 1e-12)
}

func TestDeadLinkStaysDead(t *testing.T) {
	net, err := Build([]int{2, 1}, Identity{}, Identity{}, L1{}, []string{"x", "y"}, true, nil)
	require.NoError(t, err)

	link := &net.Links[0]
	link.Weight = 0.1
	link.NumAccumulatedDers = 1
	net.Update(1.0, 0.2)
	require.True(t, link.IsDead)

	// full training cycles leave the dead link untouched
	for i := 0; i < 3; i++ {
		_, err := net.Forward([]float64{1, 1})
		require.NoError(t, err)
		net.Backward(1.0, SquareError{})
		net.Update(0.3, 0.2)
	}

	assert.True(t, link.IsDead)
	assert.Zero(t, link.Weight)
	assert.Zero(t, link.ErrorDer)
	assert.Zero(t, link.AccErrorDer)
	assert.Zero(t, link.NumAccumulatedDers)
}
