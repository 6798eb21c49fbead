package nn

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Node is a computational unit: a bias, an activation, and the links that
// feed it and leave it. InLinks and OutLinks hold indices into the owning
// Network's link arena. TotalInput and Output are only meaningful after a
// forward pass.
type Node struct {
	ID                 string
	Bias               float64
	TotalInput         float64
	Output             float64
	OutputDer          float64
	InputDer           float64
	AccInputDer        float64
	NumAccumulatedDers int
	Activation         Activation
	InLinks            []int
	OutLinks           []int
}

// Link is a directed, weighted connection between nodes in adjacent layers.
// Source and Dest hold indices into the owning Network's node arena. Once
// IsDead is set the link is skipped everywhere and its weight stays 0.
type Link struct {
	ID                 string
	Source             int
	Dest               int
	Weight             float64
	IsDead             bool
	ErrorDer           float64
	AccErrorDer        float64
	NumAccumulatedDers int
	Regularization     Regularization
}

// Network is the node and link arenas plus the layer ordering. Layers lists
// node indices per layer; layer 0 is the input layer and the first node of
// the last layer carries the network's output value. A Network has no
// internal locking; callers sequence forward/backward/update themselves.
type Network struct {
	Nodes  []Node
	Links  []Link
	Layers [][]int
}

// Biases start here unless zero initialization is requested.
const initialBias = 0.1

// Build constructs a fully connected layered network. shape gives the node
// count per layer, first entry the input layer. inputIDs names the input
// nodes; every other node gets a decimal id from a running counter starting
// at "1". The output layer uses outputActivation, all other non-input layers
// use activation, and regularization (nil for none) attaches to every link.
// Weights draw uniformly from [-0.5, 0.5) using src (nil falls back to the
// shared global source); initZero instead starts all weights and biases at
// zero.
func Build(shape []int, activation, outputActivation Activation, regularization Regularization,
	inputIDs []string, initZero bool, src rand.Source) (*Network, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidShape, len(shape))
	}
	for i, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("%w: layer %d has %d nodes", ErrInvalidShape, i, n)
		}
	}
	if len(inputIDs) != shape[0] {
		return nil, fmt.Errorf("%w: input layer has %d nodes, got %d ids",
			ErrInvalidInputIDs, shape[0], len(inputIDs))
	}

	uniform := distuv.Uniform{Min: -0.5, Max: 0.5, Src: src}
	net := &Network{Layers: make([][]int, len(shape))}

	nextID := 1
	for layerIdx, numNodes := range shape {
		layer := make([]int, numNodes)
		for i := 0; i < numNodes; i++ {
			node := Node{Activation: activation}
			if layerIdx == 0 {
				node.ID = inputIDs[i]
			} else {
				node.ID = strconv.Itoa(nextID)
				nextID++
				if layerIdx == len(shape)-1 {
					node.Activation = outputActivation
				}
				if !initZero {
					node.Bias = initialBias
				}
			}
			layer[i] = len(net.Nodes)
			net.Nodes = append(net.Nodes, node)
		}
		net.Layers[layerIdx] = layer

		if layerIdx == 0 {
			continue
		}
		for _, dst := range layer {
			for _, from := range net.Layers[layerIdx-1] {
				link := Link{
					ID:             net.Nodes[from].ID + "-" + net.Nodes[dst].ID,
					Source:         from,
					Dest:           dst,
					Regularization: regularization,
				}
				if !initZero {
					link.Weight = uniform.Rand()
				}
				li := len(net.Links)
				net.Links = append(net.Links, link)
				net.Nodes[from].OutLinks = append(net.Nodes[from].OutLinks, li)
				net.Nodes[dst].InLinks = append(net.Nodes[dst].InLinks, li)
			}
		}
	}

	return net, nil
}

// OutputNode returns the designated output node, the first node of the last
// layer. Networks with a wider final layer are legal but only this node's
// value is ever read as the network output.
func (net *Network) OutputNode() *Node {
	last := net.Layers[len(net.Layers)-1]
	return &net.Nodes[last[0]]
}
