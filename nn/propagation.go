package nn

import "fmt"

// Forward pushes one input vector through the network and returns the value
// of the designated output node. Input nodes take the raw input value as
// their output; every node after that computes bias + the weighted sum of
// its live incoming links, then applies its activation. Dead links
// contribute nothing regardless of their stored weight.
func (net *Network) Forward(inputs []float64) (float64, error) {
	inputLayer := net.Layers[0]
	if len(inputs) != len(inputLayer) {
		return 0, fmt.Errorf("%w: network takes %d inputs, got %d",
			ErrInputSizeMismatch, len(inputLayer), len(inputs))
	}
	for i, idx := range inputLayer {
		net.Nodes[idx].Output = inputs[i]
	}

	for _, layer := range net.Layers[1:] {
		for _, idx := range layer {
			node := &net.Nodes[idx]
			total := node.Bias
			for _, li := range node.InLinks {
				link := &net.Links[li]
				if link.IsDead {
					continue
				}
				total += link.Weight * net.Nodes[link.Source].Output
			}
			node.TotalInput = total
			node.Output = node.Activation.Output(total)
		}
	}

	return net.OutputNode().Output, nil
}

// Backward accumulates error derivatives for one example. It must run right
// after a Forward call on the same network, since it reads the TotalInput
// and Output values the forward pass left behind. Accumulators keep summing across
// calls until Update resets them; dead links are skipped and their
// derivative fields stay untouched.
func (net *Network) Backward(target float64, errFunc ErrorFunction) {
	out := net.OutputNode()
	out.OutputDer = errFunc.Der(out.Output, target)

	for layerIdx := len(net.Layers) - 1; layerIdx >= 1; layerIdx-- {
		for _, idx := range net.Layers[layerIdx] {
			node := &net.Nodes[idx]
			node.InputDer = node.OutputDer * node.Activation.Der(node.TotalInput)
			node.AccInputDer += node.InputDer
			node.NumAccumulatedDers++

			for _, li := range node.InLinks {
				link := &net.Links[li]
				if link.IsDead {
					continue
				}
				link.ErrorDer = node.InputDer * net.Nodes[link.Source].Output
				link.AccErrorDer += link.ErrorDer
				link.NumAccumulatedDers++
			}
		}
		if layerIdx == 1 {
			continue
		}
		for _, idx := range net.Layers[layerIdx-1] {
			node := &net.Nodes[idx]
			node.OutputDer = 0
			for _, li := range node.OutLinks {
				link := &net.Links[li]
				if link.IsDead {
					continue
				}
				node.OutputDer += link.Weight * net.Nodes[link.Dest].InputDer
			}
		}
	}
}

// Update applies the accumulated derivatives, averaged by their counts, to
// every bias and live weight, then applies the regularization penalty on
// top. An L1 penalty step that would push a weight across zero pins the
// weight at 0 and kills the link instead; this is the only place a link
// transitions to dead. All touched accumulators reset to zero.
func (net *Network) Update(learningRate, regularizationRate float64) {
	for _, layer := range net.Layers[1:] {
		for _, idx := range layer {
			node := &net.Nodes[idx]
			if node.NumAccumulatedDers > 0 {
				node.Bias -= learningRate * node.AccInputDer / float64(node.NumAccumulatedDers)
				node.AccInputDer = 0
				node.NumAccumulatedDers = 0
			}

			for _, li := range node.InLinks {
				link := &net.Links[li]
				if link.IsDead {
					continue
				}
				regulDer := 0.0
				if link.Regularization != nil {
					regulDer = link.Regularization.Der(link.Weight)
				}
				if link.NumAccumulatedDers > 0 {
					link.Weight -= learningRate / float64(link.NumAccumulatedDers) * link.AccErrorDer
					newWeight := link.Weight - learningRate*regularizationRate*regulDer
					if _, isL1 := link.Regularization.(L1); isL1 && link.Weight*newWeight < 0 {
						link.Weight = 0
						link.IsDead = true
					} else {
						link.Weight = newWeight
					}
					link.AccErrorDer = 0
					link.NumAccumulatedDers = 0
				}
			}
		}
	}
}
