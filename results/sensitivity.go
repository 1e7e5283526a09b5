// SPDX-License-Identifier: MIT
// Package results: gate-delay sensitivity analysis.

package results

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/ssta/circuit"
	"github.com/katalvlaran/ssta/expr"
)

const (
	// varianceThreshold filters effectively-deterministic delays out of
	// the sensitivity report.
	varianceThreshold = 1e-10

	// gradientThreshold drops gates the objective is flat against.
	gradientThreshold = 1e-10
)

// EndpointScore is one endpoint of the objective: its LAT statistics and
// the μ+σ score used for selection.
type EndpointScore struct {
	Endpoint string
	Mean     float64
	Std      float64
	Score    float64
}

// GateSensitivity is the impact of one instance delay on the objective.
type GateSensitivity struct {
	Instance    string
	OutputNode  string
	InputSignal string
	GateType    string
	GradMu      float64
	GradSigma   float64
}

// Magnitude is the ranking key |∂F/∂μ| + |∂F/∂σ|.
func (gs GateSensitivity) Magnitude() float64 {
	return math.Abs(gs.GradMu) + math.Abs(gs.GradSigma)
}

// SensitivityResults bundles the selected endpoints, the objective value,
// and the ranked gate sensitivities.
type SensitivityResults struct {
	TopPaths  []EndpointScore
	Objective float64
	Gates     []GateSensitivity
}

// Sensitivity ranks gate delays by their impact on the worst endpoints.
//
// Algorithm:
//
//  1. Score every endpoint (outputs and flip-flop data inputs) as μ+σ —
//     the linear proxy for worst-case LAT — and keep the top n.
//  2. Build F = log Σ exp(μ_e + σ_e) over the survivors' symbolic
//     moments: a smooth approximation of max(μ+σ) with no kinks.
//  3. Zero all gradients, run one reverse pass from F.
//  4. Read ∂F/∂μ and ∂F/∂σ off every instance's cloned delay variables,
//     keep those above the thresholds, and sort by magnitude.
func Sensitivity(g *circuit.Graph, n int) (*SensitivityResults, error) {
	res := &SensitivityResults{}

	// 1) Endpoint selection.
	scores, err := scoreEndpoints(g)
	if err != nil {
		return nil, err
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}

		return scores[i].Endpoint < scores[j].Endpoint
	})
	if n >= 0 && len(scores) > n {
		scores = scores[:n]
	}
	res.TopPaths = scores
	if len(scores) == 0 {
		return res, nil
	}

	// 2) The log-sum-exp objective over symbolic moments.
	space := g.Space()
	sum := space.Graph().Const(0.0)
	for _, sc := range scores {
		id, _ := g.Signal(sc.Endpoint)
		meanE, err := space.MeanExpr(id)
		if err != nil {
			return nil, err
		}
		stdE, err := space.StdExpr(id)
		if err != nil {
			return nil, err
		}
		sum = expr.Add(sum, expr.Exp(expr.Add(meanE, stdE)))
	}
	objective := expr.Log(sum)

	// 3) One clean reverse pass.
	space.Graph().ZeroAllGrad()
	if err = objective.Backward(); err != nil {
		return nil, err
	}
	if res.Objective, err = objective.Value(); err != nil {
		return nil, err
	}

	// 4) Harvest per-instance gradients.
	if err = collectGates(g, res); err != nil {
		return nil, err
	}

	return res, nil
}

// scoreEndpoints gathers (μ, σ, μ+σ) for every endpoint that resolves to
// a signal.
func scoreEndpoints(g *circuit.Graph) ([]EndpointScore, error) {
	space := g.Space()

	var scores []EndpointScore
	for _, endpoint := range endpoints(g) {
		id, ok := g.Signal(endpoint)
		if !ok {
			continue
		}
		m, err := space.Mean(id)
		if err != nil {
			return nil, err
		}
		sd, err := space.Std(id)
		if err != nil {
			return nil, err
		}
		scores = append(scores, EndpointScore{
			Endpoint: endpoint,
			Mean:     m,
			Std:      sd,
			Score:    m + sd,
		})
	}

	return scores, nil
}

// collectGates reads the cloned-delay gradients instance by instance.
func collectGates(g *circuit.Graph, res *SensitivityResults) error {
	space := g.Space()

	for _, inst := range g.InstanceNames() {
		outputNode, _ := g.OutputOf(inst)
		gateType := g.GateTypeOf(inst)
		inputs := g.InputsOf(inst)

		delays := g.DelaysOf(inst)
		pins := make([]string, 0, len(delays))
		for pin := range delays {
			pins = append(pins, pin)
		}
		sort.Strings(pins)

		for _, pin := range pins {
			clone := delays[pin]
			v, err := space.Variance(clone)
			if err != nil {
				return err
			}
			if v < varianceThreshold {
				continue
			}

			inputSignal, err := resolvePin(pin, inputs)
			if err != nil {
				return err
			}

			gradMu := space.MuVar(clone).Gradient()
			gradSigma := space.SigmaVar(clone).Gradient()

			gs := GateSensitivity{
				Instance:    inst,
				OutputNode:  outputNode,
				InputSignal: inputSignal,
				GateType:    gateType,
				GradMu:      gradMu,
				GradSigma:   gradSigma,
			}
			if gs.Magnitude() > gradientThreshold {
				res.Gates = append(res.Gates, gs)
			}
		}
	}

	sort.SliceStable(res.Gates, func(i, j int) bool {
		mi, mj := res.Gates[i].Magnitude(), res.Gates[j].Magnitude()
		if mi != mj {
			return mi > mj
		}

		return res.Gates[i].Instance < res.Gates[j].Instance
	})

	return nil
}

// resolvePin maps a numeric pin name to the connected input signal.
// Non-numeric pin names pass through unchanged; a numeric pin outside the
// recorded input list is a metadata inconsistency.
func resolvePin(pin string, inputs []string) (string, error) {
	idx, err := strconv.Atoi(pin)
	if err != nil {
		return pin, nil
	}
	if idx < 0 || idx >= len(inputs) {
		return "", ErrPinIndex
	}

	return inputs[idx], nil
}
