// Package ssta is a statistical static timing analyzer for gate-level
// netlists under a Gaussian delay model.
//
// 🚀 What is ssta?
//
//	Given a delay library (.dlib) and a structural netlist (.bench), it
//	computes the latest-arrival-time distribution of every signal as a
//	symbolic random variable, propagates correlations through the Clark
//	max-approximation, and derives four reports: per-signal μ/σ, the
//	pairwise correlation matrix, the top-N critical paths, and a
//	gradient-based gate sensitivity ranking.
//
// Everything is organized under six subpackages plus the executable:
//
//	expr/     — differentiable expression DAG (forward eval + reverse-mode
//	            autodiff) backing the sensitivity objective
//	rv/       — the random-variable algebra: Normal/Add/Sub/Max/Max0
//	            nodes in an arena, lazy moments, the memoized covariance
//	            engine, and the max-moment scalar helpers
//	gate/     — library gates and per-circuit instances with cloned
//	            per-invocation delays
//	netlist/  — tokenizer and the .dlib / .bench parsers
//	circuit/  — topologically scheduled netlist resolution, flip-flop
//	            handling, and path metadata
//	results/  — LAT table, correlation matrix, critical paths,
//	            sensitivity analysis, and the report formatters
//	cmd/ssta  — the command-line front end
//
// Quick ASCII picture of the dataflow:
//
//	.dlib ──► gate library ─┐
//	                        ├──► circuit.Build ──► signal table ──► results
//	.bench ──► net lines  ──┘
//
// The pipeline is deliberately single-threaded and deterministic: given
// the same inputs, every report is byte-identical across runs.
package ssta
