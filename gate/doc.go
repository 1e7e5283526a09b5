// Package gate models library gates and their circuit instances.
//
// A Gate is one entry of the delay library: a type name plus a map from
// (input pin, output pin) arcs to Normal delay variables. Many instances
// share one Gate by reference.
//
// An Instance is one invocation of a Gate at a circuit location. Its
// output LAT is
//
//	output = MAX over wired arcs ( input[pin] + clone(delay[pin→out]) )
//
// with each delay cloned per invocation. The clones matter: sensitivity
// analysis attributes gradients to the cloned variables, so impact lands
// on the instance, not on the shared library entry. Arcs are folded in
// sorted (in, out) pin order, which fixes the canonical expression shape
// and keeps reports byte-identical across runs.
package gate
