// Package rv: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); tests match them via errors.Is.

package rv

import "errors"

var (
	// ErrNegativeVariance indicates a variance below -MinVariance was
	// produced — a modeling or implementation bug, not drift.
	ErrNegativeVariance = errors.New("rv: negative variance")

	// ErrNumericInstability indicates a moment or covariance evaluated to
	// NaN, or drifted outside tolerable bounds even after clamping.
	ErrNumericInstability = errors.New("rv: numeric instability")

	// ErrNotCloneable indicates Clone was called on a non-Normal node;
	// only leaves may be duplicated, operation nodes share by reference.
	ErrNotCloneable = errors.New("rv: only Normal leaves can be cloned")

	// ErrInternal indicates an unreachable covariance decomposition case —
	// a bug indicator, never a user-triggered condition.
	ErrInternal = errors.New("rv: internal: unreachable decomposition")
)
