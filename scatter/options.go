// SPDX-License-Identifier: MIT

// Package scatter: functional configuration for Fill and NewPlan.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - None of the options changes the partition formula itself; they only
//     lower the worker count before anything is spawned, or add a numeric
//     check to the boundary pass.
package scatter

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxWorkers is the extra cap on spawned workers; 0 means no cap
	// beyond min(threadHint, max(1, n/2)).
	DefaultMaxWorkers = 0

	// DefaultGOMAXPROCSCap clamps the worker count to runtime.GOMAXPROCS(0)
	// when true.
	DefaultGOMAXPROCSCap = false

	// DefaultValidateNaNInf rejects NaN/±Inf values at the boundary when true.
	// Off by default: numeric hosts use NaN as a missing-value marker and the
	// kernel copies values verbatim.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxWorkersInvalid = "scatter: WithMaxWorkers: k must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxWorkers     int  // >= 0; 0 = uncapped
	gomaxprocsCap  bool // clamp to runtime.GOMAXPROCS(0)
	validateNaNInf bool // reject non-finite values before spawning
}

// WithMaxWorkers caps the number of workers spawned per call.
// Panics when k < 1 (programmer error).
//
// The cap is applied before spawning, so a host with a known thread budget
// can lower parallelism without changing its threadHint.
func WithMaxWorkers(k int) Option {
	if k < 1 {
		panic(panicMaxWorkersInvalid)
	}

	return func(o *Options) { o.maxWorkers = k }
}

// WithGOMAXPROCSCap clamps the worker count to runtime.GOMAXPROCS(0).
func WithGOMAXPROCSCap() Option {
	return func(o *Options) { o.gomaxprocsCap = true }
}

// WithValidateNaNInf rejects NaN and ±Inf values (matrix.ErrNaNInf) in the
// boundary pass, before any write happens.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf copies non-finite values verbatim (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Setters apply in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxWorkers:     DefaultMaxWorkers,
		gomaxprocsCap:  DefaultGOMAXPROCSCap,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
