// SPDX-License-Identifier: MIT

package scatter

// Test bridge (white-box) for private helpers and the options snapshot.
// Lives in a _test.go file so none of it reaches production builds.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	MaxWorkers     int
	GOMAXPROCSCap  bool
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Fill does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		MaxWorkers:     o.maxWorkers,
		GOMAXPROCSCap:  o.gomaxprocsCap,
		ValidateNaNInf: o.validateNaNInf,
	}
}

// PanicMaxWorkersInvalid_TestOnly avoids magic strings in panic assertions.
const PanicMaxWorkersInvalid_TestOnly = panicMaxWorkersInvalid

// ExportedPlanRun exposes the worker dispatch so failure paths can be driven
// with a body that panics.
var ExportedPlanRun = Plan.run
