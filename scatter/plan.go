// SPDX-License-Identifier: MIT

// Package scatter - partition policy.
//
// Purpose:
//   - Keep the worker-count heuristic and the chunking as pure functions so
//     they are testable without spawning anything.
//   - Materialize the result as a Plan: exactly what Fill executes.
//
// Policy:
//   - workers = min(threadHint, max(1, n/2)): no worker gets fewer than ~2
//     entries, and n in {0, 1} still yields one worker.
//   - chunks are contiguous, floor(n/workers) wide; the last one absorbs the
//     remainder (its stop is forced to n).

package scatter

import (
	"fmt"
	"runtime"
	"strings"
)

// Range is a half-open interval [Start, Stop) over the entry index space.
type Range struct {
	Start, Stop int
}

// Len returns Stop-Start.
func (r Range) Len() int { return r.Stop - r.Start }

// String renders the range as "[start,stop)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.Stop) }

// WorkerCount returns min(threadHint, max(1, n/2)).
//
// A threadHint below 1 is treated as 1; Fill rejects such hints before
// getting here, the clamp only keeps the function total.
// Complexity: O(1).
func WorkerCount(n, threadHint int) int {
	return max(1, min(threadHint, max(1, n/2)))
}

// Chunks splits [0, n) into workers contiguous ranges of floor(n/workers)
// entries each, with the remainder added to the last range.
//
// Behavior highlights:
//   - workers < 1 is treated as 1.
//   - workers > n (n > 0) is lowered to n so that no range is empty;
//     WorkerCount never produces that case.
//   - n <= 0 yields the single empty range [0, 0).
//
// Complexity: O(workers) time and space.
func Chunks(n, workers int) []Range {
	if n <= 0 {
		return []Range{{Start: 0, Stop: 0}}
	}
	workers = min(max(workers, 1), n)

	chunkSize := n / workers
	out := make([]Range, workers)
	lastStop := 0
	for w := range out {
		out[w] = Range{Start: lastStop, Stop: lastStop + chunkSize}
		lastStop += chunkSize
	}
	out[workers-1].Stop = n // remainder goes to the last chunk

	return out
}

// Plan is the resolved partition of one Fill call.
type Plan struct {
	Entries int     // n
	Hint    int     // threadHint as given
	Workers int     // len(Chunks)
	Chunks  []Range // contiguous, disjoint, covering [0, Entries)
}

// NewPlan resolves the worker count (including option caps) and chunking for
// n entries and the given hint.
//
// Errors:
//   - ErrInvalidThreadHint when threadHint < 1.
//   - ErrNegativeCount when n < 0.
func NewPlan(n, threadHint int, opts ...Option) (Plan, error) {
	if threadHint < 1 {
		return Plan{}, ErrInvalidThreadHint
	}
	if n < 0 {
		return Plan{}, ErrNegativeCount
	}

	return newPlan(n, threadHint, gatherOptions(opts...)), nil
}

// newPlan assumes validated inputs.
func newPlan(n, threadHint int, o Options) Plan {
	workers := WorkerCount(n, threadHint)
	if o.maxWorkers > 0 {
		workers = min(workers, o.maxWorkers)
	}
	if o.gomaxprocsCap {
		workers = min(workers, runtime.GOMAXPROCS(0))
	}
	chunks := Chunks(n, workers)

	return Plan{Entries: n, Hint: threadHint, Workers: len(chunks), Chunks: chunks}
}

// String summarizes the plan for logs, e.g.
// "entries=5 hint=4 workers=2 chunks=[0,2) [2,5)".
func (p Plan) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "entries=%d hint=%d workers=%d chunks=", p.Entries, p.Hint, p.Workers)
	for i, r := range p.Chunks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}

	return b.String()
}
