// Package apportion converts fractional vote shares into a fixed integer
// number of votes using the largest-remainder (Hare quota) method.
//
// The engine is a pure function: same shares and target in, same allocation
// out, with no I/O and no external dependencies. Callers feed it the
// percentages produced by the survey tally and render the audit trail
// however they like (see Result.Steps).
package apportion

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNegativeTarget reports a vote target below zero. A zero target is
// valid and allocates nothing.
var ErrNegativeTarget = errors.New("apportion: target votes must be >= 0")

// ============================================================================
// TYPES
// ============================================================================

// Share is one labeled percentage entering an allocation. Order matters:
// ties on fractional remainders are broken by input position.
type Share struct {
	Label   string
	Percent float64
}

// Allocation is the per-answer audit record of the largest-remainder run.
// Votes = Floor + Extra, and Extra is 0 or 1.
type Allocation struct {
	Label     string
	Percent   float64
	Quota     float64 // Percent/100 × target, before any rounding
	Floor     int     // integer part of Quota
	Remainder float64 // Quota − Floor
	Extra     int     // 1 when this answer won a leftover vote
	Votes     int
}

// Result holds a complete allocation for one question.
//
// Allocations preserve the input share order. AwardOrder lists indices into
// Allocations sorted by descending remainder with the stable tie-break, i.e.
// the order in which leftover votes were considered.
type Result struct {
	Target      int
	Leftover    int // votes distributed by remainder after flooring
	Allocations []Allocation
	AwardOrder  []int
}

// ============================================================================
// LARGEST REMAINDER
// ============================================================================

// LargestRemainder allocates target votes across shares.
//
// Each share's exact quota is Percent/100 × target. Every share first
// receives the floor of its quota; the votes lost to flooring are then
// awarded one apiece to the shares with the largest fractional remainders.
// Equal remainders keep their input order (sort.SliceStable, no epsilon),
// so the outcome is deterministic for any input.
//
// For percentages summing to 100 the allocations sum to target by
// construction. Slight drift in the sum (upstream display rounding) is
// tolerated and keeps that property; quotas are computed from the raw
// percentages, never re-rounded.
func LargestRemainder(shares []Share, target int) (*Result, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeTarget, target)
	}

	res := &Result{
		Target:      target,
		Allocations: make([]Allocation, len(shares)),
	}

	// Step 1 + 2: exact quotas, then whole votes only.
	floorSum := 0
	for i, s := range shares {
		quota := s.Percent / 100 * float64(target)
		whole := int(math.Floor(quota))
		res.Allocations[i] = Allocation{
			Label:     s.Label,
			Percent:   s.Percent,
			Quota:     quota,
			Floor:     whole,
			Remainder: quota - math.Floor(quota),
			Votes:     whole,
		}
		floorSum += whole
	}

	// Step 3: leftover votes lost to flooring.
	leftover := target - floorSum
	if leftover < 0 {
		// Percentages far above 100 can over-floor; floors stand, nothing
		// is clawed back.
		leftover = 0
	}
	res.Leftover = leftover

	// Step 4: order by descending remainder, input order on ties.
	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return res.Allocations[order[a]].Remainder > res.Allocations[order[b]].Remainder
	})
	res.AwardOrder = order

	// Step 5: award one extra vote per leftover, largest remainders first.
	for i := 0; i < leftover && i < len(order); i++ {
		res.Allocations[order[i]].Extra = 1
		res.Allocations[order[i]].Votes++
	}

	return res, nil
}

// ============================================================================
// ACCESSORS
// ============================================================================

// Votes returns the label → votes mapping of the allocation.
func (r *Result) Votes() map[string]int {
	votes := make(map[string]int, len(r.Allocations))
	for _, a := range r.Allocations {
		votes[a.Label] = a.Votes
	}
	return votes
}

// VotesFor returns the votes allocated to label, or 0 for unknown labels.
func (r *Result) VotesFor(label string) int {
	for _, a := range r.Allocations {
		if a.Label == label {
			return a.Votes
		}
	}
	return 0
}

// Sum returns the total votes allocated. Equal to Target for in-domain input.
func (r *Result) Sum() int {
	total := 0
	for _, a := range r.Allocations {
		total += a.Votes
	}
	return total
}

// ByVotesDesc returns the allocations sorted by votes descending, input
// order on ties. The receiver is not modified.
func (r *Result) ByVotesDesc() []Allocation {
	out := make([]Allocation, len(r.Allocations))
	copy(out, r.Allocations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out
}
