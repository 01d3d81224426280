package apportion

import "fmt"

// ============================================================================
// STEPS — Human-auditable walkthrough of the allocation arithmetic
// ============================================================================
// The allocator stores every intermediate value in Result; Steps turns them
// back into the quota → floor → remainder → award narrative. The renderer
// places these lines on the figure so readers can check the arithmetic.
// ============================================================================

// Steps renders the largest-remainder computation as display lines.
// Empty strings separate the stages.
func (r *Result) Steps() []string {
	lines := make([]string, 0, 4*len(r.Allocations)+8)

	lines = append(lines, fmt.Sprintf("Step 1: Calculate proportional votes (percentage × %d)", r.Target))
	for _, a := range r.Allocations {
		lines = append(lines, fmt.Sprintf("  %s: %.1f%% × %d = %.2f", a.Label, a.Percent, r.Target, a.Quota))
	}

	lines = append(lines, "", "Step 2: Allocate whole votes only")
	for _, a := range r.Allocations {
		lines = append(lines, fmt.Sprintf("  %s: %d vote(s) (remainder: %.2f)", a.Label, a.Floor, a.Remainder))
	}

	lines = append(lines, "", fmt.Sprintf("Step 3: Allocate %d remaining vote(s) by largest remainder", r.Leftover))
	for rank, idx := range r.AwardOrder {
		a := r.Allocations[idx]
		if rank < r.Leftover {
			lines = append(lines, fmt.Sprintf("  %s: +1 vote (remainder: %.2f)", a.Label, a.Remainder))
		} else {
			lines = append(lines, fmt.Sprintf("  %s: +0 votes (remainder: %.2f)", a.Label, a.Remainder))
		}
	}

	lines = append(lines, "", fmt.Sprintf("Final %d-vote allocation:", r.Target))
	for _, a := range r.ByVotesDesc() {
		if a.Votes > 0 {
			lines = append(lines, fmt.Sprintf("  %s: %d vote(s)", a.Label, a.Votes))
		}
	}

	return lines
}
