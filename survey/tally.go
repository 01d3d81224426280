package survey

import (
	"errors"
	"fmt"
	"sort"
)

// ============================================================================
// TALLY — Per-question answer counts and percentages
// ============================================================================
// Skipped responses (NoSelection) never count toward percentages: the
// denominator is the number of respondents who actually answered. A question
// nobody answered has no distribution at all and reports ErrNoData so the
// caller can skip it and move on.
// ============================================================================

// ErrNoData reports a question with no meaningful responses to tally.
var ErrNoData = errors.New("no selections recorded")

// Answer is one distinct answer to a question.
type Answer struct {
	Label   string
	Count   int
	Percent float64 // share of meaningful responses, 0..100
}

// Tally is the answer distribution of a single question.
type Tally struct {
	Question    string
	Answers     []Answer // in order of first appearance across respondents
	TotalValid  int      // responses counted
	NoSelection int      // responses excluded as skips
}

// Tally counts the question's responses into an answer distribution.
// Returns ErrNoData when every respondent skipped the question.
func (q Question) Tally() (*Tally, error) {
	t := &Tally{Question: q.Text}

	counts := make(map[string]int)
	var order []string

	for _, r := range q.Responses {
		if r == NoSelection {
			t.NoSelection++
			continue
		}
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
		t.TotalValid++
	}

	if t.TotalValid == 0 {
		return nil, fmt.Errorf("question %q: %w", q.Text, ErrNoData)
	}

	t.Answers = make([]Answer, 0, len(order))
	for _, label := range order {
		t.Answers = append(t.Answers, Answer{
			Label:   label,
			Count:   counts[label],
			Percent: float64(counts[label]) / float64(t.TotalValid) * 100,
		})
	}

	return t, nil
}

// ByPercentDesc returns the answers sorted most-popular first.
// Ties keep first-appearance order. The receiver is not modified.
func (t *Tally) ByPercentDesc() []Answer {
	out := make([]Answer, len(t.Answers))
	copy(out, t.Answers)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Percent > out[b].Percent
	})
	return out
}
