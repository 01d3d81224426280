// Package trivote turns raw survey exports into audited vote allocations.
// Tally the answers, apportion a fixed vote total, draw the receipts.
//
// Usage:
//
//	import (
//	    "github.com/trivote-org/trivote/apportion"
//	    "github.com/trivote-org/trivote/survey"
//	)
//
//	table, err := survey.Load("responses.csv")
//	tally, err := table.Questions[0].Tally()
//	result, err := apportion.LargestRemainder(shares, 3)
//
// survey loads and tallies the CSV, apportion allocates an integer vote
// total across answer percentages with the largest remainder method, and
// report renders one figure per question (two donut charts plus the
// step-by-step arithmetic). The trivote command under cmd/ wires the three
// together. All computation is local — nothing calls an external service.
package trivote
