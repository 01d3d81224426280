// Package survey loads raw survey exports and tallies per-question
// answer distributions.
package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ============================================================================
// LOADER — Parses a survey CSV export into question columns
// ============================================================================
// Survey tools export one row per respondent. The leading columns hold
// respondent metadata (timestamp, token, ...); every column after those is
// a question, with the header cell as the question text and each row cell
// as that respondent's answer. Blank cells mean the respondent skipped the
// question and are normalized to NoSelection.
// ============================================================================

// NoSelection is the answer recorded when a respondent skipped a question.
// Matching is exact: a survey answer spelled differently (e.g. "no selection")
// is a real answer, not a skip.
const NoSelection = "No Selection"

// DefaultMetaColumns is how many leading respondent-metadata columns a
// survey export carries before the first question column.
const DefaultMetaColumns = 3

// ErrMalformedInput reports survey data that cannot be parsed as CSV.
var ErrMalformedInput = errors.New("malformed survey data")

// Question is one survey question column and the answers given to it,
// one entry per respondent and in respondent order.
type Question struct {
	Index     int    // zero-based position among question columns
	Text      string // header cell, trimmed
	Responses []string
}

// Table is a parsed survey export.
type Table struct {
	Path        string // source file, empty when parsed from memory
	MetaColumns int
	Questions   []Question
	Respondents int
}

// Option configures parsing via functional options pattern.
type Option func(*config)

type config struct {
	MetaColumns int
}

// WithMetaColumns sets how many leading columns to treat as respondent
// metadata rather than questions. Defaults to DefaultMetaColumns.
func WithMetaColumns(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.MetaColumns = n
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		MetaColumns: DefaultMetaColumns,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads and parses the survey export at path.
// A missing file surfaces as an error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string, opts ...Option) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey file: %w", err)
	}

	table, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	table.Path = path
	return table, nil
}

// Parse parses raw survey CSV bytes into a Table.
// Rows shorter than the header are tolerated: missing trailing cells count
// as NoSelection. Structurally broken CSV (stray quotes, no header) returns
// an error satisfying errors.Is(err, ErrMalformedInput).
func Parse(data []byte, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // survey exports pad or truncate trailing cells

	// Read header
	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: file is empty", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedInput, err)
	}

	table := &Table{MetaColumns: cfg.MetaColumns}

	// Columns after the metadata block are questions. A file with nothing
	// past the metadata block parses cleanly to zero questions.
	for i, h := range headers[min(cfg.MetaColumns, len(headers)):] {
		table.Questions = append(table.Questions, Question{
			Index: i,
			Text:  strings.TrimSpace(h),
		})
	}

	// Read respondent rows
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row %d: %v", ErrMalformedInput, table.Respondents+2, err)
		}

		for i := range table.Questions {
			col := cfg.MetaColumns + i
			val := ""
			if col < len(row) {
				val = strings.TrimSpace(row[col])
			}
			if val == "" {
				val = NoSelection
			}
			table.Questions[i].Responses = append(table.Questions[i].Responses, val)
		}
		table.Respondents++
	}

	return table, nil
}
