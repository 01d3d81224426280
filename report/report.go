// Package report renders per-question result figures: a response-distribution
// donut, a vote-allocation donut, and the step-by-step apportionment
// arithmetic, written as one PNG per question.
package report

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"unicode"

	"github.com/trivote-org/trivote/apportion"
	"github.com/trivote-org/trivote/survey"
)

// ============================================================================
// RENDERER — Writes per-question figures into the output directory
// ============================================================================

const defaultWidth = 1800

// Option configures the renderer via functional options pattern.
type Option func(*config)

type config struct {
	Width  int
	Colors map[string]string // answer label → hex override
}

// WithWidth sets the overall figure width in pixels.
func WithWidth(w int) Option {
	return func(c *config) {
		if w > 0 {
			c.Width = w
		}
	}
}

// WithColors overrides slice colors for specific answer labels.
func WithColors(colors map[string]string) Option {
	return func(c *config) {
		c.Colors = colors
	}
}

// Renderer draws question figures into a single output directory.
type Renderer struct {
	dir string
	cfg *config
}

// New returns a renderer targeting dir. The directory is created on first
// render, not here, so a run that fails before rendering writes nothing.
func New(dir string, opts ...Option) *Renderer {
	cfg := &config{Width: defaultWidth}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Renderer{dir: dir, cfg: cfg}
}

// Dir returns the output directory the renderer writes into.
func (r *Renderer) Dir() string {
	return r.dir
}

// RenderQuestion draws the figure for one tallied question and its vote
// allocation, writes it under the output directory, and returns the written
// path. An existing file with the same derived name is overwritten.
func (r *Renderer) RenderQuestion(t *survey.Tally, res *apportion.Result) (string, error) {
	fs, err := faces()
	if err != nil {
		return "", err
	}

	inner := r.cfg.Width - 2*figureMargin
	leftW := inner * 62 / 100
	rightW := inner - leftW - chartGap

	answers := t.ByPercentDesc()
	labels := make([]string, len(answers))
	for i, a := range answers {
		labels[i] = a.Label
	}
	colors := assignColors(labels, r.cfg.Colors)

	left, err := renderPNG(percentDonut(answers, colors, leftW, chartHeight))
	if err != nil {
		return "", fmt.Errorf("question %q: %w", t.Question, err)
	}

	var right image.Image
	if donut, ok := voteDonut(res.Allocations, colors, rightW, chartHeight); ok {
		if right, err = renderPNG(donut); err != nil {
			return "", fmt.Errorf("question %q: %w", t.Question, err)
		}
	}

	dc := compose(t, res, left, right, r.cfg.Width, leftW, rightW, fs)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(r.dir, Filename(t.Question))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("failed to write figure: %w", err)
	}
	return path, nil
}

// ============================================================================
// FILENAMES
// ============================================================================

// Filename derives the deterministic artifact name for a question: question
// marks are dropped, every other non-alphanumeric rune becomes an underscore,
// and the result is capped at 50 runes before the ".png" extension.
func Filename(question string) string {
	runes := make([]rune, 0, len(question))
	for _, c := range question {
		switch {
		case c == '?':
			// dropped
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			runes = append(runes, c)
		default:
			runes = append(runes, '_')
		}
	}
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes) + ".png"
}
