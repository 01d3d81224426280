package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/trivote-org/trivote/apportion"
	"github.com/trivote-org/trivote/survey"
)

// ============================================================================
// DONUT BUILDERS — chart.DonutChart values from tallies and allocations
// ============================================================================

// hexColor parses "#rrggbb" (leading # optional) into a drawing color.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func sliceStyle(hex string, fontSize float64) chart.Style {
	return chart.Style{
		FillColor:   hexColor(hex),
		StrokeColor: drawing.ColorWhite,
		StrokeWidth: 1,
		FontSize:    fontSize,
		FontColor:   drawing.ColorWhite,
	}
}

// percentDonut builds the response-distribution donut. Answers are expected
// most-popular first; each slice is labeled with its percentage.
func percentDonut(answers []survey.Answer, colors map[string]string, width, height int) chart.DonutChart {
	values := make([]chart.Value, 0, len(answers))
	for _, a := range answers {
		values = append(values, chart.Value{
			Value: a.Percent,
			Label: fmt.Sprintf("%s: %.1f%%", a.Label, a.Percent),
			Style: sliceStyle(colors[a.Label], 12),
		})
	}
	return chart.DonutChart{
		Width:  width,
		Height: height,
		Values: values,
	}
}

// voteDonut builds the allocation donut. Zero-vote answers are omitted so
// slices only show where votes actually went; colors match the distribution
// donut. ok is false when no answer received a vote (target of zero).
func voteDonut(allocs []apportion.Allocation, colors map[string]string, width, height int) (chart.DonutChart, bool) {
	values := make([]chart.Value, 0, len(allocs))
	for _, al := range allocs {
		if al.Votes == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(al.Votes),
			Label: fmt.Sprintf("%s: %d", al.Label, al.Votes),
			Style: sliceStyle(colors[al.Label], 13),
		})
	}
	if len(values) == 0 {
		return chart.DonutChart{}, false
	}
	return chart.DonutChart{
		Width:  width,
		Height: height,
		Values: values,
	}, true
}

// renderPNG rasterizes a donut chart in memory.
func renderPNG(c chart.DonutChart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered chart: %w", err)
	}
	return img, nil
}
