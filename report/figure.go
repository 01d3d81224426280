package report

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/trivote-org/trivote/apportion"
	"github.com/trivote-org/trivote/survey"
)

// ============================================================================
// FIGURE — Per-question canvas layout
// ============================================================================
// Top to bottom: wrapped question title; response-distribution donut on the
// left and vote-allocation donut on the right, each under its own heading;
// the step-by-step allocation arithmetic in a bordered panel. Canvas height
// follows the title and walkthrough line counts so long questions and many
// answers never clip.
// ============================================================================

const (
	figureMargin = 40
	chartGap     = 40
	chartHeight  = 560
	headingH     = 30
	noteH        = 24
	panelPad     = 24
	monoLineH    = 24
	titleSpacing = 1.3
)

// compose draws the full figure onto a fresh canvas. right is nil when no
// answer received a vote; the slot then carries a note instead of a chart.
func compose(t *survey.Tally, res *apportion.Result, left, right image.Image, width, leftW, rightW int, fs *faceSet) *gg.Context {
	steps := res.Steps()
	inner := float64(width) - 2*figureMargin

	// Measure the wrapped title before sizing the canvas.
	mc := gg.NewContext(1, 1)
	mc.SetFontFace(fs.title)
	titleLines := len(mc.WordWrap(t.Question, inner))
	titleH := 0.0
	if titleLines > 0 {
		titleH = float64(titleLines)*mc.FontHeight()*titleSpacing - (titleSpacing-1)*mc.FontHeight()
	}

	headingTop := figureMargin + titleH + 28
	chartTop := headingTop + headingH + noteH + 12
	captionY := chartTop + chartHeight + 44
	panelTop := captionY + 24
	panelH := 2*panelPad + float64(len(steps))*monoLineH
	height := int(panelTop + panelH + figureMargin)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Question title
	dc.SetFontFace(fs.title)
	dc.SetHexColor("#1a1a1a")
	dc.DrawStringWrapped(t.Question, float64(width)/2, figureMargin, 0.5, 0, inner, titleSpacing, gg.AlignCenter)

	leftCX := figureMargin + float64(leftW)/2
	rightCX := figureMargin + float64(leftW) + chartGap + float64(rightW)/2

	// Chart headings
	dc.SetFontFace(fs.subtitle)
	dc.SetHexColor("#333333")
	dc.DrawStringAnchored("Response Distribution", leftCX, headingTop, 0.5, 1)
	dc.DrawStringAnchored(fmt.Sprintf("%d-Vote Allocation", res.Target), rightCX, headingTop, 0.5, 1)

	dc.SetFontFace(fs.note)
	dc.SetHexColor("#555555")
	counts := fmt.Sprintf("(Total Valid Responses: %d, No Selection: %d)", t.TotalValid, t.NoSelection)
	dc.DrawStringAnchored(counts, leftCX, headingTop+headingH, 0.5, 1)

	// Donuts
	dc.DrawImage(left, figureMargin, int(chartTop))
	if right != nil {
		dc.DrawImage(right, figureMargin+leftW+chartGap, int(chartTop))
	} else {
		dc.DrawStringAnchored("(no votes to allocate)", rightCX, chartTop+chartHeight/2, 0.5, 0.5)
	}

	// Walkthrough caption
	dc.SetFontFace(fs.caption)
	dc.SetHexColor("#1a1a1a")
	caption := fmt.Sprintf("Step-by-Step Calculation of %d-Vote Allocation using Largest Remainder Method", res.Target)
	dc.DrawStringAnchored(caption, float64(width)/2, captionY, 0.5, 0.5)

	// Walkthrough panel
	dc.DrawRoundedRectangle(figureMargin, panelTop, inner, panelH, 10)
	dc.SetHexColor("#f8f9fa")
	dc.FillPreserve()
	dc.SetHexColor("#dcdcdc")
	dc.SetLineWidth(1.5)
	dc.Stroke()

	dc.SetFontFace(fs.mono)
	dc.SetHexColor("#222222")
	rowY := panelTop + panelPad
	for _, line := range steps {
		if line != "" {
			dc.DrawStringAnchored(line, figureMargin+panelPad, rowY, 0, 1)
		}
		rowY += monoLineH
	}

	return dc
}
