package report

import "strings"

// ============================================================================
// COLORS — Slice colors for the donut charts
// ============================================================================

// Fixed colors for the canonical ballot answers, keyed lowercase.
// Lookup is case-insensitive so "YES" and "yes" paint the same green.
var answerColors = map[string]string{
	"yes":     "#2ecc71",
	"no":      "#e74c3c",
	"abstain": "#95a5a6",
}

// Palette for free-form answers. Green and red hues are left out so a
// free-form answer is never mistaken for Yes or No.
var defaultPalette = []string{
	"#4F46E5", "#F59E0B", "#8B5CF6", "#06B6D4", "#EC4899",
	"#F97316", "#6366F1",
}

// assignColors maps each label to a hex color, in order: explicit override,
// canonical answer color, then the next free palette entry. Both charts of a
// figure share one assignment so an answer keeps its color across them.
func assignColors(labels []string, overrides map[string]string) map[string]string {
	colors := make(map[string]string, len(labels))
	next := 0
	for _, label := range labels {
		if hex, ok := overrides[label]; ok && hex != "" {
			colors[label] = hex
			continue
		}
		if hex, ok := answerColors[strings.ToLower(label)]; ok {
			colors[label] = hex
			continue
		}
		colors[label] = defaultPalette[next%len(defaultPalette)]
		next++
	}
	return colors
}
