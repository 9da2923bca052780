package report

import (
	"github.com/guptarohit/asciigraph"

	"daylog/internal/analysis"
	"daylog/internal/record"
)

const (
	chartHeight = 8
	chartWidth  = 60
)

// chartSection renders the activity-level series as an ASCII chart in
// a fenced code block. Fewer than two points plots nothing useful, so
// the section is skipped.
func chartSection(days []record.EnrichedRecord) []string {
	if len(days) < 2 {
		return nil
	}

	graph := asciigraph.Plot(analysis.ActivityLevels(days),
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Activity Level by day"),
	)

	return []string{
		"## Activity Chart",
		"```",
		graph,
		"```",
		"",
	}
}
