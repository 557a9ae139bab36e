package prop

import (
	"fmt"

	"github.com/lucaskalb/proptest/internal/report"
)

// Render formats a CheckAll/CheckAllParallel outcome through
// internal/report's lipgloss-styled renderer, for callers (or t.Log
// calls) that want something friendlier than ForAll's plain-text
// t.Fatalf message.
func Render[T any](effSeed int64, out Outcome[T]) string {
	if !out.Failed {
		return report.RenderSuccess(effSeed, out.Successes)
	}
	var originalErr, shrunkErr string
	if out.Original != nil {
		originalErr = out.Original.Err.Error()
	}
	if out.Shrunk != nil {
		shrunkErr = out.Shrunk.Err.Error()
	}
	var originalValue string
	if out.Original != nil && len(out.Original.GeneratedValues) > 0 {
		originalValue = fmt.Sprintf("%#v", out.Original.GeneratedValues[0].Value)
	}
	return report.RenderFailure(report.Failure{
		Seed:          effSeed,
		Successes:     out.Successes,
		NodesVisited:  out.NodesVisited,
		OriginalValue: originalValue,
		OriginalErr:   originalErr,
		ShrunkValue:   fmt.Sprintf("%#v", out.ShrunkValue),
		ShrunkErr:     shrunkErr,
		ReplayHint:    fmt.Sprintf("-proptest.seed=%d", effSeed),
	})
}
