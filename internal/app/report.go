package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eleven413/playcall/internal/domain/cleanse"
	"github.com/eleven413/playcall/internal/domain/evaluate"
	"github.com/eleven413/playcall/internal/domain/play"
)

// Report is the outcome of one pipeline run. It lives only for the run;
// nothing is persisted.
type Report struct {
	RunID        string
	RowsLoaded   int
	RowsRetained int
	Drops        cleanse.DropCounts
	TrainRows    int
	TestRows     int
	Results      []*evaluate.Result
	Failures     map[string]error
}

// String renders the report as plain text for stdout.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "run %s\n", r.RunID)
	fmt.Fprintf(&b, "rows: %d loaded, %d retained (%d dropped)\n", r.RowsLoaded, r.RowsRetained, r.Drops.Total())
	fmt.Fprintf(&b, "split: %d train / %d test\n", r.TrainRows, r.TestRows)

	for _, res := range r.Results {
		fmt.Fprintf(&b, "\n%s (fit %s, predict %s)\n", res.Model, res.FitDuration.Round(time.Millisecond), res.PredictDuration.Round(time.Millisecond))
		fmt.Fprintf(&b, "  accuracy: %.4f\n", res.Accuracy)

		fmt.Fprintf(&b, "  confusion (rows predicted, cols actual):\n")
		fmt.Fprintf(&b, "  %12s", "")
		for _, a := range play.Types() {
			fmt.Fprintf(&b, " %10s", a)
		}
		b.WriteByte('\n')
		for _, p := range play.Types() {
			fmt.Fprintf(&b, "  %12s", p)
			for _, a := range play.Types() {
				fmt.Fprintf(&b, " %10d", res.Confusion.Count(p, a))
			}
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "  per-class accuracy:\n")
		for _, t := range play.Types() {
			if acc, ok := res.PerClass[t]; ok {
				fmt.Fprintf(&b, "  %12s %.4f\n", t, acc)
			}
		}
	}

	failed := make([]string, 0, len(r.Failures))
	for model := range r.Failures {
		failed = append(failed, model)
	}
	sort.Strings(failed)
	for _, model := range failed {
		fmt.Fprintf(&b, "\n%s: FAILED: %v\n", model, r.Failures[model])
	}

	return b.String()
}
