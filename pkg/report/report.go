// Package report formats trial results for terminal display: one
// go-pretty table with a row per strategy and running
// mean/trend/percentile/peak columns, the peak colourised pass/fail
// against a target bound.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kamil-cwintal/no-flip-tester/pkg/stats"
)

// StrategySample is one strategy's outcome for a single trial.
type StrategySample struct {
	Name         string
	MaxOutdegree int
	Flips        int
}

// emaSmoothing weights the checkpoint's exponential moving average
// toward the last few trials, so a trend within a long run is visible
// without waiting for the full-series mean to catch up.
const emaSmoothing = 0.2

// Checkpoint accumulates every sample recorded for one strategy across
// the trials run so far, and answers running-statistics queries
// without retaining anything beyond the raw out-degree/flip series.
type Checkpoint struct {
	Name       string
	Outdegrees []float64
	Flips      []float64
	ema        *stats.EMA
}

// NewCheckpoint starts an empty checkpoint for a strategy.
func NewCheckpoint(name string) *Checkpoint {
	return &Checkpoint{Name: name, ema: stats.NewEMA(emaSmoothing)}
}

// Record appends one trial's sample to the running series.
func (c *Checkpoint) Record(s StrategySample) {
	c.Outdegrees = append(c.Outdegrees, float64(s.MaxOutdegree))
	c.Flips = append(c.Flips, float64(s.Flips))
	c.ema.Update(float64(s.MaxOutdegree))
}

// TrendOutdegree returns the exponentially-weighted moving average of
// out-degree, which reacts to a recent shift faster than MeanOutdegree.
func (c *Checkpoint) TrendOutdegree() float64 {
	return c.ema.Value()
}

// MeanOutdegree returns the running mean out-degree across every
// recorded trial.
func (c *Checkpoint) MeanOutdegree() float64 {
	return stats.Mean(c.Outdegrees)
}

// PeakOutdegree returns the worst out-degree seen across every
// recorded trial.
func (c *Checkpoint) PeakOutdegree() float64 {
	return stats.Max(c.Outdegrees)
}

// P95Outdegree returns the 95th-percentile out-degree across every
// recorded trial.
func (c *Checkpoint) P95Outdegree() float64 {
	return stats.Percentile(c.Outdegrees, stats.PercentileP95)
}

// MeanFlips returns the running mean flip count across every recorded
// trial (always zero for flip-free strategies).
func (c *Checkpoint) MeanFlips() float64 {
	return stats.Mean(c.Flips)
}

// WriteSummary renders one table row per checkpoint, colouring the
// peak out-degree column green when it is within bound and red
// otherwise.
func WriteSummary(w io.Writer, checkpoints []*Checkpoint, bound int) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"strategy", "trials", "mean outdeg", "trend outdeg", "p95 outdeg", "peak outdeg", "mean flips"})

	for _, c := range checkpoints {
		peak := c.PeakOutdegree()

		peakCell := fmt.Sprintf("%.2f", peak)
		if int(peak) > bound {
			peakCell = color.New(color.FgRed).Sprint(peakCell)
		} else {
			peakCell = color.New(color.FgGreen).Sprint(peakCell)
		}

		tbl.AppendRow(table.Row{
			c.Name,
			humanize.Comma(int64(len(c.Outdegrees))),
			fmt.Sprintf("%.2f", c.MeanOutdegree()),
			fmt.Sprintf("%.2f", c.TrendOutdegree()),
			fmt.Sprintf("%.2f", c.P95Outdegree()),
			peakCell,
			fmt.Sprintf("%.2f", c.MeanFlips()),
		})
	}

	tbl.Render()
}
