package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamil-cwintal/no-flip-tester/pkg/report"
)

func TestCheckpointMeanOutdegree(t *testing.T) {
	t.Parallel()

	c := report.NewCheckpoint("amc")
	c.Record(report.StrategySample{MaxOutdegree: 2, Flips: 0})
	c.Record(report.StrategySample{MaxOutdegree: 4, Flips: 0})

	assert.InDelta(t, 3.0, c.MeanOutdegree(), 0.001)
	assert.InDelta(t, 4.0, c.PeakOutdegree(), 0.001)
}

func TestCheckpointMeanFlips(t *testing.T) {
	t.Parallel()

	c := report.NewCheckpoint("brodal")
	c.Record(report.StrategySample{MaxOutdegree: 3, Flips: 10})
	c.Record(report.StrategySample{MaxOutdegree: 3, Flips: 20})

	assert.InDelta(t, 15.0, c.MeanFlips(), 0.001)
}

func TestCheckpointTrendOutdegreeTracksRecentValues(t *testing.T) {
	t.Parallel()

	c := report.NewCheckpoint("amc")
	for i := 0; i < 20; i++ {
		c.Record(report.StrategySample{MaxOutdegree: 1, Flips: 0})
	}

	c.Record(report.StrategySample{MaxOutdegree: 5, Flips: 0})

	assert.Greater(t, c.TrendOutdegree(), 1.0)
	assert.Less(t, c.TrendOutdegree(), c.PeakOutdegree())
}

func TestWriteSummaryProducesNonEmptyTable(t *testing.T) {
	t.Parallel()

	c := report.NewCheckpoint("amc")
	c.Record(report.StrategySample{MaxOutdegree: 1, Flips: 0})

	var buf bytes.Buffer
	report.WriteSummary(&buf, []*report.Checkpoint{c}, 2)

	out := buf.String()
	assert.Contains(t, out, "amc")
	assert.Contains(t, out, "strategy")
}

func TestWriteSummaryHandlesEmptyCheckpointList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report.WriteSummary(&buf, nil, 2)

	assert.NotPanics(t, func() {
		report.WriteSummary(&buf, nil, 2)
	})
}
