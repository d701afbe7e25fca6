package telemetry_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamil-cwintal/no-flip-tester/pkg/telemetry"
)

func TestRegistryIncAccumulates(t *testing.T) {
	t.Parallel()

	r := telemetry.NewRegistry()
	r.Inc("flips.total", 3)
	r.Inc("flips.total", 4)

	assert.Equal(t, int64(7), r.Counter("flips.total"))
}

func TestRegistrySetOverwrites(t *testing.T) {
	t.Parallel()

	r := telemetry.NewRegistry()
	r.Set("peak.outdegree", 2)
	r.Set("peak.outdegree", 5)

	assert.InDelta(t, 5, r.Gauge("peak.outdegree"), 0.001)
}

func TestRegistryRecordPeakKeepsMaximum(t *testing.T) {
	t.Parallel()

	r := telemetry.NewRegistry()
	r.RecordPeak("amc.outdegree", 3)
	r.RecordPeak("amc.outdegree", 7)
	r.RecordPeak("amc.outdegree", 4)

	assert.InDelta(t, 7, r.Peak("amc.outdegree"), 0.001)
}

func TestRegistryUnknownNamesReadAsZero(t *testing.T) {
	t.Parallel()

	r := telemetry.NewRegistry()

	assert.Equal(t, int64(0), r.Counter("nope"))
	assert.InDelta(t, 0, r.Gauge("nope"), 0.001)
	assert.InDelta(t, 0, r.Peak("nope"), 0.001)
}

func TestTrialLoggerScopesWithoutPanicking(t *testing.T) {
	t.Parallel()

	base := telemetry.NewLogger("nofliptester", slog.LevelInfo, true)
	trialLogger := telemetry.TrialLogger(base, 3)
	strategyLogger := telemetry.StrategyLogger(trialLogger, "amc")

	assert.NotNil(t, strategyLogger)
}
