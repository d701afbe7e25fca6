package commands

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/config"
	"github.com/kamil-cwintal/no-flip-tester/pkg/generator"
)

// resolveSampler turns a loaded sequence configuration into the
// generator.Sampler it names. Validation already rejected any other
// value by the time this runs.
func resolveSampler(seq config.SequenceConfig) generator.Sampler {
	if seq.Sampler == config.SamplerGeometric {
		return generator.GeometricSampler(seq.GeometricQ)
	}

	return generator.UniformSampler
}
