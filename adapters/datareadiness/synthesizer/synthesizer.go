package synthesizer

import (
	"fmt"
	"math/rand"
	"strconv"

	"thyroidrisk/domain/dataset"
)

// SampleGenerator produces a reproducible demonstration table when no data
// file is available
type SampleGenerator struct {
	config SynthesisConfig
}

// SynthesisConfig defines the size and seed of the generated table
type SynthesisConfig struct {
	Rows int   `json:"rows"`
	Seed int64 `json:"seed"`
}

// DefaultSynthesisConfig returns the demonstration defaults
func DefaultSynthesisConfig() SynthesisConfig {
	return SynthesisConfig{
		Rows: 100,
		Seed: 42,
	}
}

// NewSampleGenerator creates a generator with config
func NewSampleGenerator(config SynthesisConfig) *SampleGenerator {
	return &SampleGenerator{config: config}
}

// Generate builds the sample table. Columns are drawn one after another from a
// single seeded source, so the same config always yields the same table.
func (g *SampleGenerator) Generate() (*dataset.Table, error) {
	if g.config.Rows <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", g.config.Rows)
	}

	rng := rand.New(rand.NewSource(g.config.Seed))
	n := g.config.Rows

	columns := []*dataset.Column{
		dataset.BuildColumn(string(dataset.FieldAge), intRange(rng, n, 20, 80)),
		dataset.BuildColumn(string(dataset.FieldGender), choice(rng, n, "Male", "Female")),
		dataset.BuildColumn(string(dataset.FieldCountry), choice(rng, n, "USA", "UK", "Canada", "Australia")),
		dataset.BuildColumn(string(dataset.FieldRisk), choice(rng, n, "Low", "Medium", "High")),
		dataset.BuildColumn(string(dataset.FieldTSH), uniform(rng, n, 0.5, 5.0)),
		dataset.BuildColumn(string(dataset.FieldT3), uniform(rng, n, 80, 200)),
		dataset.BuildColumn(string(dataset.FieldT4), uniform(rng, n, 5, 15)),
	}

	return dataset.NewTable("sample", columns)
}

// intRange draws integers in [lo, hi)
func intRange(rng *rand.Rand, n, lo, hi int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(lo + rng.Intn(hi-lo))
	}
	return out
}

func choice(rng *rand.Rand, n int, options ...string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = options[rng.Intn(len(options))]
	}
	return out
}

// uniform draws floats in [lo, hi)
func uniform(rng *rand.Rand, n int, lo, hi float64) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.FormatFloat(lo+rng.Float64()*(hi-lo), 'f', -1, 64)
	}
	return out
}
