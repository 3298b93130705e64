package synthesizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thyroidrisk/domain/dataset"
)

func TestGenerateShapeAndTypes(t *testing.T) {
	table, err := NewSampleGenerator(DefaultSynthesisConfig()).Generate()
	require.NoError(t, err)

	rows, cols := table.Shape()
	assert.Equal(t, 100, rows)
	assert.Equal(t, 7, cols)
	assert.Equal(t, 0, table.NullCount())

	expected := map[dataset.Field]dataset.DType{
		dataset.FieldAge:     dataset.DTypeInt64,
		dataset.FieldGender:  dataset.DTypeObject,
		dataset.FieldCountry: dataset.DTypeObject,
		dataset.FieldRisk:    dataset.DTypeObject,
		dataset.FieldTSH:     dataset.DTypeFloat64,
		dataset.FieldT3:      dataset.DTypeFloat64,
		dataset.FieldT4:      dataset.DTypeFloat64,
	}
	for field, dtype := range expected {
		col, ok := table.Lookup(field)
		require.True(t, ok, "missing %s", field)
		assert.Equal(t, dtype, col.DType, "dtype of %s", field)
	}
}

func TestGenerateValueRanges(t *testing.T) {
	table, err := NewSampleGenerator(DefaultSynthesisConfig()).Generate()
	require.NoError(t, err)

	ranges := []struct {
		field  dataset.Field
		lo, hi float64
	}{
		{dataset.FieldAge, 20, 80},
		{dataset.FieldTSH, 0.5, 5.0},
		{dataset.FieldT3, 80, 200},
		{dataset.FieldT4, 5, 15},
	}
	for _, r := range ranges {
		col, _ := table.Lookup(r.field)
		for _, v := range col.Numbers() {
			assert.GreaterOrEqual(t, v, r.lo, string(r.field))
			assert.Less(t, v, r.hi, string(r.field))
		}
	}

	risk, _ := table.Lookup(dataset.FieldRisk)
	for _, cell := range risk.Cells {
		assert.Contains(t, []string{"Low", "Medium", "High"}, cell.Raw)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := NewSampleGenerator(DefaultSynthesisConfig()).Generate()
	require.NoError(t, err)
	second, err := NewSampleGenerator(DefaultSynthesisConfig()).Generate()
	require.NoError(t, err)

	for i := 0; i < first.Rows; i++ {
		assert.Equal(t, first.Row(i), second.Row(i), "row %d", i)
	}

	other, err := NewSampleGenerator(SynthesisConfig{Rows: 100, Seed: 7}).Generate()
	require.NoError(t, err)
	assert.NotEqual(t, first.Head(5), other.Head(5))
}

func TestGenerateRejectsEmptySample(t *testing.T) {
	_, err := NewSampleGenerator(SynthesisConfig{Rows: 0, Seed: 42}).Generate()
	assert.Error(t, err)
}
