package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarRendersSVG(t *testing.T) {
	out, err := Bar("Missing Values by Column", "Columns", "Missing Count", []Point{
		{Label: "TSH", Value: 12},
		{Label: "Age", Value: 3},
	})
	require.NoError(t, err)

	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, "<svg"), "expected inline svg, got %.40s", svg)
	assert.Contains(t, svg, "Missing Values by Column")
	assert.Contains(t, svg, "TSH")
	assert.Contains(t, svg, `<div class="chart-caption">Columns</div>`)
}

func TestBarSingleBar(t *testing.T) {
	_, err := Bar("Gender Distribution", "", "", []Point{{Label: "Female", Value: 10}})
	assert.NoError(t, err)
}

func TestBarNoData(t *testing.T) {
	_, err := Bar("empty", "", "", nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPieLabelsCarryShares(t *testing.T) {
	out, err := Pie("Distribution of Thyroid Cancer Risk Levels", []Point{
		{Label: "Low", Value: 50},
		{Label: "Medium", Value: 30},
		{Label: "High", Value: 20},
	})
	require.NoError(t, err)

	svg := string(out)
	assert.Contains(t, svg, "Low (50.0%)")
	assert.Contains(t, svg, "High (20.0%)")
}

func TestPieIgnoresEmptySlices(t *testing.T) {
	_, err := Pie("zeros", []Point{{Label: "None", Value: 0}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLabelsAreStrippedOfMarkup(t *testing.T) {
	out, err := Bar("t", "", "", []Point{{Label: "<script>", Value: 1}})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}
