package profiling

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"thyroidrisk/domain/dataset"
)

// DistributionAnalyzer computes summary statistics per column
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// Describe summarises every numeric column, or every column when none is numeric
func (da *DistributionAnalyzer) Describe(table *dataset.Table) Description {
	var desc Description
	for _, col := range table.Columns {
		if col.DType.IsNumeric() {
			desc.Numeric = append(desc.Numeric, da.DescribeNumeric(col))
		}
	}
	if len(desc.Numeric) > 0 {
		return desc
	}
	for _, col := range table.Columns {
		desc.Categorical = append(desc.Categorical, da.DescribeCategorical(col))
	}
	return desc
}

// DescribeNumeric computes count, mean, sample standard deviation, extremes and quartiles
func (da *DistributionAnalyzer) DescribeNumeric(col *dataset.Column) NumericSummary {
	data := col.Numbers()
	summary := NumericSummary{Column: col.Name, Count: len(data)}

	if len(data) == 0 {
		nan := math.NaN()
		summary.Empty = true
		summary.Mean, summary.StdDev, summary.Min, summary.Max = nan, nan, nan, nan
		summary.Q25, summary.Median, summary.Q75 = nan, nan, nan
		return summary
	}

	summary.Mean, _ = stats.Mean(data)
	summary.Min, _ = stats.Min(data)
	summary.Max, _ = stats.Max(data)
	// Sample standard deviation (n-1); NaN for a single value.
	summary.StdDev = stat.StdDev(data, nil)

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	summary.Q25 = Quantile(sorted, 0.25)
	summary.Median = Quantile(sorted, 0.50)
	summary.Q75 = Quantile(sorted, 0.75)

	return summary
}

// DescribeCategorical computes count, distinct values and the most frequent value
func (da *DistributionAnalyzer) DescribeCategorical(col *dataset.Column) CategoricalSummary {
	summary := CategoricalSummary{Column: col.Name}
	counts := ValueCounts(col)
	for _, vc := range counts {
		summary.Count += vc.Count
	}
	summary.Unique = len(counts)
	if len(counts) > 0 {
		summary.Top = counts[0].Value
		summary.Freq = counts[0].Count
	}
	return summary
}

// Quantile interpolates linearly between the closest ranks of sorted data,
// at position (n-1)*p
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// ValueCount is one entry of a categorical distribution
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts counts non-missing values, most frequent first. Ties keep the
// order in which values first appear.
func ValueCounts(col *dataset.Column) []ValueCount {
	index := make(map[string]int)
	var counts []ValueCount
	for _, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		i, ok := index[cell.Raw]
		if !ok {
			i = len(counts)
			index[cell.Raw] = i
			counts = append(counts, ValueCount{Value: cell.Raw})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	return counts
}
