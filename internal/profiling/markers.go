package profiling

// NumericSummary is the describe() row set for one numeric column
type NumericSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"q50"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
	// Empty marks a numeric column with no values; its statistics are NaN.
	Empty bool `json:"empty"`
}

// CategoricalSummary is the describe() row set for a non-numeric column
type CategoricalSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}

// Description is the statistical summary of a table. Numeric is preferred;
// Categorical is only filled when the table has no numeric column.
type Description struct {
	Numeric     []NumericSummary     `json:"numeric,omitempty"`
	Categorical []CategoricalSummary `json:"categorical,omitempty"`
}

// StatLabels are the row labels of the numeric summary, in display order
var StatLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Values returns the summary in StatLabels order
func (s NumericSummary) Values() []float64 {
	return []float64{float64(s.Count), s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max}
}

// CategoricalLabels are the row labels of the categorical summary
var CategoricalLabels = []string{"count", "unique", "top", "freq"}
