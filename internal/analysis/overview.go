package analysis

import (
	"thyroidrisk/domain/dataset"
)

// Metric is one headline number on the overview page
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// OverviewMetrics are the four headline numbers of the overview page
type OverviewMetrics struct {
	TotalRecords Metric `json:"total_records"`
	Features     Metric `json:"features"`
	// Third is "High Risk Cases" when the risk column exists, else "Data Columns".
	Third         Metric `json:"third"`
	MissingValues Metric `json:"missing_values"`
}

// All returns the metrics in display order
func (m OverviewMetrics) All() []Metric {
	return []Metric{m.TotalRecords, m.Features, m.Third, m.MissingValues}
}

// HighRiskLabel is the risk value counted as a high-risk case
const HighRiskLabel = "High"

// Overview computes the headline metrics for a table
func Overview(table *dataset.Table) OverviewMetrics {
	rows, cols := table.Shape()

	third := Metric{Label: "Data Columns", Value: cols}
	if risk, ok := table.Lookup(dataset.FieldRisk); ok {
		third = Metric{Label: "High Risk Cases", Value: CountEqual(risk, HighRiskLabel)}
	}

	return OverviewMetrics{
		TotalRecords:  Metric{Label: "Total Records", Value: rows},
		Features:      Metric{Label: "Features", Value: cols},
		Third:         third,
		MissingValues: Metric{Label: "Missing Values", Value: table.NullCount()},
	}
}

// CountEqual counts non-missing cells whose raw text equals value
func CountEqual(col *dataset.Column, value string) int {
	n := 0
	for _, cell := range col.Cells {
		if !cell.Missing && cell.Raw == value {
			n++
		}
	}
	return n
}
