package main

import (
	"math"

	"thyroidrisk/adapters/excel"
	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/analysis"
	"thyroidrisk/internal/profiling"
)

// describeSheets lays out the statistical summary and the column types as
// workbook sheets. NaN statistics become empty cells.
func describeSheets(table *dataset.Table) []excel.Sheet {
	desc := profiling.NewDistributionAnalyzer().Describe(table)

	summary := excel.Sheet{Name: "Summary", Header: []string{"statistic"}}
	if len(desc.Numeric) > 0 {
		for _, s := range desc.Numeric {
			summary.Header = append(summary.Header, s.Column)
		}
		for i, label := range profiling.StatLabels {
			row := []interface{}{label}
			for _, s := range desc.Numeric {
				v := s.Values()[i]
				if math.IsNaN(v) {
					row = append(row, nil)
				} else {
					row = append(row, v)
				}
			}
			summary.Rows = append(summary.Rows, row)
		}
	} else {
		for _, s := range desc.Categorical {
			summary.Header = append(summary.Header, s.Column)
		}
		fields := []func(profiling.CategoricalSummary) interface{}{
			func(s profiling.CategoricalSummary) interface{} { return s.Count },
			func(s profiling.CategoricalSummary) interface{} { return s.Unique },
			func(s profiling.CategoricalSummary) interface{} { return s.Top },
			func(s profiling.CategoricalSummary) interface{} { return s.Freq },
		}
		for i, label := range profiling.CategoricalLabels {
			row := []interface{}{label}
			for _, s := range desc.Categorical {
				row = append(row, fields[i](s))
			}
			summary.Rows = append(summary.Rows, row)
		}
	}

	types := excel.Sheet{Name: "Data Types", Header: []string{"column", "dtype", "missing"}}
	for i, ct := range analysis.DTypes(table) {
		types.Rows = append(types.Rows, []interface{}{ct.Column, string(ct.DType), table.Columns[i].NullCount()})
	}

	return []excel.Sheet{summary, types}
}
