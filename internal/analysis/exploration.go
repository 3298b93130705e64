package analysis

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/samber/lo"

	"thyroidrisk/domain/dataset"
)

// ColumnCount pairs a column name with a count
type ColumnCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// MissingByColumn returns columns with at least one missing cell, most
// missing first. Ties keep column order.
func MissingByColumn(table *dataset.Table) []ColumnCount {
	counts := lo.FilterMap(table.Columns, func(col *dataset.Column, _ int) (ColumnCount, bool) {
		n := col.NullCount()
		return ColumnCount{Column: col.Name, Count: n}, n > 0
	})
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// ColumnType pairs a column name with its inferred dtype
type ColumnType struct {
	Column string        `json:"column"`
	DType  dataset.DType `json:"dtype"`
}

// DTypes lists column dtypes in column order
func DTypes(table *dataset.Table) []ColumnType {
	return lo.Map(table.Columns, func(col *dataset.Column, _ int) ColumnType {
		return ColumnType{Column: col.Name, DType: col.DType}
	})
}

// Byte sizes used for the in-memory footprint estimate. They follow a
// columnar layout with boxed strings: fixed-width cells for numeric and bool
// columns, a pointer plus a string object for each object cell.
const (
	indexBytes        = 128
	fixedCellBytes    = 8
	pointerBytes      = 8
	stringHeaderBytes = 49
	boxedNaNBytes     = 24
)

// MemoryUsage estimates the bytes needed to hold the table in memory
func MemoryUsage(table *dataset.Table) int64 {
	total := int64(indexBytes)
	for _, col := range table.Columns {
		switch col.DType {
		case dataset.DTypeObject:
			for _, cell := range col.Cells {
				total += pointerBytes
				if cell.Missing {
					total += boxedNaNBytes
					continue
				}
				total += stringHeaderBytes + int64(utf8.RuneCountInString(cell.Raw))
			}
		case dataset.DTypeBool:
			total += int64(len(col.Cells))
		default:
			total += int64(len(col.Cells)) * fixedCellBytes
		}
	}
	return total
}

// FormatMegabytes renders a byte count as "1.23 MB"
func FormatMegabytes(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}
