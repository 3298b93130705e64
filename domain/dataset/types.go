package dataset

import (
	"fmt"
	"time"
)

// DType mirrors the column storage types a reader infers from raw text
type DType string

const (
	DTypeInt64   DType = "int64"
	DTypeFloat64 DType = "float64"
	DTypeBool    DType = "bool"
	DTypeObject  DType = "object"
)

// IsNumeric reports whether summary statistics apply to the column
func (d DType) IsNumeric() bool {
	return d == DTypeInt64 || d == DTypeFloat64
}

// Field names a column the dashboard knows how to analyse
type Field string

// Known fields. Names follow the generated sample data, not the Kaggle export
// (which uses Thyroid_Cancer_Risk, TSH_Level, ...).
const (
	FieldAge     Field = "Age"
	FieldGender  Field = "Gender"
	FieldCountry Field = "Country"
	FieldRisk    Field = "Thyroid Cancer Risk"
	FieldTSH     Field = "TSH"
	FieldT3      Field = "T3"
	FieldT4      Field = "T4"
)

// KnownFields lists fields in the order the sample generator emits them
func KnownFields() []Field {
	return []Field{FieldAge, FieldGender, FieldCountry, FieldRisk, FieldTSH, FieldT3, FieldT4}
}

// Cell is a single value. Number is only meaningful for numeric or bool columns.
type Cell struct {
	Raw     string  `json:"raw"`
	Number  float64 `json:"number,omitempty"`
	Missing bool    `json:"missing"`
}

// Column holds one named field across all rows
type Column struct {
	Name  string `json:"name"`
	DType DType  `json:"dtype"`
	Cells []Cell `json:"-"`
}

// NullCount returns the number of missing cells
func (c *Column) NullCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Missing {
			n++
		}
	}
	return n
}

// Numbers returns the non-missing numeric values of a numeric column
func (c *Column) Numbers() []float64 {
	if !c.DType.IsNumeric() {
		return nil
	}
	out := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Missing {
			out = append(out, cell.Number)
		}
	}
	return out
}

// Table is the Record Table: loaded once, read-only afterwards
type Table struct {
	Source   string    `json:"source"`
	Columns  []*Column `json:"columns"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`

	index map[string]int
}

// NewTable assembles a table and checks every column has the same length
func NewTable(source string, columns []*Column) (*Table, error) {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0].Cells)
	}
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if len(col.Cells) != rows {
			return nil, fmt.Errorf("column %q has %d cells, expected %d", col.Name, len(col.Cells), rows)
		}
		if _, dup := index[col.Name]; !dup {
			index[col.Name] = i
		}
	}
	return &Table{
		Source:   source,
		Columns:  columns,
		Rows:     rows,
		LoadedAt: time.Now(),
		index:    index,
	}, nil
}

// Lookup returns the column for a known field and whether it is present
func (t *Table) Lookup(field Field) (*Column, bool) {
	return t.Column(string(field))
}

// Column returns a column by its header name
func (t *Table) Column(name string) (*Column, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.Columns[i], true
}

// Shape returns (rows, columns)
func (t *Table) Shape() (int, int) {
	return t.Rows, len(t.Columns)
}

// ColumnNames returns headers in file order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// NullCount returns the total number of missing cells in the table
func (t *Table) NullCount() int {
	total := 0
	for _, col := range t.Columns {
		total += col.NullCount()
	}
	return total
}

// Row returns the raw text of row i in column order, with missing cells rendered empty
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		cell := col.Cells[i]
		if cell.Missing {
			continue
		}
		out[j] = cell.Raw
	}
	return out
}

// Head returns up to n rows as raw text
func (t *Table) Head(n int) [][]string {
	if n > t.Rows {
		n = t.Rows
	}
	if n < 0 {
		n = 0
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		rows[i] = t.Row(i)
	}
	return rows
}
