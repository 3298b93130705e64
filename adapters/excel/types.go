package excel

import "thyroidrisk/domain/dataset"

// ExcelData represents a raw sheet: headers plus rows squared to the header width
type ExcelData struct {
	Headers []string   // Column headers
	Rows    [][]string // Data rows, one cell per header
}

// Table infers column types and builds the Record Table
func (d *ExcelData) Table(source string) (*dataset.Table, error) {
	columns := make([]*dataset.Column, len(d.Headers))
	for j, header := range d.Headers {
		raw := make([]string, len(d.Rows))
		for i, row := range d.Rows {
			raw[i] = row[j]
		}
		columns[j] = dataset.BuildColumn(header, raw)
	}
	return dataset.NewTable(source, columns)
}
