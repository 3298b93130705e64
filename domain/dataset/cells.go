package dataset

import (
	"math"
	"strconv"
	"strings"
)

// naValues are the strings a CSV reader treats as missing by default
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether raw text denotes a missing value
func IsMissing(raw string) bool {
	_, ok := naValues[raw]
	return ok
}

// BuildColumn infers the dtype of raw values and parses them into cells
func BuildColumn(name string, raw []string) *Column {
	cells := make([]Cell, len(raw))
	present := 0
	allInt, allFloat, allBool := true, true, true

	for i, v := range raw {
		if IsMissing(v) {
			cells[i] = Cell{Missing: true}
			continue
		}
		present++
		cells[i] = Cell{Raw: v}
		if allInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if f, err := strconv.ParseFloat(v, 64); err != nil || math.IsNaN(f) {
				allFloat = false
			}
		}
		if allBool && !isBoolLiteral(v) {
			allBool = false
		}
	}

	missing := present < len(raw)
	dtype := DTypeObject
	switch {
	case present == 0:
		dtype = DTypeFloat64
	case allInt && !missing:
		dtype = DTypeInt64
	case allFloat:
		dtype = DTypeFloat64
	case allBool && !missing:
		dtype = DTypeBool
	}

	for i := range cells {
		if cells[i].Missing {
			continue
		}
		switch dtype {
		case DTypeInt64, DTypeFloat64:
			cells[i].Number, _ = strconv.ParseFloat(cells[i].Raw, 64)
		case DTypeBool:
			if strings.EqualFold(cells[i].Raw, "true") {
				cells[i].Number = 1
			}
		}
	}

	return &Column{Name: name, DType: dtype, Cells: cells}
}

func isBoolLiteral(v string) bool {
	switch v {
	case "True", "False", "TRUE", "FALSE", "true", "false":
		return true
	}
	return false
}
