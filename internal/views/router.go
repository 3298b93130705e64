package views

import (
	"fmt"
	"html/template"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/analysis"
	"thyroidrisk/internal/charts"
	"thyroidrisk/internal/loader"
	"thyroidrisk/internal/profiling"
)

// Router dispatches a page to its renderer. Renderers are pure functions of
// the table and never fail; absent columns produce notices instead.
type Router struct {
	headRows int
	analyzer *profiling.DistributionAnalyzer
	printer  *message.Printer
}

// NewRouter creates a router that previews headRows rows on the overview
func NewRouter(headRows int) *Router {
	return &Router{
		headRows: headRows,
		analyzer: profiling.NewDistributionAnalyzer(),
		printer:  message.NewPrinter(language.English),
	}
}

// Render builds the view for page
func (r *Router) Render(page Page, table *dataset.Table) View {
	var blocks []Block
	switch page {
	case PageOverview:
		blocks = r.overview(table)
	case PageDataExploration:
		blocks = r.dataExploration(table)
	case PageRiskFactorAnalysis:
		blocks = r.riskFactorAnalysis(table)
	case PageDemographicAnalysis:
		blocks = r.demographicAnalysis(table)
	case PagePredictiveModeling:
		blocks = r.predictiveModeling(table)
	case PageKeyInsights:
		blocks = r.keyInsights(table)
	default:
		page = PageOverview
		blocks = r.overview(table)
	}

	return View{
		Page:   page,
		Title:  page.Title(),
		Blocks: append([]Block{header(page.Icon() + " " + headingFor(page))}, blocks...),
	}
}

func headingFor(page Page) string {
	if page == PageOverview {
		return "Project Overview"
	}
	return page.Title()
}

func (r *Router) overview(table *dataset.Table) []Block {
	m := analysis.Overview(table)
	cards := make([]MetricCard, 0, 4)
	for _, metric := range m.All() {
		cards = append(cards, MetricCard{Label: metric.Label, Value: r.printer.Sprintf("%d", metric.Value)})
	}

	return []Block{
		{Kind: BlockMetrics, Metrics: cards},
		divider(),
		markdownBlock(aboutAnalysis),
		subheader("📋 Dataset Sample"),
		{Kind: BlockTable, Table: headTable(table, r.headRows)},
	}
}

func (r *Router) dataExploration(table *dataset.Table) []Block {
	rows, cols := table.Shape()
	info := fmt.Sprintf("Shape: (%d, %d)\nMemory usage: %s", rows, cols,
		analysis.FormatMegabytes(analysis.MemoryUsage(table)))

	dtypes := &TableData{Header: []string{"Column", "Data Type"}}
	for _, ct := range analysis.DTypes(table) {
		dtypes.Rows = append(dtypes.Rows, []string{ct.Column, string(ct.DType)})
	}

	left := []Block{
		subheader("Dataset Information"),
		text(info),
		subheader("Data Types"),
		{Kind: BlockTable, Table: dtypes},
	}

	right := []Block{subheader("Missing Values")}
	missing := analysis.MissingByColumn(table)
	if len(missing) > 0 {
		points := make([]charts.Point, len(missing))
		for i, m := range missing {
			points[i] = charts.Point{Label: m.Column, Value: float64(m.Count)}
		}
		right = append(right, chartOrNotice(charts.Bar("Missing Values by Column", "Columns", "Missing Count", points)))
	} else {
		right = append(right, notice(loader.LevelSuccess, msgNoMissing))
	}

	return []Block{
		columns(left, right),
		subheader("📈 Statistical Summary"),
		{Kind: BlockTable, Table: describeTable(r.analyzer.Describe(table))},
	}
}

func (r *Router) riskFactorAnalysis(table *dataset.Table) []Block {
	blocks := []Block{markdownBlock(riskFactorIntro)}

	if risk, ok := table.Lookup(dataset.FieldRisk); ok {
		points := valuePoints(profiling.ValueCounts(risk))
		blocks = append(blocks, chartOrNotice(charts.Pie("Distribution of Thyroid Cancer Risk Levels", points)))
	}

	return append(blocks, notice(loader.LevelInfo, msgCustomize))
}

func (r *Router) demographicAnalysis(table *dataset.Table) []Block {
	blocks := []Block{markdownBlock(demographicIntro)}

	if gender, ok := table.Lookup(dataset.FieldGender); ok {
		points := valuePoints(profiling.ValueCounts(gender))
		blocks = append(blocks, chartOrNotice(charts.Bar("Gender Distribution", "Gender", "Count", points)))
	}

	return append(blocks, notice(loader.LevelInfo, msgCustomize))
}

func (r *Router) predictiveModeling(_ *dataset.Table) []Block {
	return []Block{
		markdownBlock(modelingIntro),
		notice(loader.LevelInfo, msgModelingSoon),
	}
}

func (r *Router) keyInsights(_ *dataset.Table) []Block {
	return []Block{markdownBlock(keyInsights)}
}

func chartOrNotice(svg template.HTML, err error) Block {
	if err != nil {
		return notice(loader.LevelInfo, fmt.Sprintf(msgChartFailedFmt, err))
	}
	return chartBlock(svg)
}

func valuePoints(counts []profiling.ValueCount) []charts.Point {
	points := make([]charts.Point, len(counts))
	for i, vc := range counts {
		points[i] = charts.Point{Label: vc.Value, Value: float64(vc.Count)}
	}
	return points
}

func headTable(table *dataset.Table, n int) *TableData {
	if n > table.Rows {
		n = table.Rows
	}
	data := &TableData{Header: table.ColumnNames(), Rows: make([][]string, n)}
	for i := 0; i < n; i++ {
		row := make([]string, len(table.Columns))
		for j, col := range table.Columns {
			row[j] = formatCell(col, col.Cells[i])
		}
		data.Rows[i] = row
	}
	return data
}

func formatCell(col *dataset.Column, cell dataset.Cell) string {
	if cell.Missing {
		if col.DType == dataset.DTypeObject {
			return "None"
		}
		return "NaN"
	}
	if col.DType == dataset.DTypeFloat64 {
		return strconv.FormatFloat(cell.Number, 'f', -1, 64)
	}
	return cell.Raw
}

func describeTable(desc profiling.Description) *TableData {
	if len(desc.Numeric) > 0 {
		data := &TableData{Header: []string{""}}
		for _, s := range desc.Numeric {
			data.Header = append(data.Header, s.Column)
		}
		for i, label := range profiling.StatLabels {
			row := []string{label}
			for _, s := range desc.Numeric {
				row = append(row, formatStat(s.Values()[i]))
			}
			data.Rows = append(data.Rows, row)
		}
		return data
	}

	data := &TableData{Header: []string{""}}
	for _, s := range desc.Categorical {
		data.Header = append(data.Header, s.Column)
	}
	for _, label := range profiling.CategoricalLabels {
		row := []string{label}
		for _, s := range desc.Categorical {
			switch label {
			case "count":
				row = append(row, strconv.Itoa(s.Count))
			case "unique":
				row = append(row, strconv.Itoa(s.Unique))
			case "top":
				row = append(row, s.Top)
			case "freq":
				row = append(row, strconv.Itoa(s.Freq))
			}
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
