package views

import "fmt"

// Page is one of the six dashboard sections
type Page int

const (
	PageOverview Page = iota
	PageDataExploration
	PageRiskFactorAnalysis
	PageDemographicAnalysis
	PagePredictiveModeling
	PageKeyInsights
)

var pageMeta = [...]struct {
	title string
	slug  string
	icon  string
}{
	PageOverview:            {"Overview", "overview", "📊"},
	PageDataExploration:     {"Data Exploration", "data-exploration", "🔍"},
	PageRiskFactorAnalysis:  {"Risk Factor Analysis", "risk-factor-analysis", "⚠️"},
	PageDemographicAnalysis: {"Demographic Analysis", "demographic-analysis", "👥"},
	PagePredictiveModeling:  {"Predictive Modeling", "predictive-modeling", "🤖"},
	PageKeyInsights:         {"Key Insights", "key-insights", "💡"},
}

// Pages returns every page in sidebar order
func Pages() []Page {
	return []Page{
		PageOverview,
		PageDataExploration,
		PageRiskFactorAnalysis,
		PageDemographicAnalysis,
		PagePredictiveModeling,
		PageKeyInsights,
	}
}

// Valid reports whether p is one of the six pages
func (p Page) Valid() bool {
	return p >= PageOverview && p <= PageKeyInsights
}

// Title is the sidebar label
func (p Page) Title() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageMeta[p].title
}

// Slug is the URL segment
func (p Page) Slug() string {
	if !p.Valid() {
		return ""
	}
	return pageMeta[p].slug
}

// Icon is shown before the page heading
func (p Page) Icon() string {
	if !p.Valid() {
		return ""
	}
	return pageMeta[p].icon
}

func (p Page) String() string { return p.Title() }

// MarshalText encodes the page as its slug
func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid page %d", int(p))
	}
	return []byte(p.Slug()), nil
}

// ParsePage resolves a slug or a sidebar title
func ParsePage(s string) (Page, bool) {
	for _, p := range Pages() {
		if s == p.Slug() || s == p.Title() {
			return p, true
		}
	}
	return PageOverview, false
}
