package views

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"thyroidrisk/internal/loader"
)

// BlockKind selects how a block is drawn
type BlockKind string

const (
	BlockHeader   BlockKind = "header"
	BlockSubtitle BlockKind = "subheader"
	BlockMarkdown BlockKind = "markdown"
	BlockText     BlockKind = "text"
	BlockMetrics  BlockKind = "metrics"
	BlockTable    BlockKind = "table"
	BlockChart    BlockKind = "chart"
	BlockNotice   BlockKind = "notice"
	BlockDivider  BlockKind = "divider"
	BlockColumns  BlockKind = "columns"
)

// MetricCard is a labelled headline number, already formatted
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TableData is a rectangular grid of display strings
type TableData struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Block is one piece of page content
type Block struct {
	Kind     BlockKind      `json:"kind"`
	Text     string         `json:"text,omitempty"`
	HTML     template.HTML  `json:"html,omitempty"`
	Metrics  []MetricCard   `json:"metrics,omitempty"`
	Table    *TableData     `json:"table,omitempty"`
	Notice   *loader.Notice `json:"notice,omitempty"`
	Children [][]Block      `json:"children,omitempty"`
}

// View is the rendered content of one page
type View struct {
	Page   Page    `json:"page"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// HasChart reports whether any block, nested or not, is a chart
func (v View) HasChart() bool {
	return containsKind(v.Blocks, BlockChart)
}

// Find returns the first block of kind, searching nested columns too
func (v View) Find(kind BlockKind) (Block, bool) {
	return findKind(v.Blocks, kind)
}

func containsKind(blocks []Block, kind BlockKind) bool {
	_, ok := findKind(blocks, kind)
	return ok
}

func findKind(blocks []Block, kind BlockKind) (Block, bool) {
	for _, b := range blocks {
		if b.Kind == kind {
			return b, true
		}
		for _, col := range b.Children {
			if found, ok := findKind(col, kind); ok {
				return found, true
			}
		}
	}
	return Block{}, false
}

func header(text string) Block    { return Block{Kind: BlockHeader, Text: text} }
func subheader(text string) Block { return Block{Kind: BlockSubtitle, Text: text} }
func text(body string) Block      { return Block{Kind: BlockText, Text: body} }
func divider() Block              { return Block{Kind: BlockDivider} }

func chartBlock(svg template.HTML) Block {
	return Block{Kind: BlockChart, HTML: svg}
}

func notice(level loader.NoticeLevel, message string) Block {
	return Block{Kind: BlockNotice, Notice: &loader.Notice{Level: level, Message: message}}
}

func columns(cols ...[]Block) Block {
	return Block{Kind: BlockColumns, Children: cols}
}

// markdownBlock renders trusted, hand-written markdown
func markdownBlock(source string) Block {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	out := markdown.ToHTML([]byte(source), p, renderer)
	return Block{Kind: BlockMarkdown, Text: source, HTML: template.HTML(out)}
}
