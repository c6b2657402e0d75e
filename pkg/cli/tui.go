package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CellWidth is the minimum inner width of a boxed cell.
const CellWidth = 13

// Theme defines the colors and border glyphs of boxed output.
type Theme struct {
	Primary lipgloss.Color // border and title color; empty for none
	Border  lipgloss.Border
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Border:  lipgloss.RoundedBorder(),
}

// Themes maps theme names accepted in settings to themes.
var Themes = map[string]Theme{
	"default": DefaultTheme,
	"mono":    {Border: lipgloss.NormalBorder()},
	"ascii":   {Border: asciiBorder},
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	MiddleLeft: "+", MiddleRight: "+", Middle: "+", MiddleTop: "+", MiddleBottom: "+",
}

// ThemeByName returns the named theme, or DefaultTheme for an empty or
// unknown name.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return DefaultTheme
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
	Glyphs lipgloss.Border
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	s := Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Cell:   lipgloss.NewStyle().Align(lipgloss.Center),
		Border: lipgloss.NewStyle(),
		Glyphs: t.Border,
	}
	if t.Primary != "" {
		s.Title = s.Title.Foreground(t.Primary)
		s.Border = s.Border.Foreground(t.Primary)
	}
	return s
}

// Column is a titled vertical run of cells, drawn first cell on top.
type Column struct {
	Title string
	Cells []string
}

// Boxed is implemented by results that render as columns of boxed cells.
type Boxed interface {
	Columns() []Column
}

// RenderColumns draws each column as a stack of boxed cells and lays the
// columns out side by side.
func (s Styles) RenderColumns(cols []Column) string {
	blocks := make([]string, 0, len(cols))
	for _, c := range cols {
		blocks = append(blocks, s.RenderColumn(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, intersperse(blocks, " ")...)
}

// RenderColumn draws one column. The top edge is left open:
//
//	+             +
//	|      c      |
//	+-------------+
//	|      b      |
//	+-------------+
func (s Styles) RenderColumn(c Column) string {
	width := CellWidth
	for _, cell := range c.Cells {
		width = max(width, lipgloss.Width(cell)+2)
	}

	g := s.Glyphs
	bc := s.Border
	var lines []string
	if c.Title != "" {
		lines = append(lines, s.Title.Width(width+2).Align(lipgloss.Center).Render(c.Title))
	}
	lines = append(lines, bc.Render(g.TopLeft+strings.Repeat(" ", width)+g.TopRight))
	for i, cell := range c.Cells {
		lines = append(lines, bc.Render(g.Left)+s.Cell.Width(width).Render(cell)+bc.Render(g.Right))
		left, right := g.MiddleLeft, g.MiddleRight
		if i == len(c.Cells)-1 {
			left, right = g.BottomLeft, g.BottomRight
		}
		lines = append(lines, bc.Render(left+strings.Repeat(g.Bottom, width)+right))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func intersperse(blocks []string, sep string) []string {
	if len(blocks) < 2 {
		return blocks
	}
	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
