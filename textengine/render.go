package textengine

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/atweb-solid/solid-monaco/internal/grapheme"
)

// renderContent renders the whole document into viewport content: optional
// line-number gutter, text, and a block cursor on the active cell.
func (e *Editor) renderContent() string {
	if e.doc == nil {
		return ""
	}

	theme := e.handle.theme()
	showNums := e.opts.Bool("lineNumbers", true)
	numWidth := 0
	if showNums {
		numWidth = len(fmt.Sprintf("%d", e.doc.LineCount()))
	}

	contentWidth := e.viewport.Width - e.viewport.Style.GetHorizontalFrameSize()
	if showNums {
		contentWidth -= numWidth + 1
	}

	var sb strings.Builder
	for row := 0; row < e.doc.LineCount(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		if showNums {
			num := fmt.Sprintf("%*d ", numWidth, row+1)
			if row == e.cursor.Row {
				sb.WriteString(theme.LineNumActive.Render(num))
			} else {
				sb.WriteString(theme.LineNum.Render(num))
			}
		}
		sb.WriteString(e.renderLine(theme, row, contentWidth))
	}
	return sb.String()
}

func (e *Editor) renderLine(theme Theme, row, maxWidth int) string {
	clusters := clipToWidth(grapheme.Split(e.doc.Line(row)), maxWidth)
	if row != e.cursor.Row {
		return theme.Text.Render(grapheme.Join(clusters))
	}

	col := e.cursor.Col
	if col > len(clusters) {
		col = len(clusters)
	}
	before := grapheme.Join(clusters[:col])
	cursorCell := " "
	after := ""
	if col < len(clusters) {
		cursorCell = clusters[col]
		after = grapheme.Join(clusters[col+1:])
	}
	return theme.Text.Render(before) + theme.Cursor.Render(cursorCell) + theme.Text.Render(after)
}

// clipToWidth drops trailing clusters once the rendered cell width exceeds
// maxWidth. maxWidth <= 0 means unbounded (size not yet known).
func clipToWidth(clusters []string, maxWidth int) []string {
	if maxWidth <= 0 {
		return clusters
	}
	w := 0
	for i, c := range clusters {
		w += runewidth.StringWidth(c)
		if w > maxWidth {
			return clusters[:i]
		}
	}
	return clusters
}
