package textengine

import (
	"strings"

	"github.com/atweb-solid/solid-monaco/engine"
	"github.com/atweb-solid/solid-monaco/internal/grapheme"
)

type docSnapshot struct {
	text string
}

type historyState struct {
	undo []docSnapshot
	redo []docSnapshot
	// open reports whether the top undo group is still accepting edits.
	// PushUndoStop seals it.
	open bool
}

// Document holds content, language mode and undo history for one logical
// document. It implements engine.Model.
type Document struct {
	path     string
	language string

	lines   [][]string // grapheme clusters per line
	version uint64

	hist     historyState
	disposed bool
}

// NewDocument constructs a document. path is identity metadata only; the
// engine does not deduplicate by it.
func NewDocument(value, language, path string) *Document {
	return &Document{
		path:     path,
		language: language,
		lines:    splitLines(value),
	}
}

func (d *Document) Value() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// SetValue replaces the whole content directly and resets undo history.
func (d *Document) SetValue(s string) {
	d.checkLive()
	if d.Value() == s {
		return
	}
	d.lines = splitLines(s)
	d.hist = historyState{}
	d.version++
}

func (d *Document) Language() string { return d.language }

func (d *Document) SetLanguage(lang string) {
	d.checkLive()
	d.language = lang
}

func (d *Document) Path() string { return d.path }

func (d *Document) Version() uint64 { return d.version }

func (d *Document) FullRange() engine.Range {
	lastRow := len(d.lines) - 1
	if lastRow < 0 {
		return engine.Range{}
	}
	return engine.Range{
		Start: engine.Position{},
		End:   engine.Position{Row: lastRow, Col: len(d.lines[lastRow])},
	}
}

func (d *Document) Dispose() { d.disposed = true }

func (d *Document) Disposed() bool { return d.disposed }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the text of row, or "" when row is out of bounds.
func (d *Document) Line(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return grapheme.Join(d.lines[row])
}

func (d *Document) lineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

// ClampPosition clamps p into document bounds.
func (d *Document) ClampPosition(p engine.Position) engine.Position {
	rows := len(d.lines)
	if rows == 0 {
		rows = 1
	}
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > rows-1 {
		p.Row = rows - 1
	}
	max := d.lineLen(p.Row)
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > max {
		p.Col = max
	}
	return p
}

// ApplyEdits applies edits as one transaction attributed to source.
// Edits are applied in order against the evolving content. ok is false when
// nothing changed; no undo group is recorded and no event should be
// dispatched in that case.
func (d *Document) ApplyEdits(source engine.ChangeSource, edits []engine.EditOperation) (ev engine.ChangeEvent, ok bool) {
	d.checkLive()

	prevText := d.Value()
	prevVersion := d.version

	var applied []engine.EditOperation
	for _, e := range edits {
		if after, changed := d.replaceRange(e.Range, e.Text); changed {
			applied = append(applied, engine.EditOperation{
				Range: engine.Range{Start: NormalizedStart(e.Range), End: after},
				Text:  e.Text,
			})
		}
	}
	if len(applied) == 0 {
		return engine.ChangeEvent{}, false
	}

	if !d.hist.open {
		d.hist.undo = append(d.hist.undo, docSnapshot{text: prevText})
		d.hist.open = true
	}
	d.hist.redo = nil
	d.version++

	return engine.ChangeEvent{
		Source:        source,
		VersionBefore: prevVersion,
		VersionAfter:  d.version,
		Edits:         applied,
	}, true
}

// PushUndoStop seals the current undo group. The next effective edit starts
// a new undoable step.
func (d *Document) PushUndoStop() { d.hist.open = false }

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo restores the state before the most recent undo group.
func (d *Document) Undo() (engine.ChangeEvent, bool) {
	d.checkLive()
	n := len(d.hist.undo)
	if n == 0 {
		return engine.ChangeEvent{}, false
	}

	cur := docSnapshot{text: d.Value()}
	prev := d.hist.undo[n-1]
	d.hist.undo = d.hist.undo[:n-1]
	d.hist.redo = append(d.hist.redo, cur)
	d.hist.open = false

	return d.restore(prev.text, cur.text)
}

// Redo reapplies the most recently undone group.
func (d *Document) Redo() (engine.ChangeEvent, bool) {
	d.checkLive()
	n := len(d.hist.redo)
	if n == 0 {
		return engine.ChangeEvent{}, false
	}

	cur := docSnapshot{text: d.Value()}
	next := d.hist.redo[n-1]
	d.hist.redo = d.hist.redo[:n-1]
	d.hist.undo = append(d.hist.undo, cur)
	d.hist.open = false

	return d.restore(next.text, cur.text)
}

func (d *Document) restore(text, prevText string) (engine.ChangeEvent, bool) {
	prevVersion := d.version
	prevRange := d.FullRange()
	d.lines = splitLines(text)
	d.version++
	return engine.ChangeEvent{
		Source:        engine.ChangeSourceUser,
		VersionBefore: prevVersion,
		VersionAfter:  d.version,
		Edits: []engine.EditOperation{{
			Range: prevRange,
			Text:  text,
		}},
	}, true
}

// replaceRange substitutes text for r, returning the position just after the
// inserted text. changed is false when the replacement is a no-op.
func (d *Document) replaceRange(r engine.Range, text string) (after engine.Position, changed bool) {
	r = engine.NormalizeRange(engine.Range{
		Start: d.ClampPosition(r.Start),
		End:   d.ClampPosition(r.End),
	})
	if r.IsEmpty() && text == "" {
		return r.Start, false
	}
	if d.textInRange(r) == text {
		return r.Start, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]string(nil), d.lines[startRow][:startCol]...)
	suffix := append([]string(nil), d.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		after = engine.Position{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]string(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		after = engine.Position{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	out := make([][]string, 0, startRow+len(repl)+len(d.lines)-endRow-1)
	out = append(out, d.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, d.lines[endRow+1:]...)
	if len(out) == 0 {
		out = [][]string{nil}
	}
	d.lines = out
	return after, true
}

func (d *Document) textInRange(r engine.Range) string {
	r = engine.NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(d.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		start, end := 0, len(d.lines[row])
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		sb.WriteString(grapheme.Join(d.lines[row][start:end]))
	}
	return sb.String()
}

func (d *Document) checkLive() {
	if d.disposed {
		panic("textengine: use of disposed document " + d.path)
	}
}

// NormalizedStart returns the lesser endpoint of r in document order.
func NormalizedStart(r engine.Range) engine.Position {
	return engine.NormalizeRange(r).Start
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
