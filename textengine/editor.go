package textengine

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atweb-solid/solid-monaco/engine"
)

// Editor is a live editor instance: one attached document, a cursor, and a
// scrolling viewport. It implements engine.Editor.
//
// Editors are not goroutine safe; drive them from a single update loop.
type Editor struct {
	handle *Handle
	doc    *Document

	km       KeyMap
	viewport viewport.Model
	cursor   engine.Position

	opts engine.Options

	subs    map[int]func(engine.ChangeEvent)
	nextSub int

	disposed bool
}

func newEditor(h *Handle, container engine.Container, doc *Document, opts engine.Options) *Editor {
	e := &Editor{
		handle:   h,
		doc:      doc,
		km:       DefaultKeyMap(),
		viewport: viewport.New(container.Width, container.Height),
		opts:     engine.Options{}.Merge(opts),
		subs:     make(map[int]func(engine.ChangeEvent)),
	}
	e.rebuildContent()
	return e
}

func (e *Editor) Value() string {
	if e.doc == nil {
		return ""
	}
	return e.doc.Value()
}

// SetValue replaces the attached document's content directly. Undo history
// resets and no content-change notification is dispatched.
func (e *Editor) SetValue(s string) {
	if e.doc == nil {
		return
	}
	e.doc.SetValue(s)
	e.cursor = e.doc.ClampPosition(e.cursor)
	e.rebuildContent()
}

// ExecuteEdits applies edits as a single transaction. It is a programmatic
// entry point and is not gated by the readOnly option.
func (e *Editor) ExecuteEdits(source engine.ChangeSource, edits []engine.EditOperation) {
	if e.doc == nil {
		return
	}
	ev, ok := e.doc.ApplyEdits(source, edits)
	if !ok {
		return
	}
	if n := len(ev.Edits); n > 0 {
		e.cursor = e.doc.ClampPosition(ev.Edits[n-1].Range.End)
	}
	e.rebuildContent()
	e.followCursor()
	e.dispatch(ev)
}

func (e *Editor) PushUndoStop() {
	if e.doc != nil {
		e.doc.PushUndoStop()
	}
}

func (e *Editor) UpdateOptions(opts engine.Options) {
	e.opts = e.opts.Merge(opts)
	e.rebuildContent()
}

func (e *Editor) ReadOnly() bool {
	return e.opts.Bool("readOnly", false)
}

func (e *Editor) Model() engine.Model {
	if e.doc == nil {
		return nil
	}
	return e.doc
}

// SetModel swaps the attached document. The previous document stays alive;
// cursor and scroll reset, to be restored by the caller from saved view
// state if desired.
func (e *Editor) SetModel(m engine.Model) {
	doc, _ := m.(*Document)
	e.doc = doc
	e.cursor = engine.Position{}
	e.viewport.SetYOffset(0)
	e.rebuildContent()
}

func (e *Editor) SaveViewState() engine.ViewState {
	return encodeViewState(viewState{
		CursorRow: e.cursor.Row,
		CursorCol: e.cursor.Col,
		ScrollTop: e.viewport.YOffset,
	})
}

func (e *Editor) RestoreViewState(raw engine.ViewState) {
	st, ok := decodeViewState(raw)
	if !ok {
		return
	}
	e.cursor = engine.Position{Row: st.CursorRow, Col: st.CursorCol}
	if e.doc != nil {
		e.cursor = e.doc.ClampPosition(e.cursor)
	}
	e.viewport.SetYOffset(st.ScrollTop)
	e.rebuildContent()
}

func (e *Editor) OnContentChanged(cb func(engine.ChangeEvent)) engine.Subscription {
	e.nextSub++
	id := e.nextSub
	e.subs[id] = cb
	return &subscription{editor: e, id: id}
}

func (e *Editor) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.viewport.Width = width
	e.viewport.Height = height
	e.rebuildContent()
	e.followCursor()
}

func (e *Editor) View() string { return e.viewport.View() }

func (e *Editor) Dispose() {
	e.disposed = true
	e.subs = nil
	e.handle.dropEditor(e)
}

func (e *Editor) Disposed() bool { return e.disposed }

// Cursor returns the current cursor position.
func (e *Editor) Cursor() engine.Position { return e.cursor }

// SetCursor moves the cursor, clamped to the document.
func (e *Editor) SetCursor(p engine.Position) {
	if e.doc == nil {
		return
	}
	e.cursor = e.doc.ClampPosition(p)
	e.rebuildContent()
	e.followCursor()
}

// HandleKey feeds one key press into the editor. Mutating keys are ignored
// while the readOnly option is set.
func (e *Editor) HandleKey(msg tea.KeyMsg) {
	if e.doc == nil || e.disposed {
		return
	}

	// Paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !e.ReadOnly() {
			e.insertAtCursor(string(msg.Runes))
		}
		return
	}

	switch {
	case key.Matches(msg, e.km.Left):
		e.moveHorizontal(-1)
	case key.Matches(msg, e.km.Right):
		e.moveHorizontal(1)
	case key.Matches(msg, e.km.Up):
		e.SetCursor(engine.Position{Row: e.cursor.Row - 1, Col: e.cursor.Col})
	case key.Matches(msg, e.km.Down):
		e.SetCursor(engine.Position{Row: e.cursor.Row + 1, Col: e.cursor.Col})
	case key.Matches(msg, e.km.Home):
		e.SetCursor(engine.Position{Row: e.cursor.Row})
	case key.Matches(msg, e.km.End):
		e.SetCursor(engine.Position{Row: e.cursor.Row, Col: e.doc.lineLen(e.cursor.Row)})

	case key.Matches(msg, e.km.Backspace):
		if !e.ReadOnly() {
			e.deleteBackward()
		}
	case key.Matches(msg, e.km.Delete):
		if !e.ReadOnly() {
			e.deleteForward()
		}
	case key.Matches(msg, e.km.Enter):
		if !e.ReadOnly() {
			e.insertAtCursor("\n")
		}

	case key.Matches(msg, e.km.Undo):
		if !e.ReadOnly() {
			if ev, ok := e.doc.Undo(); ok {
				e.cursor = e.doc.ClampPosition(e.cursor)
				e.rebuildContent()
				e.followCursor()
				e.dispatch(ev)
			}
		}
	case key.Matches(msg, e.km.Redo):
		if !e.ReadOnly() {
			if ev, ok := e.doc.Redo(); ok {
				e.cursor = e.doc.ClampPosition(e.cursor)
				e.rebuildContent()
				e.followCursor()
				e.dispatch(ev)
			}
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !e.ReadOnly() {
			e.insertAtCursor(string(msg.Runes))
		}
	}
}

func (e *Editor) insertAtCursor(s string) {
	e.ExecuteEdits(engine.ChangeSourceUser, []engine.EditOperation{{
		Range: engine.Range{Start: e.cursor, End: e.cursor},
		Text:  s,
	}})
}

func (e *Editor) deleteBackward() {
	row, col := e.cursor.Row, e.cursor.Col
	if row == 0 && col == 0 {
		return
	}
	start := engine.Position{Row: row, Col: col - 1}
	if col == 0 {
		start = engine.Position{Row: row - 1, Col: e.doc.lineLen(row - 1)}
	}
	e.ExecuteEdits(engine.ChangeSourceUser, []engine.EditOperation{{
		Range: engine.Range{Start: start, End: e.cursor},
	}})
}

func (e *Editor) deleteForward() {
	row, col := e.cursor.Row, e.cursor.Col
	end := engine.Position{Row: row, Col: col + 1}
	if col == e.doc.lineLen(row) {
		if row == e.doc.LineCount()-1 {
			return
		}
		end = engine.Position{Row: row + 1, Col: 0}
	}
	e.ExecuteEdits(engine.ChangeSourceUser, []engine.EditOperation{{
		Range: engine.Range{Start: e.cursor, End: end},
	}})
}

func (e *Editor) moveHorizontal(delta int) {
	p := e.cursor
	p.Col += delta
	if p.Col < 0 && p.Row > 0 {
		p = engine.Position{Row: p.Row - 1, Col: e.doc.lineLen(p.Row - 1)}
	} else if p.Col > e.doc.lineLen(p.Row) && p.Row < e.doc.LineCount()-1 {
		p = engine.Position{Row: p.Row + 1, Col: 0}
	}
	e.SetCursor(p)
}

func (e *Editor) dispatch(ev engine.ChangeEvent) {
	// Snapshot: a callback may dispose its own subscription.
	cbs := make([]func(engine.ChangeEvent), 0, len(e.subs))
	for _, cb := range e.subs {
		cbs = append(cbs, cb)
	}
	for _, cb := range cbs {
		cb(ev)
	}
}

func (e *Editor) rebuildContent() {
	e.viewport.SetContent(e.renderContent())
}

func (e *Editor) followCursor() {
	h := e.viewport.Height - e.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := e.viewport.YOffset
	if e.cursor.Row < y {
		e.viewport.SetYOffset(e.cursor.Row)
		return
	}
	if e.cursor.Row >= y+h {
		e.viewport.SetYOffset(e.cursor.Row - h + 1)
	}
}

type subscription struct {
	editor *Editor
	id     int
}

func (s *subscription) Dispose() {
	if s.editor.subs != nil {
		delete(s.editor.subs, s.id)
	}
}
