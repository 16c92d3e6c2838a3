package monaco

import (
	"context"
	"strings"

	"github.com/atweb-solid/solid-monaco/engine"
)

// fakeEngine records lifecycle calls so tests can assert ordering that the
// real engine does not expose.
type fakeEngine struct {
	log   *[]string
	theme string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{log: new([]string)}
}

func (f *fakeEngine) loader() engine.Loader {
	return func(ctx context.Context, cfg engine.LoaderConfig) (engine.Engine, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return f, nil
	}
}

func (f *fakeEngine) record(entry string) { *f.log = append(*f.log, entry) }

func (f *fakeEngine) CreateEditor(c engine.Container, m engine.Model, opts engine.Options, overrides map[string]any) engine.Editor {
	f.record("create-editor")
	return &fakeEditor{
		eng:   f,
		model: m.(*fakeModel),
		opts:  engine.Options{}.Merge(opts),
		subs:  make(map[int]func(engine.ChangeEvent)),
	}
}

func (f *fakeEngine) CreateModel(value, language, path string) engine.Model {
	f.record("create-model:" + path)
	return &fakeModel{eng: f, value: value, language: language, path: path}
}

func (f *fakeEngine) SetTheme(name string) {
	f.record("set-theme:" + name)
	f.theme = name
}

type fakeModel struct {
	eng      *fakeEngine
	value    string
	language string
	path     string
	version  uint64
	disposed bool
}

func (m *fakeModel) Value() string        { return m.value }
func (m *fakeModel) SetValue(s string)    { m.value = s; m.version++ }
func (m *fakeModel) Language() string     { return m.language }
func (m *fakeModel) SetLanguage(l string) { m.language = l }
func (m *fakeModel) Path() string         { return m.path }
func (m *fakeModel) Version() uint64      { return m.version }
func (m *fakeModel) Disposed() bool       { return m.disposed }

func (m *fakeModel) Dispose() {
	m.eng.record("model-dispose:" + m.path)
	m.disposed = true
}

func (m *fakeModel) FullRange() engine.Range {
	lines := strings.Split(m.value, "\n")
	last := len(lines) - 1
	return engine.Range{End: engine.Position{Row: last, Col: len([]rune(lines[last]))}}
}

type fakeEditor struct {
	eng   *fakeEngine
	model *fakeModel
	opts  engine.Options

	subs   map[int]func(engine.ChangeEvent)
	nextID int

	width, height int
	disposed      bool
}

func (e *fakeEditor) Value() string { return e.model.value }

func (e *fakeEditor) SetValue(s string) {
	e.eng.record("direct-set")
	e.model.value = s
	e.model.version++
}

func (e *fakeEditor) ExecuteEdits(source engine.ChangeSource, edits []engine.EditOperation) {
	// The adapter only issues full-range replacements.
	before := e.model.version
	e.model.value = edits[len(edits)-1].Text
	e.model.version++
	e.dispatch(engine.ChangeEvent{
		Source:        source,
		VersionBefore: before,
		VersionAfter:  e.model.version,
		Edits:         edits,
	})
}

func (e *fakeEditor) PushUndoStop() { e.eng.record("undo-stop") }

func (e *fakeEditor) UpdateOptions(opts engine.Options) { e.opts = e.opts.Merge(opts) }

func (e *fakeEditor) ReadOnly() bool { return e.opts.Bool("readOnly", false) }

func (e *fakeEditor) Model() engine.Model {
	if e.model == nil {
		return nil
	}
	return e.model
}

func (e *fakeEditor) SetModel(m engine.Model) {
	e.eng.record("attach:" + m.(*fakeModel).path)
	e.model = m.(*fakeModel)
}

func (e *fakeEditor) SaveViewState() engine.ViewState {
	e.eng.record("save-viewstate:" + e.model.path)
	return engine.ViewState("vs:" + e.model.path)
}

func (e *fakeEditor) RestoreViewState(st engine.ViewState) {
	e.eng.record("restore-viewstate:" + string(st))
}

func (e *fakeEditor) OnContentChanged(cb func(engine.ChangeEvent)) engine.Subscription {
	e.nextID++
	id := e.nextID
	e.subs[id] = cb
	return &fakeSub{editor: e, id: id}
}

func (e *fakeEditor) Resize(w, h int) { e.width, e.height = w, h }

func (e *fakeEditor) View() string { return "[editor " + e.model.value + "]" }

func (e *fakeEditor) Dispose() {
	e.eng.record("editor-dispose")
	e.disposed = true
}

// typeText simulates a user edit arriving from the engine.
func (e *fakeEditor) typeText(s string) {
	before := e.model.version
	e.model.value += s
	e.model.version++
	e.dispatch(engine.ChangeEvent{
		Source:        engine.ChangeSourceUser,
		VersionBefore: before,
		VersionAfter:  e.model.version,
	})
}

func (e *fakeEditor) dispatch(ev engine.ChangeEvent) {
	for _, cb := range e.subs {
		cb(ev)
	}
}

type fakeSub struct {
	editor *fakeEditor
	id     int
}

func (s *fakeSub) Dispose() {
	s.editor.eng.record("sub-dispose")
	delete(s.editor.subs, s.id)
}
