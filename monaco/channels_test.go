package monaco

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atweb-solid/solid-monaco/engine"
	"github.com/atweb-solid/solid-monaco/textengine"
)

// changeRecorder captures reverse-channel activity.
type changeRecorder struct {
	count int
	text  string
	last  engine.ChangeEvent
}

func (r *changeRecorder) hook() func(string, engine.ChangeEvent) {
	return func(text string, ev engine.ChangeEvent) {
		r.count++
		r.text = text
		r.last = ev
	}
}

// mountText mounts a component against the real reference engine.
func mountText(t *testing.T, cfg Config) Model {
	t.Helper()
	cfg.Loader = textengine.Load
	if cfg.Models == nil {
		cfg.Models = NewModelCache()
	}
	if cfg.ViewStates == nil {
		cfg.ViewStates = NewViewStateStore()
	}
	return mountNow(t, New(cfg))
}

func pressKeys(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestSetValue_AppliesWithoutOnChange(t *testing.T) {
	rec := &changeRecorder{}
	m := mountText(t, Config{Value: "a", OnChange: rec.hook()})
	defer m.Unmount()

	m = m.SetValue("b")
	if got := m.Editor().Value(); got != "b" {
		t.Fatalf("editor value=%q, want %q", got, "b")
	}
	if rec.count != 0 {
		t.Fatalf("OnChange fired %d times for a programmatic update, want 0", rec.count)
	}

	// A user keystroke still reaches OnChange.
	m = pressKeys(m, "x")
	if rec.count != 1 {
		t.Fatalf("OnChange fired %d times after user edit, want 1", rec.count)
	}
	if rec.text != "bx" {
		t.Fatalf("OnChange text=%q, want %q", rec.text, "bx")
	}
	if rec.last.Source != engine.ChangeSourceUser {
		t.Fatalf("OnChange source=%v, want user", rec.last.Source)
	}
}

func TestSetValue_SameValue_NoEdit(t *testing.T) {
	m := mountText(t, Config{Value: "same"})
	defer m.Unmount()

	mdl := m.Editor().Model()
	before := mdl.Version()

	m = m.SetValue("same")
	if mdl.Version() != before {
		t.Fatalf("version changed on identical value: %d -> %d", before, mdl.Version())
	}
	if mdl.(*textengine.Document).CanUndo() {
		t.Fatalf("identical value recorded an undo step")
	}
}

func TestSetValue_UndoableAsOneStep(t *testing.T) {
	rec := &changeRecorder{}
	m := mountText(t, Config{Value: "a", OnChange: rec.hook()})
	defer m.Unmount()

	m = m.SetValue("b")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Editor().Value(); got != "a" {
		t.Fatalf("after undo: %q, want %q", got, "a")
	}
	// The undo is user-driven, so the reverse channel reports it.
	if rec.count != 1 || rec.text != "a" {
		t.Fatalf("OnChange after undo: count=%d text=%q, want 1/%q", rec.count, rec.text, "a")
	}
}

func TestSetValue_ReadOnly_DirectSet(t *testing.T) {
	rec := &changeRecorder{}
	m := mountText(t, Config{
		Value:    "a",
		Options:  engine.Options{"readOnly": true},
		OnChange: rec.hook(),
	})
	defer m.Unmount()

	if !m.Editor().ReadOnly() {
		t.Fatalf("caller options not merged into creation: editor not read-only")
	}

	m = m.SetValue("b")
	if got := m.Editor().Value(); got != "b" {
		t.Fatalf("editor value=%q, want %q", got, "b")
	}
	if rec.count != 0 {
		t.Fatalf("OnChange fired %d times for direct set, want 0", rec.count)
	}
	// Direct set path: no edit transaction, so nothing to undo.
	if m.Editor().Model().(*textengine.Document).CanUndo() {
		t.Fatalf("direct set recorded an undo step")
	}
}

func TestSetOptions_AlwaysApplied(t *testing.T) {
	m := mountText(t, Config{})
	defer m.Unmount()

	m = m.SetOptions(engine.Options{"readOnly": true})
	if !m.Editor().ReadOnly() {
		t.Fatalf("options update not applied")
	}

	// Empty options merge over the current configuration without clearing it.
	m = m.SetOptions(nil)
	if !m.Editor().ReadOnly() {
		t.Fatalf("empty options update cleared configuration")
	}

	m = m.SetOptions(engine.Options{"readOnly": false})
	if m.Editor().ReadOnly() {
		t.Fatalf("options update did not override readOnly")
	}
}

func TestSetLanguage_NeedsModelAndNonEmpty(t *testing.T) {
	m := mountText(t, Config{Language: "go", Path: "x.go"})
	defer m.Unmount()

	mdl := m.Editor().Model()
	if mdl.Language() != "go" {
		t.Fatalf("initial language=%q, want go", mdl.Language())
	}

	m = m.SetLanguage("typescript")
	if mdl.Language() != "typescript" {
		t.Fatalf("language=%q, want typescript", mdl.Language())
	}

	m = m.SetLanguage("")
	if mdl.Language() != "typescript" {
		t.Fatalf("empty language must be a no-op, got %q", mdl.Language())
	}
}

func TestSetTheme_EngineGlobal(t *testing.T) {
	m := mountText(t, Config{Theme: "dark"})
	defer m.Unmount()

	h := m.Engine().(*textengine.Handle)
	if h.ThemeName() != "dark" {
		t.Fatalf("initial theme=%q, want dark", h.ThemeName())
	}
	m = m.SetTheme("light")
	if h.ThemeName() != "light" {
		t.Fatalf("theme=%q, want light", h.ThemeName())
	}
}

func TestSetPath_SwitchesModelAndPopulatesCache(t *testing.T) {
	cache := NewModelCache()
	m := mountText(t, Config{
		Path:     "x.ts",
		Language: "ts",
		Value:    "let x = 1",
		Models:   cache,
	})
	defer m.Unmount()

	m = m.SetPath("y.ts")

	if cache.Len() != 2 {
		t.Fatalf("cache len=%d, want 2", cache.Len())
	}
	if _, ok := cache.Get("x.ts"); !ok {
		t.Fatalf("x.ts missing from cache")
	}
	if got := m.Editor().Model().Path(); got != "y.ts" {
		t.Fatalf("attached model path=%q, want y.ts", got)
	}
	if got := m.Editor().Model().Language(); got != "ts" {
		t.Fatalf("new model language=%q, want ts", got)
	}
}

func TestSetPath_SamePathModel_NoSwitch(t *testing.T) {
	store := NewViewStateStore()
	m := mountText(t, Config{Path: "x.ts", ViewStates: store})
	defer m.Unmount()

	m = m.SetPath("x.ts")
	if _, ok := store.Restore("x.ts"); ok {
		t.Fatalf("view state saved although the attached model did not change")
	}
}

func TestSetPath_ViewStateRoundTrip(t *testing.T) {
	m := mountText(t, Config{Path: "a", Value: "one\ntwo\nthree"})
	defer m.Unmount()

	ed := m.Editor().(*textengine.Editor)
	ed.SetCursor(engine.Position{Row: 1, Col: 2})

	m = m.SetPath("b")
	if got := ed.Cursor(); got != (engine.Position{}) {
		t.Fatalf("cursor on fresh document=%v, want origin", got)
	}

	m = m.SetPath("a")
	if got := ed.Cursor(); got != (engine.Position{Row: 1, Col: 2}) {
		t.Fatalf("restored cursor=%v, want (1,2)", got)
	}
}

func TestSetPath_SaveViewStateDisabled(t *testing.T) {
	off := false
	store := NewViewStateStore()
	m := mountText(t, Config{
		Path:          "a",
		Value:         "one\ntwo",
		SaveViewState: &off,
		ViewStates:    store,
	})
	defer m.Unmount()

	ed := m.Editor().(*textengine.Editor)
	ed.SetCursor(engine.Position{Row: 1, Col: 1})

	m = m.SetPath("b")
	if _, ok := store.Restore("a"); ok {
		t.Fatalf("view state saved with SaveViewState disabled")
	}

	m = m.SetPath("a")
	if got := ed.Cursor(); got != (engine.Position{}) {
		t.Fatalf("cursor=%v, want origin with SaveViewState disabled", got)
	}
}

func TestApplyProps_TriggersChangedChannelsOnly(t *testing.T) {
	cache := NewModelCache()
	m := mountText(t, Config{Path: "a.go", Language: "go", Value: "v1", Models: cache})
	defer m.Unmount()

	next := Config{Path: "b.go", Language: "go", Value: "v1", Theme: "light"}
	m = m.ApplyProps(next)

	if got := m.Editor().Model().Path(); got != "b.go" {
		t.Fatalf("path channel not applied: %q", got)
	}
	if h := m.Engine().(*textengine.Handle); h.ThemeName() != "light" {
		t.Fatalf("theme channel not applied: %q", h.ThemeName())
	}

	// Identical props leave everything untouched.
	before := m.Editor().Model().Version()
	m = m.ApplyProps(next)
	if m.Editor().Model().Version() != before {
		t.Fatalf("unchanged props produced an edit")
	}
	if cache.Len() != 2 {
		t.Fatalf("cache len=%d, want 2", cache.Len())
	}
}

func TestSetSize_ResizesEditor(t *testing.T) {
	m := mountText(t, Config{Width: 10, Height: 3, Value: "x"})
	defer m.Unmount()

	m = m.SetSize(80, 24)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	// Negative sizes clamp instead of corrupting viewport math.
	m = m.SetSize(-1, -1)
	if !m.Ready() {
		t.Fatalf("resize broke the component")
	}
}
