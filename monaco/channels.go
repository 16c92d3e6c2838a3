package monaco

import (
	"reflect"

	"github.com/atweb-solid/solid-monaco/engine"
)

// Property setters. Each one records the new property value, then pushes it
// into the live editor when the channel's preconditions hold. Before the
// editor exists the recorded value still takes effect, because creation
// reads the current properties.

// SetValue is the content channel. A read-only editor gets the value set
// directly; otherwise a differing value is applied as a single suppressed
// full-range edit followed by an undo stop, so the change is undoable as one
// step and never loops back through OnChange. An unchanged value does
// nothing, keeping the cursor intact.
func (m Model) SetValue(value string) Model {
	m.cfg.Value = value
	s := m.s
	if s.editor == nil {
		return m
	}

	if s.editor.ReadOnly() {
		s.editor.SetValue(value)
		return m
	}
	if value == s.editor.Value() {
		return m
	}

	mdl := s.editor.Model()
	if mdl == nil {
		return m
	}
	s.suppress = true
	s.editor.ExecuteEdits(engine.ChangeSourceAPI, []engine.EditOperation{{
		Range: mdl.FullRange(),
		Text:  value,
	}})
	s.editor.PushUndoStop()
	s.suppress = false
	return m
}

// SetOptions is the options channel: the new options (or empty) merge into
// the editor configuration unconditionally.
func (m Model) SetOptions(opts engine.Options) Model {
	m.cfg.Options = opts
	s := m.s
	if s.editor == nil {
		return m
	}
	if opts == nil {
		opts = engine.Options{}
	}
	s.editor.UpdateOptions(opts)
	return m
}

// SetTheme is the theme channel. The theme is engine-global, so it only
// needs the engine, not the editor.
func (m Model) SetTheme(name string) Model {
	m.cfg.Theme = name
	s := m.s
	if s.engine == nil {
		return m
	}
	s.engine.SetTheme(name)
	return m
}

// SetLanguage is the language channel: a no-op unless the editor has an
// attached model and the language is non-empty.
func (m Model) SetLanguage(lang string) Model {
	m.cfg.Language = lang
	s := m.s
	if s.editor == nil || lang == "" {
		return m
	}
	if mdl := s.editor.Model(); mdl != nil {
		mdl.SetLanguage(lang)
	}
	return m
}

// SetPath is the active-document channel. The model for the new path is
// obtained or created with the current language and value; if it differs
// from the attached one, the switch runs save-old, then attach-new, then
// restore-new, with the save and restore steps gated by the SaveViewState
// switch.
func (m Model) SetPath(path string) Model {
	prevPath := m.cfg.Path
	m.cfg.Path = path
	s := m.s
	if s.engine == nil || s.editor == nil {
		return m
	}

	mdl := m.cfg.models().GetOrCreate(s.engine, m.cfg.Value, m.cfg.Language, path)
	if mdl == s.editor.Model() {
		return m
	}

	if m.cfg.saveViewState() {
		m.cfg.viewStates().Save(prevPath, s.editor.SaveViewState())
	}
	s.editor.SetModel(mdl)
	if m.cfg.saveViewState() {
		if st, ok := m.cfg.viewStates().Restore(path); ok {
			s.editor.RestoreViewState(st)
		}
	}
	return m
}

// SetSize is the layout channel: it resizes the container surface.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.cfg.Width = width
	m.cfg.Height = height
	if m.s.editor != nil {
		m.s.editor.Resize(width, height)
	}
	return m
}

// ApplyProps diffs next against the current properties and triggers exactly
// the channels whose values changed. The relative order across channels in
// one batch is an implementation detail; channels are independently
// idempotent and hosts must not rely on it. Non-property fields of next
// (loader, hooks, stores) are ignored.
func (m Model) ApplyProps(next Config) Model {
	if next.Theme != m.cfg.Theme {
		m = m.SetTheme(next.Theme)
	}
	if next.Language != m.cfg.Language {
		m = m.SetLanguage(next.Language)
	}
	if next.Path != m.cfg.Path {
		m = m.SetPath(next.Path)
	}
	if next.Value != m.cfg.Value {
		m = m.SetValue(next.Value)
	}
	if !reflect.DeepEqual(next.Options, m.cfg.Options) {
		m = m.SetOptions(next.Options)
	}
	if next.Width != m.cfg.Width || next.Height != m.cfg.Height {
		m = m.SetSize(next.Width, next.Height)
	}
	return m
}
