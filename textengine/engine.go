package textengine

import (
	"context"
	"fmt"
	"time"

	"github.com/atweb-solid/solid-monaco/engine"
)

// Handle is an initialized text engine. It implements engine.Engine.
//
// The active theme is engine-global: switching it restyles every live
// editor created from this handle.
type Handle struct {
	themes    map[string]Theme
	themeName string

	editors []*Editor
}

var (
	_ engine.Engine = (*Handle)(nil)
	_ engine.Model  = (*Document)(nil)
	_ engine.Editor = (*Editor)(nil)
)

// Load initializes a Handle. It is an engine.Loader.
//
// Recognized config keys:
//   - "defaultTheme" (string): initial theme name, "auto" resolves from the
//     terminal background
//   - "themes" (map[string]Theme): extra themes registered before use
//   - "simulateLatency" (time.Duration): artificial startup delay, useful
//     for exercising the loading state
func Load(ctx context.Context, cfg engine.LoaderConfig) (engine.Engine, error) {
	if d, ok := cfg["simulateLatency"].(time.Duration); ok && d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, fmt.Errorf("textengine: load aborted: %w", ctx.Err())
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("textengine: load aborted: %w", err)
	}

	h := &Handle{
		themes:    builtinThemes(),
		themeName: detectTheme(),
	}
	if extra, ok := cfg["themes"].(map[string]Theme); ok {
		for name, th := range extra {
			h.themes[name] = th
		}
	}
	if name, ok := cfg["defaultTheme"].(string); ok && name != "" {
		h.SetTheme(name)
	}
	return h, nil
}

func (h *Handle) CreateEditor(container engine.Container, model engine.Model, opts engine.Options, overrides map[string]any) engine.Editor {
	doc, _ := model.(*Document)
	e := newEditor(h, container, doc, opts)
	h.editors = append(h.editors, e)
	return e
}

func (h *Handle) CreateModel(value, language, path string) engine.Model {
	return NewDocument(value, language, path)
}

// SetTheme switches the engine-global theme. "auto" resolves from the
// terminal background; unknown names are ignored.
func (h *Handle) SetTheme(name string) {
	if name == "auto" {
		name = detectTheme()
	}
	if _, ok := h.themes[name]; !ok {
		return
	}
	h.themeName = name
	for _, e := range h.editors {
		e.rebuildContent()
	}
}

// ThemeName returns the active theme name.
func (h *Handle) ThemeName() string { return h.themeName }

// RegisterTheme adds or replaces a named theme. Typically called from a
// before-mount hook.
func (h *Handle) RegisterTheme(name string, th Theme) {
	h.themes[name] = th
}

func (h *Handle) theme() Theme { return h.themes[h.themeName] }

func (h *Handle) dropEditor(e *Editor) {
	for i, cur := range h.editors {
		if cur == e {
			h.editors = append(h.editors[:i], h.editors[i+1:]...)
			return
		}
	}
}
