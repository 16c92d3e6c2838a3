package monaco

import (
	"go.uber.org/zap"

	"github.com/atweb-solid/solid-monaco/engine"
)

// Config configures the editor component.
//
// Language, Value, Theme, Path, Width, Height and Options are reactive
// properties: their initial values are baked into editor creation, and the
// corresponding setters push later changes into the live editor.
type Config struct {
	// Initial language mode, content, theme and document path.
	Language string
	Value    string
	Theme    string
	Path     string

	// Container size in terminal cells.
	Width  int
	Height int

	// Engine-native editor options, forwarded without interpretation.
	// automaticLayout is enabled unless overridden here.
	Options engine.Options

	// OverrideServices passes engine service overrides through opaquely.
	OverrideServices map[string]any

	// SaveViewState gates saving/restoring per-path cursor and scroll
	// position on path switches. nil means enabled.
	SaveViewState *bool

	// Loader initializes the engine; required. LoaderConfig is forwarded
	// to it verbatim.
	Loader       engine.Loader
	LoaderConfig engine.LoaderConfig

	// Models and ViewStates default to the process-wide shared instances.
	Models     *ModelCache
	ViewStates *ViewStateStore

	// Logger receives startup diagnostics. nil means no logging.
	Logger *zap.Logger

	// Styles controls the loading placeholder presentation.
	Styles Styles

	// OnChange fires for user-driven content changes with the full text
	// and the raw engine event. Programmatic updates through SetValue
	// never fire it.
	OnChange func(text string, ev engine.ChangeEvent)

	// OnBeforeMount runs after engine initialization, before the editor
	// exists; use it to customize the engine (register themes, languages).
	OnBeforeMount func(engine.Engine)

	// OnMount runs once the editor instance is live.
	OnMount func(engine.Engine, engine.Editor)

	// OnBeforeUnmount runs at the start of teardown, while engine and
	// editor are still valid.
	OnBeforeUnmount func(engine.Engine, engine.Editor)
}

func (c Config) saveViewState() bool {
	return c.SaveViewState == nil || *c.SaveViewState
}

func (c Config) models() *ModelCache {
	if c.Models != nil {
		return c.Models
	}
	return SharedModels
}

func (c Config) viewStates() *ViewStateStore {
	if c.ViewStates != nil {
		return c.ViewStates
	}
	return SharedViewStates
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
