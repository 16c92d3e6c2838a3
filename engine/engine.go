package engine

import "context"

// Loader initializes an engine asynchronously. Cancellation is requested by
// canceling ctx; a canceled load returns an error satisfying
// errors.Is(err, context.Canceled). cfg is forwarded verbatim from host
// configuration.
type Loader func(ctx context.Context, cfg LoaderConfig) (Engine, error)

// Engine is an initialized editor engine.
type Engine interface {
	// CreateEditor instantiates a live editor attached to container,
	// displaying model. overrides passes host-supplied service overrides
	// through opaquely; engines may ignore it.
	CreateEditor(container Container, model Model, opts Options, overrides map[string]any) Editor

	// CreateModel constructs a new document model. path is advisory
	// identity; the engine does not deduplicate by path.
	CreateModel(value, language, path string) Model

	// SetTheme switches the engine-global active theme. Unknown names are
	// ignored.
	SetTheme(name string)
}

// Model is a document: content, language mode, and undo history, independent
// of any editor instance.
type Model interface {
	Value() string
	SetValue(string)
	Language() string
	SetLanguage(string)
	Path() string
	// Version increases on every effective content change.
	Version() uint64
	// FullRange spans the entire current content.
	FullRange() Range
	Dispose()
	Disposed() bool
}

// Editor is a live, on-screen editor instance.
type Editor interface {
	// Value returns the attached model's full text.
	Value() string
	// SetValue replaces the attached model's content directly, resetting
	// undo history. It does not dispatch a content-change notification.
	SetValue(string)
	// ExecuteEdits applies edits as a single transaction attributed to
	// source. Effective edits dispatch a content-change notification.
	ExecuteEdits(source ChangeSource, edits []EditOperation)
	// PushUndoStop seals the current undo group, so that a following edit
	// starts a new undoable step.
	PushUndoStop()
	UpdateOptions(Options)
	ReadOnly() bool

	Model() Model
	// SetModel swaps the attached document model. The previous model stays
	// alive.
	SetModel(Model)

	SaveViewState() ViewState
	RestoreViewState(ViewState)

	// OnContentChanged registers cb for content-change notifications of the
	// attached model. Dispose the returned subscription to unregister.
	OnContentChanged(cb func(ChangeEvent)) Subscription

	Resize(width, height int)
	View() string
	Dispose()
}

// Subscription is a registered notification callback.
type Subscription interface {
	Dispose()
}
