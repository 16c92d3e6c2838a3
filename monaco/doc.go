// Package monaco binds an imperative editor engine to a declarative Bubble
// Tea component.
//
// The component owns one engine handle and one editor instance for its
// mounted lifetime. Host-visible properties (content, language, theme,
// document path, options, size) are pushed into the editor through setters;
// the editor's content-change notifications flow back out through the
// OnChange hook. A suppression flag keeps the two directions from feeding
// each other for the same edit.
//
// Document models are shared process-wide through a path-keyed cache, and
// per-document cursor/scroll state survives path switches through a
// view-state store, so several logical documents can share one editor
// instance without losing editing position.
package monaco
