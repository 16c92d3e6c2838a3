// Package textengine is the in-process reference implementation of the
// engine contract: a grapheme-aware document model with undo groups, an
// interactive terminal editor instance, a theme registry, and a cancelable
// loader.
//
// It is intentionally small. Syntax highlighting, selections, word motion
// and soft wrapping are out of scope; the package exists so that hosts,
// examples and tests of the adapter run against real engine semantics.
package textengine
