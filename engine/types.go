package engine

// Position points into a document by (row, col) in grapheme clusters.
// Row and Col are 0-based.
type Position struct {
	Row int
	Col int
}

// Range is a half-open span in document coordinates: [Start, End).
type Range struct {
	Start Position
	End   Position
}

// EditOperation replaces the text in Range with Text (which may contain '\n').
type EditOperation struct {
	Range Range
	Text  string
}

func ComparePositions(a, b Position) int {
	if a.Row != b.Row {
		if a.Row < b.Row {
			return -1
		}
		return 1
	}
	if a.Col != b.Col {
		if a.Col < b.Col {
			return -1
		}
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePositions(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// ChangeSource identifies where a content change originated.
type ChangeSource uint8

const (
	// ChangeSourceUser marks edits driven by user input.
	ChangeSourceUser ChangeSource = iota
	// ChangeSourceAPI marks programmatic edits applied by host code.
	ChangeSourceAPI
)

// ChangeEvent describes one effective content mutation of a document model.
type ChangeEvent struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	Edits         []EditOperation
}

// ViewState is an opaque serialized cursor/scroll snapshot. Its contents are
// meaningful only to the engine that produced it.
type ViewState []byte

// Container is the sized surface an editor instance attaches to.
type Container struct {
	Width  int
	Height int
}
