package textengine

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/atweb-solid/solid-monaco/engine"
)

// viewState is the editor camera state behind the opaque engine.ViewState
// bytes. CBOR keeps the encoding compact and stable across fields added
// later.
type viewState struct {
	CursorRow int `cbor:"1,keyasint"`
	CursorCol int `cbor:"2,keyasint"`
	ScrollTop int `cbor:"3,keyasint"`
}

func encodeViewState(st viewState) engine.ViewState {
	b, err := cbor.Marshal(st)
	if err != nil {
		return nil
	}
	return engine.ViewState(b)
}

func decodeViewState(raw engine.ViewState) (viewState, bool) {
	if len(raw) == 0 {
		return viewState{}, false
	}
	var st viewState
	if err := cbor.Unmarshal([]byte(raw), &st); err != nil {
		return viewState{}, false
	}
	return st, true
}
