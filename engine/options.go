package engine

// Options is the engine-native editor options object, passed through from
// host configuration without interpretation by the adapter.
//
// The bundled text engine recognizes "readOnly" and "lineNumbers"; engines
// are free to define their own keys and must ignore keys they do not know.
type Options map[string]any

// Merge returns a new Options with o's entries overlaid by next's.
// Shallow, last write wins. Either side may be nil.
func (o Options) Merge(next Options) Options {
	out := make(Options, len(o)+len(next))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}

// Bool reads a boolean option, returning def when the key is absent or not a
// bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// LoaderConfig is the free-form configuration object forwarded verbatim to a
// Loader.
type LoaderConfig map[string]any
