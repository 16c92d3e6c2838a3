package monaco

import (
	"sync"

	"github.com/atweb-solid/solid-monaco/engine"
)

// ModelCache maps document paths to live document models, guaranteeing at
// most one model per non-empty path.
//
// The cache is authoritative: a hit ignores the supplied content and
// language, so a document keeps its text and undo history across editor
// remounts and path switches. Disposed models count as absent.
type ModelCache struct {
	mu     sync.Mutex
	models map[string]engine.Model
}

// SharedModels is the process-wide cache used when Config.Models is nil.
var SharedModels = NewModelCache()

func NewModelCache() *ModelCache {
	return &ModelCache{models: make(map[string]engine.Model)}
}

// GetOrCreate returns the cached model for path, creating and registering
// one when absent. An empty path always yields a fresh, uncached model.
// eng must be a valid engine handle.
func (c *ModelCache) GetOrCreate(eng engine.Engine, value, language, path string) engine.Model {
	if path == "" {
		return eng.CreateModel(value, language, "")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.models[path]; ok && !m.Disposed() {
		return m
	}
	m := eng.CreateModel(value, language, path)
	c.models[path] = m
	return m
}

// Get returns the cached live model for path, if any.
func (c *ModelCache) Get(path string) (engine.Model, bool) {
	if path == "" {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.models[path]
	if !ok || m.Disposed() {
		return nil, false
	}
	return m, true
}

// Len reports the number of live cached models.
func (c *ModelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, m := range c.models {
		if !m.Disposed() {
			n++
		}
	}
	return n
}
