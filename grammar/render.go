package grammar

import (
	"slices"
	"sync"
)

// Renderer turns an ordered rule list into grammar text for one target
// notation. rules comes from OrderedRules, so the root rule is first. A
// renderer that cannot express a symbol returns its own error; the engine
// wraps it but never swallows it.
type Renderer interface {
	Render(rules []Rule, root string) (string, error)
}

var (
	renderersMu sync.RWMutex
	renderers   = make(map[string]Renderer)
)

// Register makes r available to Compile under format. Registering an
// already-used identifier replaces the previous renderer, which is how
// tests install doubles and embedders swap backends without touching the
// engine.
func Register(format string, r Renderer) {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	renderers[format] = r
}

func lookup(format string) (Renderer, bool) {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	r, ok := renderers[format]
	return r, ok
}

// Formats returns the registered format identifiers, sorted.
func Formats() []string {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
