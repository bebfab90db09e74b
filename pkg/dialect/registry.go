package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// Resolve returns the dialect with the given name, falling back to the
// default dialect when name is empty or unregistered. Never returns nil:
// when not even the default dialect is registered, a zero-value dialect is
// returned so callers skip safely instead of dereferencing nil.
func Resolve(name string) *Dialect {
	if name != "" {
		if d, ok := Get(name); ok {
			return d
		}
	}
	if d, ok := Get(DefaultName); ok {
		return d
	}
	return &Dialect{Name: DefaultName}
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
