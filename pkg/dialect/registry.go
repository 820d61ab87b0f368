package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// ErrUnknownDialect is returned when a dialect name is not registered.
var ErrUnknownDialect = errors.New("unknown dialect")

// DefaultName is the dialect used when none is configured.
const DefaultName = "ansi"

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// MustGet returns a dialect by name or an error wrapping ErrUnknownDialect.
func MustGet(name string) (*Dialect, error) {
	d, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDialect, name, strings.Join(List(), ", "))
	}
	return d, nil
}

// Lookup returns the named dialect, falling back to the default dialect when
// the name is empty or unknown. The boolean reports whether the requested
// dialect was found; callers typically log a warning when it is false.
//
// When not even the default dialect is registered, Lookup returns nil, which
// Resolve treats as "all defaults".
func Lookup(name string) (*Dialect, bool) {
	if name != "" {
		if d, ok := Get(name); ok {
			return d, true
		}
	}
	d, _ := Get(DefaultName)
	return d, name == ""
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions, and by the
// config loader for user-defined dialects. A later registration with the same
// name replaces the earlier one.
func Register(d *Dialect) {
	if d == nil || d.Name == "" {
		return
	}
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
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

// All returns all registered dialects sorted by name.
func All() []*Dialect {
	names := List()
	out := make([]*Dialect, 0, len(names))
	for _, name := range names {
		if d, ok := Get(name); ok {
			out = append(out, d)
		}
	}
	return out
}
