// Package parsers turns raw stdout text from Linux utilities into the
// typed records of the records package. One parser per command family;
// each is a pure function that either fully succeeds or rejects the
// input — no partially filled records, no guessed fields.
package parsers

import (
	"sort"
	"sync"
)

// ParseFunc is the untyped form used by the registry. Typed callers use
// the exported Parse* functions directly; the registry exists for
// diagnostics and for dispatch by family name.
type ParseFunc func(stdout string) (any, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]ParseFunc)
)

// register adds a parser under its family name. Called from init
// functions in this package; panics on duplicates since that is a
// programming error.
func register(family string, fn ParseFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[family]; dup {
		panic("parsers: duplicate family " + family)
	}
	registry[family] = fn
}

// Lookup returns the parser registered for a family name.
func Lookup(family string) (ParseFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[family]
	return fn, ok
}

// Families returns all registered family names, sorted.
func Families() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// untyped adapts a typed parser for registry storage.
func untyped[T any](fn func(string) (T, error)) ParseFunc {
	return func(stdout string) (any, error) {
		return fn(stdout)
	}
}
