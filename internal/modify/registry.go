package modify

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"phashbench/internal/errs"
)

// Entry pairs a registry key with the modification it resolves to.
type Entry struct {
	Key          string
	Modification Modification
}

// Registry maps keys to modifications. It is frozen at construction, so
// concurrent reads need no locking.
type Registry struct {
	entries map[string]Modification
}

// BuiltinEntries returns the default key set: "blur" and "rotate".
func BuiltinEntries() []Entry {
	return []Entry{
		{Key: "blur", Modification: NewBlur()},
		{Key: "rotate", Modification: NewRotate()},
	}
}

// NewRegistry builds a registry from entries. Keys must be non-empty and
// unique.
func NewRegistry(entries ...Entry) (*Registry, error) {
	reg := &Registry{entries: make(map[string]Modification, len(entries))}
	for _, entry := range entries {
		key := entry.Key
		if strings.TrimSpace(key) == "" {
			return nil, errors.New("modification registry: empty key")
		}
		if entry.Modification == nil {
			return nil, fmt.Errorf("modification registry: %q has no modification", key)
		}
		if rot, ok := entry.Modification.(Rotate); ok {
			if err := rot.Valid(); err != nil {
				return nil, fmt.Errorf("modification registry: %q: %w", key, err)
			}
		}
		if _, dup := reg.entries[key]; dup {
			return nil, fmt.Errorf("modification registry: duplicate key %q", key)
		}
		reg.entries[key] = entry.Modification
	}
	return reg, nil
}

// DefaultRegistry returns a registry holding only the built-in entries.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(BuiltinEntries()...)
	if err != nil {
		panic(err)
	}
	return reg
}

// WithBuiltins builds a registry holding the built-in entries plus extra.
func WithBuiltins(extra ...Entry) (*Registry, error) {
	return NewRegistry(append(BuiltinEntries(), extra...)...)
}

// Resolve returns the modification registered under name. Matching is exact
// and case-sensitive.
func (r *Registry) Resolve(name string) (Modification, error) {
	m, ok := r.entries[name]
	if !ok {
		return nil, &UnknownModificationError{Name: name}
	}
	return m, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names lists registered keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries lists registrations sorted by key.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, name := range r.Names() {
		out = append(out, Entry{Key: name, Modification: r.entries[name]})
	}
	return out
}

// UnknownModificationError reports a registry miss.
type UnknownModificationError struct {
	Name string
}

func (e *UnknownModificationError) Error() string {
	return fmt.Sprintf("%s %q", errs.ErrUnknownModification, e.Name)
}

// Is lets errors.Is match errs.ErrUnknownModification.
func (e *UnknownModificationError) Is(target error) bool {
	return target == errs.ErrUnknownModification
}
