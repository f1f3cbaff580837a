package bench

import (
	"fmt"
	"strings"
)

// Func is one timed call. Its result is discarded; only an error stops a run.
type Func func() error

type Entry struct {
	Name string
	Fn   Func
}

// Registry keeps entries in registration order.
type Registry struct {
	entries []Entry
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("entry %s: function cannot be nil", name)
	}
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("entry %s already registered", name)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Fn: fn})
	return nil
}

func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of every entry.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Select returns the entries whose name starts with prefix; an empty prefix
// selects everything.
func (r *Registry) Select(prefix string) []Entry {
	if prefix == "" {
		return r.Entries()
	}
	var out []Entry
	for _, e := range r.entries {
		if strings.HasPrefix(e.Name, prefix) {
			out = append(out, e)
		}
	}
	return out
}
