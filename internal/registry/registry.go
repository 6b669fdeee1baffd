// Package registry stores puzzle entry points keyed by (day, part).
//
// Iteration is always ascending by day, then part; entries inside a key keep
// registration order. Registration and execution are separate single-threaded
// phases, so the mutex only guards against misuse.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

const (
	// MaxDay is the last puzzle day.
	MaxDay = 25

	// MaxPart is the last part of a day.
	MaxPart = 2
)

// EntryPoint runs one solution and returns its rendered answer.
type EntryPoint func() (string, error)

// Key identifies a puzzle.
type Key struct {
	Day  int
	Part int
}

// Less orders keys by day, then part.
func (k Key) Less(other Key) bool {
	if k.Day != other.Day {
		return k.Day < other.Day
	}
	return k.Part < other.Part
}

func (k Key) String() string {
	return fmt.Sprintf("day %d part %d", k.Day, k.Part)
}

// Entry is one implementation of a puzzle. An empty Variant marks the main
// implementation.
type Entry struct {
	Variant string
	Run     EntryPoint
}

// IsMain reports whether e is the unnamed implementation.
func (e Entry) IsMain() bool {
	return e.Variant == ""
}

// Registry maps keys to ordered entries.
type Registry struct {
	mu      sync.Mutex
	buckets map[Key][]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{buckets: make(map[Key][]Entry)}
}

// Register appends an entry under (day, part).
// It rejects keys out of range and a second entry with the same variant
// (including a second main entry).
func (r *Registry) Register(day, part int, variant string, run EntryPoint) error {
	if day < 1 || day > MaxDay {
		return fmt.Errorf("register: day %d out of range 1..%d", day, MaxDay)
	}
	if part < 1 || part > MaxPart {
		return fmt.Errorf("register: part %d out of range 1..%d", part, MaxPart)
	}
	if run == nil {
		return fmt.Errorf("register: nil entry point for day %d part %d", day, part)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key{Day: day, Part: part}
	for _, e := range r.buckets[key] {
		if e.Variant == variant {
			if variant == "" {
				return fmt.Errorf("register: %s already has a main implementation", key)
			}
			return fmt.Errorf("register: %s already has variant %q", key, variant)
		}
	}
	r.buckets[key] = append(r.buckets[key], Entry{Variant: variant, Run: run})
	return nil
}

// Keys returns every key with at least one entry, in ascending order.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]Key, 0, len(r.buckets))
	for k := range r.buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Entries returns a copy of the entries under key in registration order.
func (r *Registry) Entries(key Key) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.buckets[key]...)
}

// Len returns the total number of entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, b := range r.buckets {
		n += len(b)
	}
	return n
}
