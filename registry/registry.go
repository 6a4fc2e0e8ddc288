package registry

import (
	"errors"
	"fmt"
	"log/slog"
)

// Entry is the minimal surface an element must expose to be registered.
// The qualified name is the registry key; the short name is what consumers
// typically scan for.
type Entry interface {
	Name() string
	QualifiedName() string
}

// Policy controls what an insert does when the qualified name is already
// registered.
type Policy int

const (
	// ReturnExisting makes a duplicate insert yield the original entry
	// unchanged.
	ReturnExisting Policy = iota
	// Reject makes a duplicate insert fail with ErrDuplicate.
	Reject
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case ReturnExisting:
		return "return-existing"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

var (
	// ErrDuplicate is returned by a rejecting insert that found the
	// qualified name already registered.
	ErrDuplicate = errors.New("duplicate symbol")
	// ErrNotFound is returned when a lookup-by-key mutation names an
	// entry that was never registered.
	ErrNotFound = errors.New("entry not found")
	// ErrFrozen is returned by any mutation of a frozen registry.
	ErrFrozen = errors.New("registry is frozen")
)

// Option configures a Registry at construction time.
type Option[T Entry] func(*Registry[T])

// WithPolicy sets the registry's default duplicate policy. Registries
// default to ReturnExisting.
func WithPolicy[T Entry](p Policy) Option[T] {
	return func(r *Registry[T]) {
		r.policy = p
	}
}

// WithValidate installs a check that runs before every insert. A
// validation error aborts the insert and leaves the registry unchanged.
func WithValidate[T Entry](fn func(T) error) Option[T] {
	return func(r *Registry[T]) {
		r.validate = fn
	}
}

// Registry is an insertion-ordered mapping from qualified name to entry.
type Registry[T Entry] struct {
	entries  map[string]T
	order    []string
	policy   Policy
	validate func(T) error
	frozen   bool
}

// New creates an empty registry.
func New[T Entry](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		entries: make(map[string]T),
		policy:  ReturnExisting,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the registry's default duplicate policy.
func (r *Registry[T]) Policy() Policy {
	return r.policy
}

// Add inserts an entry under the registry's default policy.
func (r *Registry[T]) Add(e T) (T, error) {
	return r.Insert(e, r.policy)
}

// Insert registers an entry under its qualified name. On a duplicate key
// the given policy decides: ReturnExisting yields the already-registered
// entry, Reject fails with ErrDuplicate. Either way the registry is left
// unchanged on any failure.
func (r *Registry[T]) Insert(e T, p Policy) (T, error) {
	var zero T
	if r.frozen {
		return zero, ErrFrozen
	}
	if r.validate != nil {
		if err := r.validate(e); err != nil {
			return zero, err
		}
	}
	key := e.QualifiedName()
	if existing, ok := r.entries[key]; ok {
		switch p {
		case ReturnExisting:
			return existing, nil
		case Reject:
			return zero, fmt.Errorf("%w: %s", ErrDuplicate, key)
		default:
			return zero, fmt.Errorf("unknown duplicate policy: %v", p)
		}
	}
	slog.Debug("Registering entry.", "name", key)
	r.entries[key] = e
	r.order = append(r.order, key)
	return e, nil
}

// Get returns the entry registered under the qualified name.
func (r *Registry[T]) Get(key string) (T, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Has reports whether the qualified name is registered.
func (r *Registry[T]) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Contains reports whether an entry with the same qualified name is
// registered.
func (r *Registry[T]) Contains(e T) bool {
	return r.Has(e.QualifiedName())
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.order)
}

// Keys returns the qualified names in insertion order.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// All returns the entries in insertion order.
func (r *Registry[T]) All() []T {
	all := make([]T, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.entries[key])
	}
	return all
}

// Filter returns the entries accepted by keep, in insertion order.
func (r *Registry[T]) Filter(keep func(T) bool) []T {
	var matched []T
	for _, key := range r.order {
		if e := r.entries[key]; keep(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Each calls fn for every entry in insertion order, stopping at the first
// error, which it returns.
func (r *Registry[T]) Each(fn func(T) error) error {
	for _, key := range r.order {
		if err := fn(r.entries[key]); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the entry registered under the qualified name, failing
// with ErrNotFound when there is none.
func (r *Registry[T]) Remove(key string) error {
	if r.frozen {
		return ErrFrozen
	}
	if _, ok := r.entries[key]; !ok {
		return fmt.Errorf("%w: no entry named %q", ErrNotFound, key)
	}
	delete(r.entries, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every entry.
func (r *Registry[T]) Clear() error {
	if r.frozen {
		return ErrFrozen
	}
	r.entries = make(map[string]T)
	r.order = nil
	return nil
}

// Freeze makes the registry read-only. Subsequent inserts, removes, and
// clears fail with ErrFrozen. Freezing is not reversible.
func (r *Registry[T]) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry[T]) Frozen() bool {
	return r.frozen
}
