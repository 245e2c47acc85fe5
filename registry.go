package absence

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Default registry names for the global sentinel and its predicate.
const (
	DefaultSentinelName  = "Absent"
	DefaultPredicateName = "isabsent"
)

// Registry is a process-wide string-keyed binding table: the explicit Go
// counterpart of installing names into an ambient builtin namespace.
// Bindings are additive; a name already bound to a different value is
// refused, never overwritten. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared process-wide registry targeted by
// Install. It exists from first use; importing the package alone never
// populates it.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Bind associates name with value. Binding a name already held by a
// different value returns a NameConflictError and writes nothing; rebinding
// the identical value is an idempotent success.
func (r *Registry) Bind(name string, value any) error {
	return r.bindAll([]binding{{name: name, value: value}})
}

// Resolve returns the value bound to name and whether the name is bound.
func (r *Registry) Resolve(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

// Names returns a sorted snapshot of the bound names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of bound names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

type binding struct {
	name  string
	value any
}

// bindAll applies every binding or none: conflicts are detected against the
// current entries and within the batch before the first write.
func (r *Registry) bindAll(bindings []binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staged := make(map[string]any, len(bindings))
	for _, b := range bindings {
		if existing, ok := r.entries[b.name]; ok && !sameBinding(existing, b.value) {
			return &NameConflictError{Name: b.name}
		}
		if prior, ok := staged[b.name]; ok && !sameBinding(prior, b.value) {
			return &NameConflictError{Name: b.name}
		}
		staged[b.name] = b.value
	}
	for name, v := range staged {
		r.entries[name] = v
	}
	return nil
}

// sameBinding reports whether a and b denote the same value for conflict
// purposes. Reference kinds (funcs, pointers, maps, slices, channels)
// compare by identity; comparable values compare with ==; everything else
// conflicts. Never panics, even for uncomparable types.
func sameBinding(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return vb.Kind() == va.Kind() && va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return false
}

// installConfig carries the resolved name choices for a single install.
type installConfig struct {
	sentinelName  string
	predicateName string
	skipSentinel  bool
	skipPredicate bool
}

// InstallOption configures a single Install or InstallInto call.
type InstallOption func(*installConfig)

// WithSentinelName installs the sentinel under name instead of
// DefaultSentinelName. Panics if name is empty.
func WithSentinelName(name string) InstallOption {
	requireNonEmpty("sentinel name", name)
	return func(c *installConfig) {
		c.sentinelName = name
	}
}

// WithPredicateName installs the predicate under name instead of
// DefaultPredicateName. Panics if name is empty.
func WithPredicateName(name string) InstallOption {
	requireNonEmpty("predicate name", name)
	return func(c *installConfig) {
		c.predicateName = name
	}
}

// WithoutSentinel suppresses installing the sentinel. Distinct from omitting
// a name option, which installs under the default name.
func WithoutSentinel() InstallOption {
	return func(c *installConfig) {
		c.skipSentinel = true
	}
}

// WithoutPredicate suppresses installing the predicate.
func WithoutPredicate() InstallOption {
	return func(c *installConfig) {
		c.skipPredicate = true
	}
}

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(what, s string) {
	if s == "" {
		panic(fmt.Sprintf("absence: %s must not be empty", what))
	}
}

// Install binds Absent and the IsAbsent predicate into the default registry
// under DefaultSentinelName and DefaultPredicateName, or the names chosen via
// options. Installation is additive: repeated calls with different names all
// resolve. A name already bound to an unrelated value is refused with a
// NameConflictError and nothing is written. Skipping both halves is a no-op.
func Install(opts ...InstallOption) error {
	return InstallInto(DefaultRegistry(), opts...)
}

// InstallInto is Install targeting an explicit registry.
func InstallInto(r *Registry, opts ...InstallOption) error {
	cfg := installConfig{
		sentinelName:  DefaultSentinelName,
		predicateName: DefaultPredicateName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	var bindings []binding
	if !cfg.skipSentinel {
		bindings = append(bindings, binding{name: cfg.sentinelName, value: Singleton()})
	}
	if !cfg.skipPredicate {
		bindings = append(bindings, binding{name: cfg.predicateName, value: Predicate()})
	}
	if len(bindings) == 0 {
		return nil
	}
	return r.bindAll(bindings)
}

// Predicate returns the IsAbsent predicate as an installable value. Every
// call returns a func with the same underlying code pointer, so repeated
// installs under the same name stay idempotent.
func Predicate() func(any) bool {
	return IsAbsent
}
