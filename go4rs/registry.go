package go4rs

import (
	"fmt"
	"reflect"
	"sync"
)

// typeRegistry maps registered type names to descriptors, with a reverse
// index from Go types used at encode time. Decoding a named type allocates
// through the stored Go type, so every composite value that crosses the
// bridge must be registered up front with an explicit field set.
type typeRegistry struct {
	mu     sync.RWMutex
	byName map[string]*TypeDescriptor
	byType map[reflect.Type]*TypeDescriptor
}

// registry is the package-wide type registry, mirroring the one-per-process
// type system on the native side. "string" is always available.
var registry = func() *typeRegistry {
	r := &typeRegistry{
		byName: make(map[string]*TypeDescriptor),
		byType: make(map[reflect.Type]*TypeDescriptor),
	}
	r.mustRegister("string", reflect.TypeOf((*string)(nil)).Elem())
	return r
}()

// TypeString is the pre-registered descriptor for Go strings
var TypeString = func() *TypeDescriptor {
	d, _ := registry.lookupName("string")
	return d
}()

// RegisterType registers T under the given name so that values of T can be
// encoded and decoded by the bridge. Registering the same pairing twice
// returns the existing descriptor. Registering a primitive keyword, reusing
// a name for a different type, or registering a pointer type is an error.
func RegisterType[T any](name string) (*TypeDescriptor, error) {
	return registry.register(name, reflect.TypeOf((*T)(nil)).Elem())
}

func (r *typeRegistry) register(name string, t reflect.Type) (*TypeDescriptor, error) {
	if name == "" {
		return nil, fmt.Errorf("type name cannot be empty")
	}
	if _, reserved := primitivesByName[name]; reserved {
		return nil, fmt.Errorf("type name %q is a reserved primitive keyword", name)
	}
	if t.Kind() == reflect.Pointer {
		return nil, fmt.Errorf("register the value type %s, not a pointer to it", t.Elem())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		if existing.goType != t {
			return nil, fmt.Errorf("type name %q is already registered for %s", name, existing.goType)
		}
		return existing, nil
	}
	if existing, ok := r.byType[t]; ok {
		return nil, fmt.Errorf("type %s is already registered as %q", t, existing.name)
	}

	desc := &TypeDescriptor{name: name, kind: KindNamed, goType: t}
	r.byName[name] = desc
	r.byType[t] = desc
	return desc, nil
}

func (r *typeRegistry) mustRegister(name string, t reflect.Type) *TypeDescriptor {
	d, err := r.register(name, t)
	if err != nil {
		panic(err)
	}
	return d
}

func (r *typeRegistry) lookupName(name string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

func (r *typeRegistry) lookupType(t reflect.Type) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byType[t]
	return d, ok
}

// newValue allocates a fresh *T for a named descriptor's decode target
func (d *TypeDescriptor) newValue() any {
	return reflect.New(d.goType).Interface()
}
