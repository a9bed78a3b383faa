package registry

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/mitchellh/mapstructure"
)

// Factory builds a T from raw configuration parameters.
type Factory[T any] func(params map[string]any) (T, error)

// Registry stores factories keyed by name. Instances are independent: two
// registries never share keys even when created with the same name. Access
// is not synchronized; the registry is meant for single-threaded setup code.
type Registry[T any] struct {
	name      string
	order     []string
	factories map[string]Factory[T]
}

// New returns an empty registry. The name identifies the registry in error
// messages and diagnostics only; it has no effect on lookups.
func New[T any](name string) *Registry[T] {
	return &Registry[T]{name: name, factories: make(map[string]Factory[T])}
}

// Name returns the identifier the registry was created with.
func (r *Registry[T]) Name() string { return r.name }

// Register records a factory under key and returns it unchanged so call
// sites can keep a reference. Registering an already-present key fails with
// a *DuplicateError; keys are never overwritten silently.
func (r *Registry[T]) Register(key string, f Factory[T]) (Factory[T], error) {
	if f == nil {
		return nil, fmt.Errorf("registry %s: nil factory for %q", r.name, key)
	}
	if prev, ok := r.factories[key]; ok {
		return nil, &DuplicateError{Registry: r.name, Key: key, Existing: funcName(prev)}
	}
	r.order = append(r.order, key)
	r.factories[key] = f
	return f, nil
}

// Create looks up key and invokes its factory with params. An unknown key
// yields a *NotRegisteredError; errors from the factory itself propagate
// unchanged.
func (r *Registry[T]) Create(key string, params map[string]any) (T, error) {
	f, ok := r.factories[key]
	if !ok {
		var zero T
		return zero, &NotRegisteredError{Registry: r.name, Key: key, Available: r.Keys()}
	}
	return f(params)
}

// Keys returns the registered keys in registration order.
func (r *Registry[T]) Keys() []string {
	return append([]string(nil), r.order...)
}

// Contains reports whether key is registered.
func (r *Registry[T]) Contains(key string) bool {
	_, ok := r.factories[key]
	return ok
}

// Len returns the number of registered keys.
func (r *Registry[T]) Len() int { return len(r.factories) }

// CreateFromConfig builds one instance per record, in input order. Every
// record must carry a string "name" field selecting the factory; the
// remaining fields are passed to it as parameters. The first failing record
// aborts the batch and records after it are not processed; instances built
// before the failure are discarded by the caller, not rolled back.
func (r *Registry[T]) CreateFromConfig(records []map[string]any) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		name, ok := rec["name"].(string)
		if !ok || name == "" {
			return nil, &MissingNameError{Registry: r.name, Index: i}
		}
		params := make(map[string]any, len(rec)-1)
		for k, v := range rec {
			if k != "name" {
				params[k] = v
			}
		}
		inst, err := r.Create(name, params)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// Decode fills out using the params' json tags. Factories use it to turn raw
// parameter maps into typed configs; type mismatches are errors.
func Decode(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

func funcName(f any) string {
	if fn := runtime.FuncForPC(reflect.ValueOf(f).Pointer()); fn != nil {
		return fn.Name()
	}
	return fmt.Sprintf("%T", f)
}
