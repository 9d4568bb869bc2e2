package factory

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/hidal-go/graphval/base"
	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

// Options configures the standard factories.
type Options struct {
	// Decoder is the default decoder of all factories. NoOp is used if not set.
	Decoder codec.Decoder
	// Namespaces are used to parse and format names and paths in "prefix:local" form.
	Namespaces values.Namespaces
}

// Registry maps property types to their factories.
// It is populated once and is safe for concurrent reads afterwards.
type Registry struct {
	byType  map[values.PropertyType]Factory
	strings *StringFactory
}

// NewRegistry creates a registry with a factory for every standard property type.
// All factories share the same decoder and String factory.
func NewRegistry(opts Options) *Registry {
	dec := opts.Decoder
	if dec == nil {
		dec = codec.NoOp{}
	}
	strs := NewStringFactory(dec, opts.Namespaces)
	r := &Registry{
		byType:  make(map[values.PropertyType]Factory),
		strings: strs,
	}
	for _, f := range []Factory{
		strs,
		NewBinaryFactory(dec, strs),
		NewLongFactory(dec, strs),
		NewDoubleFactory(dec, strs),
		NewFloatFactory(dec, strs),
		NewDecimalFactory(dec, strs),
		NewDateTimeFactory(dec, strs),
		NewBooleanFactory(dec, strs),
		NewNameFactory(dec, strs, opts.Namespaces),
		NewPathFactory(dec, strs, opts.Namespaces),
		NewReferenceFactory(dec, strs),
		NewURIFactory(dec, strs),
		NewUUIDFactory(dec, strs),
	} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a factory for a property type that has no factory yet.
func (r *Registry) Register(f Factory) error {
	t := f.PropertyType()
	if !t.Valid() {
		return fmt.Errorf("factory: invalid property type: %v", t)
	} else if _, ok := r.byType[t]; ok {
		return base.ErrRegistered{Name: t.String()}
	}
	r.byType[t] = f
	return nil
}

// ByType returns a factory for the property type, or nil if it is not registered.
func (r *Registry) ByType(t values.PropertyType) Factory {
	return r.byType[t]
}

// Types lists all property types with a registered factory.
func (r *Registry) Types() []values.PropertyType {
	out := lo.Keys(r.byType)
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// Strings returns the String factory shared by all standard factories.
func (r *Registry) Strings() *StringFactory {
	return r.strings
}

// Convert creates a value of type t from the source.
func (r *Registry) Convert(t values.PropertyType, src interface{}) (values.Value, error) {
	f := r.ByType(t)
	if f == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRegistered, t)
	}
	return f.Create(src)
}

// Lookup returns a typed factory for the property type.
func Lookup[T values.Value](r *Registry, t values.PropertyType) (ValueFactory[T], bool) {
	f, ok := r.ByType(t).(ValueFactory[T])
	return f, ok
}
