package factory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hidal-go/graphval/base"
	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

func TestRegistryTypes(t *testing.T) {
	r := newTestRegistry()
	require.Equal(t, values.Types(), r.Types())
	for _, tp := range r.Types() {
		f := r.ByType(tp)
		require.NotNil(t, f)
		require.Equal(t, tp, f.PropertyType())
	}
	require.Nil(t, r.ByType(values.PropertyType(0)))
}

func TestRegistryRegister(t *testing.T) {
	r := newTestRegistry()
	err := r.Register(NewLongFactory(nil, nil))
	require.Equal(t, base.ErrRegistered{Name: "Long"}, err)
	require.EqualError(t, err, "already registered: Long")

	_, err = r.Convert(values.PropertyType(99), "x")
	require.True(t, errors.Is(err, ErrNotRegistered))
}

func TestRegistryLookup(t *testing.T) {
	r := newTestRegistry()
	lf, ok := Lookup[values.Long](r, values.TypeLong)
	require.True(t, ok)
	v, err := lf.FromString("12")
	require.NoError(t, err)
	require.Equal(t, values.Long(12), v)

	_, ok = Lookup[values.String](r, values.TypeLong)
	require.False(t, ok)
	_, ok = Lookup[values.Long](r, values.PropertyType(99))
	require.False(t, ok)
}

func TestRegistryOptions(t *testing.T) {
	r := NewRegistry(Options{Decoder: codec.URL{}, Namespaces: testNamespaces})
	for _, tp := range r.Types() {
		f, ok := r.ByType(tp).(interface {
			Decoder(codec.Decoder) codec.Decoder
		})
		require.True(t, ok)
		require.Equal(t, codec.URL{}, f.Decoder(nil))
	}
	v, err := r.ByType(values.TypeName).CreateDecoded("dna:a%20b", nil)
	require.NoError(t, err)
	require.Equal(t, values.Name{Namespace: "http://www.jboss.org/dna", Local: "a b"}, v)

	s, err := r.Convert(values.TypeString, values.Name{Namespace: "http://www.jboss.org/dna", Local: "x"})
	require.NoError(t, err)
	require.Equal(t, values.String("dna:x"), s)
}

func TestRegistryConcurrent(t *testing.T) {
	r := newTestRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tp := range values.Types() {
				_, _ = r.Convert(tp, "42")
			}
		}()
	}
	wg.Wait()
}
