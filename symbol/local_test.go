// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import (
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func titleCase(s string) string {
	return strings.ToUpper(s)
}

func TestNewLocal_RequiresTarget(t *testing.T) {
	_, err := NewLocal("x", Target{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewLocal("x", Own(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var p *int
	_, err = NewLocal("x", Observe(p))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLocal_OwningCaptureAlwaysResolves(t *testing.T) {
	l, err := NewLocal("answer", Own(42))
	require.NoError(t, err)

	assert.False(t, l.Weak())
	for i := 0; i < 3; i++ {
		runtime.GC()
		v, err := l.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
}

func TestLocal_WeakCaptureResolvesWhileAlive(t *testing.T) {
	target := new(int)
	*target = 7

	l, err := NewLocal("seven", Observe(target))
	require.NoError(t, err)
	assert.True(t, l.Weak())

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, 7, *v.(*int))

	runtime.KeepAlive(target)
}

func TestLocal_WeakCaptureFailsAfterCollection(t *testing.T) {
	l := func() *Local {
		target := new(int)
		*target = 7
		l, err := NewLocal("seven", Observe(target))
		require.NoError(t, err)
		return l
	}()

	// The pointee is unreachable now; a full collection reclaims it and
	// clears the weak handle.
	runtime.GC()
	runtime.GC()

	_, err := l.Value()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCollected)

	// The symbol itself outlives its target.
	assert.Equal(t, "seven", l.QualifiedName())
	assert.Equal(t, KindVariable, l.Kind())
}

func TestNewLocal_KindClassification(t *testing.T) {
	mod, err := NewModule("m")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		target   Target
		expected Kind
	}{
		{name: "module", target: Own(mod), expected: KindModule},
		{name: "reflected type is a class", target: Own(reflect.TypeFor[exportedMarker]()), expected: KindClass},
		{name: "callable", target: Own(titleCase), expected: KindFunction},
		{name: "plain value", target: Own("hello"), expected: KindVariable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewLocal("x", tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, l.Kind())
		})
	}
}

func TestNewLocal_KindOverride(t *testing.T) {
	l, err := NewLocal("x", Own("hello"), WithKind(KindClass))
	require.NoError(t, err)
	assert.Equal(t, KindClass, l.Kind())
}

func TestNewLocal_ImpliedAnnotation(t *testing.T) {
	l, err := NewLocal("s", Own("hello"))
	require.NoError(t, err)
	assert.True(t, l.Annotation().Equal(TypeAnnotation(cty.String)))

	n, err := NewLocal("n", Own(42))
	require.NoError(t, err)
	assert.True(t, n.Annotation().Equal(TypeAnnotation(cty.Number)))

	// Types the type system cannot express stay unset.
	fn, err := NewLocal("f", Own(titleCase))
	require.NoError(t, err)
	assert.True(t, fn.Annotation().IsUnset())

	// An explicit annotation wins over derivation.
	e, err := NewLocal("e", Own("hello"), WithLocalAnnotation(NoneAnnotation()))
	require.NoError(t, err)
	assert.True(t, e.Annotation().IsNone())
}

func TestLocalEqual(t *testing.T) {
	target := new(int)
	a, err := NewLocal("x", Observe(target))
	require.NoError(t, err)
	b, err := NewLocal("x", Observe(target))
	require.NoError(t, err)
	c, err := NewLocal("x", Observe(new(int)))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same observed target, same identity")
	assert.False(t, a.Equal(c), "distinct targets differ even with equal values")
	assert.False(t, a.Equal(nil))

	runtime.KeepAlive(target)
}

func TestLocalTable_KindRestriction(t *testing.T) {
	table := NewLocalTable()

	_, err := table.AddVar("v", Own(1))
	require.NoError(t, err)
	_, err = table.AddVar("f", Own(titleCase), WithKind(KindFunction))
	require.NoError(t, err)
	_, err = table.AddVar("c", Own("x"), WithKind(KindClass))
	require.NoError(t, err)

	_, err = table.AddVar("m", Own(1), WithKind(KindModule))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongKind)
	assert.Equal(t, 3, table.Len(), "the rejected insert leaves the table unchanged")
}

func TestLocalTable_AddFunc(t *testing.T) {
	table := NewLocalTable()

	l, err := table.AddFunc(titleCase)
	require.NoError(t, err)
	assert.Equal(t, "titleCase", l.Name())
	assert.Equal(t, KindFunction, l.Kind())

	_, err = table.AddFunc("not callable")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLocalTable_AnonymousCallables(t *testing.T) {
	t.Run("enabled synthesizes unique names", func(t *testing.T) {
		table := NewLocalTable()

		first, err := table.AddFunc(func() {})
		require.NoError(t, err)
		second, err := table.AddFunc(func() {})
		require.NoError(t, err)

		assert.Equal(t, "anon_1", first.Name())
		assert.Equal(t, "anon_2", second.Name())
		assert.NotEqual(t, first.QualifiedName(), second.QualifiedName())
	})

	t.Run("disabled rejects with PolicyViolation", func(t *testing.T) {
		table := NewLocalTable(WithoutAnonymous())

		_, err := table.AddFunc(func() {})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})
}

func TestLocalTable_AddType(t *testing.T) {
	table := NewLocalTable()

	l, err := table.AddType(reflect.TypeFor[exportedMarker]())
	require.NoError(t, err)
	assert.Equal(t, "exportedMarker", l.Name())
	assert.Equal(t, KindClass, l.Kind())

	_, err = table.AddType(reflect.TypeFor[int]())
	assert.ErrorIs(t, err, ErrPolicyViolation, "predeclared types are user-domain violations")

	_, err = table.AddType(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
