// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/symtab/registry"
)

func TestNewParameter(t *testing.T) {
	p, err := NewParameter("name", PositionalOrKeyword,
		WithParamAnnotation(TypeAnnotation(cty.String)),
		WithParamDefault(DefaultOf(cty.StringVal("world"))),
	)
	require.NoError(t, err)

	assert.Equal(t, "name", p.Name())
	assert.Equal(t, KindParameter, p.Kind())
	assert.Equal(t, PositionalOrKeyword, p.ParamKind())
	assert.True(t, p.Annotation().Equal(TypeAnnotation(cty.String)))
	assert.True(t, p.Default().Equal(DefaultOf(cty.StringVal("world"))))
}

func TestNewParameter_MalformedName(t *testing.T) {
	_, err := NewParameter("", PositionalOnly)
	assert.ErrorIs(t, err, ErrMalformedName)
}

func TestNewParameter_VariadicDropsDefault(t *testing.T) {
	for _, kind := range []ParamKind{VariadicPositional, VariadicKeyword} {
		t.Run(kind.String(), func(t *testing.T) {
			p, err := NewParameter("rest", kind,
				WithParamDefault(DefaultOf(cty.NumberIntVal(1))),
			)
			require.NoError(t, err)
			assert.True(t, p.Default().IsUnset(),
				"variadic parameters never carry a default")
		})
	}
}

func TestParameterString(t *testing.T) {
	testCases := []struct {
		name     string
		kind     ParamKind
		opts     []ParameterOption
		expected string
	}{
		{
			name:     "plain",
			kind:     PositionalOrKeyword,
			expected: "x",
		},
		{
			name: "annotated with default",
			kind: PositionalOrKeyword,
			opts: []ParameterOption{
				WithParamAnnotation(TypeAnnotation(cty.Number)),
				WithParamDefault(DefaultOf(cty.NumberIntVal(5))),
			},
			expected: "x: number = 5",
		},
		{
			name:     "variadic positional",
			kind:     VariadicPositional,
			expected: "*x",
		},
		{
			name:     "variadic keyword",
			kind:     VariadicKeyword,
			expected: "**x",
		},
		{
			name: "explicit null default",
			kind: KeywordOnly,
			opts: []ParameterOption{
				WithParamDefault(NullDefault()),
			},
			expected: "x = None",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParameter("x", tc.kind, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.String())
		})
	}
}

func TestParameterEqual(t *testing.T) {
	a, err := NewParameter("x", PositionalOrKeyword,
		WithParamDefault(DefaultOf(cty.NumberIntVal(1))))
	require.NoError(t, err)
	b, err := NewParameter("x", PositionalOrKeyword,
		WithParamDefault(DefaultOf(cty.NumberIntVal(1))))
	require.NoError(t, err)
	c, err := NewParameter("x", KeywordOnly,
		WithParamDefault(DefaultOf(cty.NumberIntVal(1))))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "binding kind participates in equality")
	assert.False(t, a.Equal(nil))
}

func TestParameters_RejectsDuplicateName(t *testing.T) {
	ps := NewParameters()
	_, err := ps.AddParameter("x", PositionalOrKeyword)
	require.NoError(t, err)

	_, err = ps.AddParameter("x", KeywordOnly)
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicate)
	assert.Equal(t, 1, ps.Len())
}

func TestParameters_OrderAndAt(t *testing.T) {
	ps := NewParameters()
	for _, n := range []string{"self", "width", "height"} {
		_, err := ps.AddParameter(n, PositionalOrKeyword)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"self", "width", "height"}, ps.Keys())

	p, ok := ps.At(1)
	require.True(t, ok)
	assert.Equal(t, "width", p.Name())

	_, ok = ps.At(3)
	assert.False(t, ok)
	_, ok = ps.At(-1)
	assert.False(t, ok)
}

func TestParameters_Equal(t *testing.T) {
	build := func(names ...string) *Parameters {
		ps := NewParameters()
		for _, n := range names {
			_, err := ps.AddParameter(n, PositionalOrKeyword)
			require.NoError(t, err)
		}
		return ps
	}

	assert.True(t, build("a", "b").Equal(build("a", "b")))
	assert.False(t, build("a", "b").Equal(build("b", "a")), "order is load-bearing")
	assert.False(t, build("a").Equal(build("a", "b")))
	assert.False(t, build("a").Equal(nil))
}
