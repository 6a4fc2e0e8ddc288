// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImport(t *testing.T) {
	i, err := NewImport("pkg.mod", WithAlias("m"))
	require.NoError(t, err)

	assert.Equal(t, "mod", i.Name())
	assert.Equal(t, "pkg", i.Scope())
	assert.Equal(t, "pkg.mod", i.QualifiedName())
	assert.Equal(t, KindImport, i.Kind())
	assert.Equal(t, "m", i.Alias())
	assert.Equal(t, "m", i.AliasedName())
	assert.Equal(t, "import pkg.mod as m", i.String())
}

func TestImport_AliasedNameFallsBackToName(t *testing.T) {
	i, err := NewImport("pkg.mod")
	require.NoError(t, err)
	assert.Empty(t, i.Alias())
	assert.Equal(t, "mod", i.AliasedName())
	assert.Equal(t, "import pkg.mod", i.String())
}

func TestImportEqual(t *testing.T) {
	a, err := NewImport("pkg.mod", WithAlias("m"))
	require.NoError(t, err)
	b, err := NewImport("pkg.mod", WithAlias("m"))
	require.NoError(t, err)
	c, err := NewImport("pkg.mod", WithAlias("other"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "the alias participates in equality")
	assert.False(t, a.Equal(nil))
}

func TestImports_AddReference(t *testing.T) {
	im := NewImports()
	i, err := im.AddReference("pkg.mod", WithAlias("m"))
	require.NoError(t, err)

	got, ok := im.Get("pkg.mod")
	require.True(t, ok)
	assert.Same(t, i, got)
}

func TestImports_AddModule(t *testing.T) {
	im := NewImports()

	i, err := im.AddModule("pkg.sub")
	require.NoError(t, err)
	assert.Equal(t, "pkg.sub.*", i.QualifiedName())
	assert.True(t, im.Has("pkg.sub.*"))

	// An already-wildcarded path is not double-suffixed.
	again, err := im.AddModule("pkg.sub.*")
	require.NoError(t, err)
	assert.Same(t, i, again)
	assert.Equal(t, 1, im.Len())
}

type exportedMarker struct{}

func TestImports_AddType(t *testing.T) {
	im := NewImports()

	i, err := im.AddType(reflect.TypeFor[exportedMarker]())
	require.NoError(t, err)
	assert.Equal(t, "exportedMarker", i.Name())
	assert.True(t, strings.HasSuffix(i.Scope(), "symbol"))

	_, err = im.AddType(reflect.TypeFor[int]())
	assert.ErrorIs(t, err, ErrPolicyViolation, "predeclared types are rejected")

	_, err = im.AddType(reflect.TypeFor[struct{ X int }]())
	assert.ErrorIs(t, err, ErrPolicyViolation, "unnamed types are rejected")

	_, err = im.AddType(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestImports_AddFunc(t *testing.T) {
	im := NewImports()

	i, err := im.AddFunc(strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, "ToUpper", i.Name())
	assert.Equal(t, "strings", i.Scope())

	_, err = im.AddFunc(func() {})
	assert.ErrorIs(t, err, ErrInvalidArgument, "anonymous callables have no stable name")

	_, err = im.AddFunc(42)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = im.AddFunc(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
