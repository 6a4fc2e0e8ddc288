// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "variable", KindVariable.String())
	assert.Equal(t, "function", KindFunction.String())
	assert.Equal(t, "class", KindClass.String())
	assert.Equal(t, "parameter", KindParameter.String())
	assert.Equal(t, "module", KindModule.String())
	assert.Equal(t, "import", KindImport.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestParamKindString(t *testing.T) {
	assert.Equal(t, "positional-only", PositionalOnly.String())
	assert.Equal(t, "positional-or-keyword", PositionalOrKeyword.String())
	assert.Equal(t, "variadic-positional", VariadicPositional.String())
	assert.Equal(t, "keyword-only", KeywordOnly.String())
	assert.Equal(t, "variadic-keyword", VariadicKeyword.String())
}

func TestParamKindVariadic(t *testing.T) {
	assert.True(t, VariadicPositional.Variadic())
	assert.True(t, VariadicKeyword.Variadic())
	assert.False(t, PositionalOnly.Variadic())
	assert.False(t, PositionalOrKeyword.Variadic())
	assert.False(t, KeywordOnly.Variadic())
}

func TestVisibility(t *testing.T) {
	assert.Equal(t, Public, VisibilityOf("area"))
	assert.Equal(t, Private, VisibilityOf("_cache"))
	assert.Equal(t, Private, VisibilityOf("__init__"))

	assert.True(t, Public.Matches("area"))
	assert.False(t, Public.Matches("_cache"))
	assert.True(t, Private.Matches("_cache"))

	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "private", Private.String())
}
