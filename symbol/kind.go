// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import "fmt"

// Kind distinguishes the concrete variants of a symbol. The set is closed;
// the Visitor interface has one method per member.
type Kind int

const (
	// KindVariable is a value binding.
	KindVariable Kind = iota
	// KindFunction is a callable.
	KindFunction
	// KindClass is a type definition.
	KindClass
	// KindParameter is a single parameter of a callable.
	KindParameter
	// KindModule is a compilation unit.
	KindModule
	// KindImport is an import reference.
	KindImport
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindParameter:
		return "parameter"
	case KindModule:
		return "module"
	case KindImport:
		return "import"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParamKind distinguishes how a parameter binds its arguments.
type ParamKind int

const (
	// PositionalOnly binds by position and never by name.
	PositionalOnly ParamKind = iota
	// PositionalOrKeyword binds by position or by name.
	PositionalOrKeyword
	// VariadicPositional collects surplus positional arguments.
	VariadicPositional
	// KeywordOnly binds by name only.
	KeywordOnly
	// VariadicKeyword collects surplus keyword arguments.
	VariadicKeyword
)

// String returns the hyphenated parameter-kind name.
func (k ParamKind) String() string {
	switch k {
	case PositionalOnly:
		return "positional-only"
	case PositionalOrKeyword:
		return "positional-or-keyword"
	case VariadicPositional:
		return "variadic-positional"
	case KeywordOnly:
		return "keyword-only"
	case VariadicKeyword:
		return "variadic-keyword"
	default:
		return fmt.Sprintf("paramkind(%d)", int(k))
	}
}

// Variadic reports whether the kind collects surplus arguments. Variadic
// parameters never carry a default value.
func (k ParamKind) Variadic() bool {
	return k == VariadicPositional || k == VariadicKeyword
}
