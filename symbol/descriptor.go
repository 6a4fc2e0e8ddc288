// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Descriptor interface shared by every symbol and
// the embedded base carrying the common metadata. The variant set is
// closed: each concrete symbol type pairs with one Visitor method.

package symbol

import "fmt"

// Descriptor is the surface every symbol exposes: identity (name, scope,
// derived qualified name), a closed kind tag, an optional annotation, and
// visitor dispatch for its concrete variant.
type Descriptor interface {
	fmt.Stringer

	// Name is the short name, never containing the scope separator.
	Name() string
	// Scope is the enclosing dotted scope, empty when absent.
	Scope() string
	// QualifiedName is scope + "." + name when a scope is present, else
	// the name alone. It is the registry key.
	QualifiedName() string
	// Kind tags the concrete variant.
	Kind() Kind
	// Annotation is the optional type annotation.
	Annotation() Annotation
	// Accept dispatches to the Visitor method for the concrete variant.
	Accept(Visitor) error
}

// base carries the metadata common to all symbols. Concrete variants
// embed it; the qualified name is derived, never stored.
type base struct {
	name       string
	scope      string
	kind       Kind
	annotation Annotation
}

func newBase(full string, kind Kind, annotation Annotation) (base, error) {
	scope, name, err := SplitName(full)
	if err != nil {
		return base{}, err
	}
	return base{name: name, scope: scope, kind: kind, annotation: annotation}, nil
}

// Name returns the short name.
func (b *base) Name() string { return b.name }

// Scope returns the enclosing scope, empty when absent.
func (b *base) Scope() string { return b.scope }

// Kind returns the variant tag.
func (b *base) Kind() Kind { return b.kind }

// Annotation returns the optional type annotation.
func (b *base) Annotation() Annotation { return b.annotation }

// QualifiedName derives the registry key from scope and name.
func (b *base) QualifiedName() string {
	return JoinName(b.scope, b.name)
}

// String renders the qualified name. Variants with a richer source-like
// rendering shadow this.
func (b *base) String() string {
	return b.QualifiedName()
}

// equal compares the shared metadata: name, scope, kind, annotation.
func (b *base) equal(other *base) bool {
	return b.name == other.name &&
		b.scope == other.scope &&
		b.kind == other.kind &&
		b.annotation.Equal(other.annotation)
}
