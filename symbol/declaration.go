// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the declaration hierarchy around body-carrying
// symbols, and the Declarations registry with its kind-filtered lookups.
// Lookups scan linearly: these registries stay small and the guiding
// requirement is deterministic iteration order, not lookup speed.

package symbol

import (
	"strings"

	"github.com/vk/symtab/registry"
)

// Declaration is a top-level symbol carrying body text: a function,
// variable, or class.
type Declaration interface {
	Descriptor
	// Body is the source or generated-code payload.
	Body() string
}

// Variable is a value-binding declaration; its body is the initializer
// expression text.
type Variable struct {
	base
	body string
}

// NewVariable constructs a variable declaration. The annotation may be
// unset; the body holds the initializer expression text.
func NewVariable(name string, annotation Annotation, body string) (*Variable, error) {
	b, err := newBase(name, KindVariable, annotation)
	if err != nil {
		return nil, err
	}
	return &Variable{base: b, body: body}, nil
}

// Body returns the initializer expression text.
func (v *Variable) Body() string {
	return v.body
}

// Accept dispatches to VisitVariable.
func (v *Variable) Accept(vis Visitor) error {
	return vis.VisitVariable(v)
}

// Equal compares name, scope, annotation, and body.
func (v *Variable) Equal(other *Variable) bool {
	if other == nil {
		return false
	}
	return v.equal(&other.base) && v.body == other.body
}

// String renders the source-like binding, e.g. `answer: number = 42`.
// An unset annotation renders as Any.
func (v *Variable) String() string {
	ann := v.annotation.String()
	if v.annotation.IsUnset() {
		ann = "Any"
	}
	return v.name + ": " + ann + " = " + v.body
}

// Class is a type declaration with ordered base-class and decorator name
// lists. Both lists support appending after construction, because the
// model may be assembled before all modifiers are known.
type Class struct {
	base
	bases      []string
	decorators []string
	body       string
}

// ClassOption configures a Class at construction time.
type ClassOption func(*Class)

// WithBases sets the initial ordered base-class names.
func WithBases(bases ...string) ClassOption {
	return func(c *Class) {
		c.bases = append(c.bases, bases...)
	}
}

// WithDecorators sets the initial ordered decorator names.
func WithDecorators(decorators ...string) ClassOption {
	return func(c *Class) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// WithClassAnnotation sets the class's type annotation.
func WithClassAnnotation(a Annotation) ClassOption {
	return func(c *Class) {
		c.annotation = a
	}
}

// NewClass constructs a class declaration.
func NewClass(name, body string, opts ...ClassOption) (*Class, error) {
	b, err := newBase(name, KindClass, NoAnnotation())
	if err != nil {
		return nil, err
	}
	c := &Class{base: b, body: body}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Bases returns the ordered base-class names.
func (c *Class) Bases() []string {
	return c.bases
}

// Decorators returns the ordered decorator names.
func (c *Class) Decorators() []string {
	return c.decorators
}

// AddBase appends a base-class name.
func (c *Class) AddBase(name string) {
	c.bases = append(c.bases, name)
}

// AddDecorator appends a decorator name.
func (c *Class) AddDecorator(name string) {
	c.decorators = append(c.decorators, name)
}

// Body returns the body text.
func (c *Class) Body() string {
	return c.body
}

// Accept dispatches to VisitClass.
func (c *Class) Accept(v Visitor) error {
	return v.VisitClass(c)
}

// Equal compares the shared metadata: name, scope, kind, annotation.
func (c *Class) Equal(other *Class) bool {
	if other == nil {
		return false
	}
	return c.equal(&other.base)
}

// String renders the source-like header, e.g. `class Shape(Base, Mixin)`.
func (c *Class) String() string {
	if len(c.bases) == 0 {
		return "class " + c.name
	}
	return "class " + c.name + "(" + strings.Join(c.bases, ", ") + ")"
}

// Declarations is the ordered registry of a compilation unit's
// declarations, with kind-filtered first-match-by-name lookups.
type Declarations struct {
	*registry.Registry[Declaration]
}

// NewDeclarations creates an empty declaration registry. Its default
// duplicate policy is ReturnExisting.
func NewDeclarations() *Declarations {
	return &Declarations{Registry: registry.New[Declaration]()}
}

// Named returns the first declaration with the given short name.
func (d *Declarations) Named(name string) (Declaration, bool) {
	for _, decl := range d.All() {
		if decl.Name() == name {
			return decl, true
		}
	}
	return nil, false
}

// HasNamed reports whether any declaration has the given short name.
func (d *Declarations) HasNamed(name string) bool {
	_, ok := d.Named(name)
	return ok
}

// ByKind returns every declaration of the given kind, in insertion order.
func (d *Declarations) ByKind(k Kind) []Declaration {
	return d.Filter(func(decl Declaration) bool {
		return decl.Kind() == k
	})
}

// Function returns the first function declaration with the given short
// name.
func (d *Declarations) Function(name string) (*Function, bool) {
	for _, decl := range d.All() {
		if decl.Kind() == KindFunction && decl.Name() == name {
			if fn, ok := decl.(*Function); ok {
				return fn, true
			}
		}
	}
	return nil, false
}

// Variable returns the first variable declaration with the given short
// name.
func (d *Declarations) Variable(name string) (*Variable, bool) {
	for _, decl := range d.All() {
		if decl.Kind() == KindVariable && decl.Name() == name {
			if va, ok := decl.(*Variable); ok {
				return va, true
			}
		}
	}
	return nil, false
}

// Class returns the first class declaration with the given short name.
func (d *Declarations) Class(name string) (*Class, bool) {
	for _, decl := range d.All() {
		if decl.Kind() == KindClass && decl.Name() == name {
			if cl, ok := decl.(*Class); ok {
				return cl, true
			}
		}
	}
	return nil, false
}

// Visible returns the declarations whose short names match the given
// visibility, in insertion order.
func (d *Declarations) Visible(v Visibility) []Declaration {
	return d.Filter(func(decl Declaration) bool {
		return v.Matches(decl.Name())
	})
}

// Accept visits every declaration in insertion order.
func (d *Declarations) Accept(v Visitor) error {
	return d.Each(func(decl Declaration) error {
		return decl.Accept(v)
	})
}
