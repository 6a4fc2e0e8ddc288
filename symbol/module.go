// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the compilation unit: one import registry, one
// declaration registry, and documentation text under a single module
// identity. Traversal order is part of the contract: every import is
// visited before any declaration, so consumers see resolved references
// before the declarations that may use them.

package symbol

// Module is a compilation unit.
type Module struct {
	base
	doc     string
	imports *Imports
	decls   *Declarations
}

// ModuleOption configures a Module at construction time.
type ModuleOption func(*Module)

// WithDoc sets the unit's documentation text.
func WithDoc(doc string) ModuleOption {
	return func(m *Module) {
		m.doc = doc
	}
}

// NewModule constructs an empty compilation unit.
func NewModule(fullName string, opts ...ModuleOption) (*Module, error) {
	b, err := newBase(fullName, KindModule, NoAnnotation())
	if err != nil {
		return nil, err
	}
	m := &Module{
		base:    b,
		imports: NewImports(),
		decls:   NewDeclarations(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Imports returns the unit's import registry.
func (m *Module) Imports() *Imports {
	return m.imports
}

// Declarations returns the unit's declaration registry.
func (m *Module) Declarations() *Declarations {
	return m.decls
}

// Doc returns the documentation text.
func (m *Module) Doc() string {
	return m.doc
}

// SetDoc replaces the documentation text.
func (m *Module) SetDoc(doc string) {
	m.doc = doc
}

// Accept dispatches to VisitModule.
func (m *Module) Accept(v Visitor) error {
	return v.VisitModule(m)
}

// VisitChildren visits every import reference, then every declaration,
// each group in insertion order. The ordering holds regardless of how
// the producer interleaved its inserts across the two registries.
func (m *Module) VisitChildren(v Visitor) error {
	if err := m.imports.Accept(v); err != nil {
		return err
	}
	return m.decls.Accept(v)
}

// Equal compares the shared metadata: name, scope, kind, annotation.
func (m *Module) Equal(other *Module) bool {
	if other == nil {
		return false
	}
	return m.equal(&other.base)
}

// String renders the source-like header, e.g. `module app.main`.
func (m *Module) String() string {
	return "module " + m.QualifiedName()
}
