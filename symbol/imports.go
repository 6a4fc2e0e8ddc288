// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines import references and their registry. An import
// binds a qualified name into the unit, optionally under an alias; the
// wildcard form `path.*` distinguishes "everything under this path" from
// a reference to one qualified name.

package symbol

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/vk/symtab/registry"
)

// Import is an import reference with an optional alias.
type Import struct {
	base
	alias string
}

// ImportOption configures an Import at construction time.
type ImportOption func(*Import)

// WithAlias binds the reference under the given alias.
func WithAlias(alias string) ImportOption {
	return func(i *Import) {
		i.alias = alias
	}
}

// WithImportAnnotation sets the reference's type annotation.
func WithImportAnnotation(a Annotation) ImportOption {
	return func(i *Import) {
		i.annotation = a
	}
}

// NewImport constructs an import reference to the given qualified name.
func NewImport(fullName string, opts ...ImportOption) (*Import, error) {
	b, err := newBase(fullName, KindImport, NoAnnotation())
	if err != nil {
		return nil, err
	}
	i := &Import{base: b}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Alias returns the alias, empty when none was given.
func (i *Import) Alias() string {
	return i.alias
}

// AliasedName returns the name the reference binds in the unit: the
// alias when present, the short name otherwise.
func (i *Import) AliasedName() string {
	if i.alias != "" {
		return i.alias
	}
	return i.name
}

// Accept dispatches to VisitImport.
func (i *Import) Accept(v Visitor) error {
	return v.VisitImport(i)
}

// Equal compares the shared metadata and the alias.
func (i *Import) Equal(other *Import) bool {
	if other == nil {
		return false
	}
	return i.equal(&other.base) && i.alias == other.alias
}

// String renders the source-like directive, e.g. `import pkg.mod as m`.
func (i *Import) String() string {
	if i.alias != "" {
		return fmt.Sprintf("import %s as %s", i.QualifiedName(), i.alias)
	}
	return "import " + i.QualifiedName()
}

// Imports is the ordered registry of a compilation unit's import
// references.
type Imports struct {
	*registry.Registry[*Import]
}

// NewImports creates an empty import registry. Its default duplicate
// policy is ReturnExisting.
func NewImports() *Imports {
	return &Imports{Registry: registry.New[*Import]()}
}

// AddReference constructs an import reference and adds it in one step.
func (im *Imports) AddReference(fullName string, opts ...ImportOption) (*Import, error) {
	i, err := NewImport(fullName, opts...)
	if err != nil {
		return nil, err
	}
	return im.Add(i)
}

// AddModule adds a whole-module reference. The path is canonicalized to
// its wildcard form `path.*` unless already suffixed.
func (im *Imports) AddModule(path string, opts ...ImportOption) (*Import, error) {
	if !strings.HasSuffix(path, ".*") {
		path += ".*"
	}
	return im.AddReference(path, opts...)
}

// AddType adds a reference to a named type, qualified by its package
// path. Types from the predeclared namespace, and unnamed types, fail
// with ErrPolicyViolation.
func (im *Imports) AddType(t reflect.Type, opts ...ImportOption) (*Import, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrInvalidArgument)
	}
	if t.PkgPath() == "" {
		return nil, fmt.Errorf("%w: type %s is predeclared or unnamed", ErrPolicyViolation, t)
	}
	return im.AddReference(t.PkgPath()+"."+t.Name(), opts...)
}

// AddFunc adds a reference to a named function, resolved through the
// runtime symbol table. Non-callables and callables without a stable
// name fail with ErrInvalidArgument.
func (im *Imports) AddFunc(fn any, opts ...ImportOption) (*Import, error) {
	full, anonymous, err := funcName(fn)
	if err != nil {
		return nil, err
	}
	if anonymous {
		return nil, fmt.Errorf("%w: anonymous callable has no stable name", ErrInvalidArgument)
	}
	return im.AddReference(full, opts...)
}

// Accept visits every import reference in insertion order.
func (im *Imports) Accept(v Visitor) error {
	return im.Each(func(i *Import) error {
		return i.Accept(v)
	})
}

// funcName resolves a callable to its runtime symbol name and reports
// whether that name is compiler-synthesized (an anonymous function).
func funcName(fn any) (full string, anonymous bool, err error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return "", false, fmt.Errorf("%w: expected a callable, got %T", ErrInvalidArgument, fn)
	}
	if v.IsNil() {
		return "", false, fmt.Errorf("%w: nil callable", ErrInvalidArgument)
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return "", false, fmt.Errorf("%w: callable has no runtime symbol", ErrInvalidArgument)
	}
	full = strings.TrimSuffix(rf.Name(), "-fm")
	return full, anonFuncName.MatchString(full), nil
}
