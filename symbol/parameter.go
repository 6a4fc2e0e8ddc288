// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the parameter model. A Parameter is a descriptor
// whose kind is fixed to KindParameter, extended with a binding kind and
// an optional default. Parameters collects them with strict name
// uniqueness because order and distinctness carry signature fidelity.

package symbol

import (
	"strings"

	"github.com/vk/symtab/registry"
)

// Parameter is one parameter of a callable.
type Parameter struct {
	base
	paramKind ParamKind
	def       Default
}

// ParameterOption configures a Parameter at construction time.
type ParameterOption func(*Parameter)

// WithParamAnnotation sets the parameter's type annotation.
func WithParamAnnotation(a Annotation) ParameterOption {
	return func(p *Parameter) {
		p.annotation = a
	}
}

// WithParamDefault sets the parameter's default value. Ignored for
// variadic kinds, which never carry a default.
func WithParamDefault(d Default) ParameterOption {
	return func(p *Parameter) {
		p.def = d
	}
}

// NewParameter constructs a parameter. A variadic kind forces the default
// to unset regardless of the supplied options.
func NewParameter(name string, kind ParamKind, opts ...ParameterOption) (*Parameter, error) {
	b, err := newBase(name, KindParameter, NoAnnotation())
	if err != nil {
		return nil, err
	}
	p := &Parameter{base: b, paramKind: kind}
	for _, opt := range opts {
		opt(p)
	}
	if kind.Variadic() {
		p.def = NoDefault()
	}
	return p, nil
}

// ParamKind returns the binding kind.
func (p *Parameter) ParamKind() ParamKind {
	return p.paramKind
}

// Default returns the optional default value.
func (p *Parameter) Default() Default {
	return p.def
}

// Accept dispatches to VisitParameter.
func (p *Parameter) Accept(v Visitor) error {
	return v.VisitParameter(p)
}

// Equal compares name, scope, binding kind, default, and annotation.
func (p *Parameter) Equal(other *Parameter) bool {
	if other == nil {
		return false
	}
	return p.equal(&other.base) &&
		p.paramKind == other.paramKind &&
		p.def.Equal(other.def)
}

// String renders the source-like parameter fragment, e.g. `x: number = 5`
// or `**options`.
func (p *Parameter) String() string {
	var sb strings.Builder
	switch p.paramKind {
	case VariadicPositional:
		sb.WriteString("*")
	case VariadicKeyword:
		sb.WriteString("**")
	}
	sb.WriteString(p.name)
	if !p.annotation.IsUnset() {
		sb.WriteString(": ")
		sb.WriteString(p.annotation.String())
	}
	if !p.def.IsUnset() {
		sb.WriteString(" = ")
		sb.WriteString(p.def.String())
	}
	return sb.String()
}

func (p *Parameter) clone() *Parameter {
	c := *p
	return &c
}

// Parameters is the ordered, name-unique collection of a callable's
// parameters. Its default duplicate policy is Reject.
type Parameters struct {
	*registry.Registry[*Parameter]
}

// NewParameters creates an empty parameter collection.
func NewParameters() *Parameters {
	return &Parameters{
		Registry: registry.New(registry.WithPolicy[*Parameter](registry.Reject)),
	}
}

// AddParameter constructs a parameter and adds it in one step.
func (ps *Parameters) AddParameter(name string, kind ParamKind, opts ...ParameterOption) (*Parameter, error) {
	p, err := NewParameter(name, kind, opts...)
	if err != nil {
		return nil, err
	}
	return ps.Add(p)
}

// At returns the parameter at the given insertion position.
func (ps *Parameters) At(i int) (*Parameter, bool) {
	keys := ps.Keys()
	if i < 0 || i >= len(keys) {
		return nil, false
	}
	return ps.Get(keys[i])
}

// Equal compares two collections entry by entry, order sensitively.
func (ps *Parameters) Equal(other *Parameters) bool {
	if other == nil {
		return false
	}
	if ps.Len() != other.Len() {
		return false
	}
	mine, theirs := ps.All(), other.All()
	for i := range mine {
		if !mine[i].Equal(theirs[i]) {
			return false
		}
	}
	return true
}

// Accept visits every parameter in insertion order.
func (ps *Parameters) Accept(v Visitor) error {
	return ps.Each(func(p *Parameter) error {
		return p.Accept(v)
	})
}
