// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the function declaration and the Signature value that
// round-trips it. Signature synthesis produces the ordered parameter list
// plus return annotation; NewFunctionFromSignature rebuilds an equivalent
// declaration from such a value, preserving order, kind, default, and
// annotation exactly.

package symbol

import (
	"fmt"
	"strings"
)

// Function is a callable declaration: ordered parameters, a return
// annotation, an asynchronous flag, and body text.
type Function struct {
	base
	params *Parameters
	ret    Annotation
	async  bool
	body   string
}

type functionConfig struct {
	params []*Parameter
	ret    Annotation
	body   string
	async  bool
}

// FunctionOption configures a Function at construction time.
type FunctionOption func(*functionConfig)

// WithParameters appends parameters in the given order.
func WithParameters(params ...*Parameter) FunctionOption {
	return func(c *functionConfig) {
		c.params = append(c.params, params...)
	}
}

// WithReturn sets the return annotation. It is mirrored into the
// descriptor annotation.
func WithReturn(a Annotation) FunctionOption {
	return func(c *functionConfig) {
		c.ret = a
	}
}

// WithBody sets the body text.
func WithBody(body string) FunctionOption {
	return func(c *functionConfig) {
		c.body = body
	}
}

// WithAsync marks the declaration asynchronous.
func WithAsync() FunctionOption {
	return func(c *functionConfig) {
		c.async = true
	}
}

// NewFunction constructs a function declaration. Parameter insertion is
// strict: a duplicate parameter name fails the construction.
func NewFunction(name string, opts ...FunctionOption) (*Function, error) {
	var cfg functionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b, err := newBase(name, KindFunction, cfg.ret)
	if err != nil {
		return nil, err
	}
	f := &Function{
		base:   b,
		params: NewParameters(),
		ret:    cfg.ret,
		async:  cfg.async,
		body:   cfg.body,
	}
	for _, p := range cfg.params {
		if _, err := f.params.Add(p); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewFunctionFromSignature rebuilds a declaration from a synthesized
// signature. The signature is validated first; its parameters are cloned
// so the new declaration owns its entries. Options apply after the
// signature's parameters.
func NewFunctionFromSignature(name string, sig Signature, opts ...FunctionOption) (*Function, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	cloned := make([]*Parameter, 0, len(sig.Parameters))
	for _, p := range sig.Parameters {
		cloned = append(cloned, p.clone())
	}
	merged := append([]FunctionOption{
		WithParameters(cloned...),
		WithReturn(sig.Return),
	}, opts...)
	return NewFunction(name, merged...)
}

// Parameters returns the ordered parameter collection.
func (f *Function) Parameters() *Parameters {
	return f.params
}

// AddParameter constructs a parameter and appends it.
func (f *Function) AddParameter(name string, kind ParamKind, opts ...ParameterOption) (*Parameter, error) {
	return f.params.AddParameter(name, kind, opts...)
}

// Return returns the return annotation.
func (f *Function) Return() Annotation {
	return f.ret
}

// Async reports whether the declaration is asynchronous.
func (f *Function) Async() bool {
	return f.async
}

// Body returns the body text.
func (f *Function) Body() string {
	return f.body
}

// Signature synthesizes the canonical ordered parameter list and return
// annotation from the declaration's current state.
func (f *Function) Signature() Signature {
	return Signature{
		Parameters: f.params.All(),
		Return:     f.ret,
	}
}

// Accept dispatches to VisitFunction.
func (f *Function) Accept(v Visitor) error {
	return v.VisitFunction(f)
}

// VisitChildren visits every parameter in declaration order.
func (f *Function) VisitChildren(v Visitor) error {
	return f.params.Accept(v)
}

// Equal compares name, scope, ordered parameters, return annotation, and
// the asynchronous flag. Body text does not participate.
func (f *Function) Equal(other *Function) bool {
	if other == nil {
		return false
	}
	return f.name == other.name &&
		f.scope == other.scope &&
		f.params.Equal(other.params) &&
		f.ret.Equal(other.ret) &&
		f.async == other.async
}

// String renders the source-like header, e.g.
// `async def fetch(url: string) -> string`.
func (f *Function) String() string {
	prefix := ""
	if f.async {
		prefix = "async "
	}
	return fmt.Sprintf("%sdef %s%s", prefix, f.name, f.Signature())
}

// Signature is the synthesized shape of a function declaration: the
// parameters in declaration order plus the return annotation.
type Signature struct {
	Parameters []*Parameter
	Return     Annotation
}

// String renders the conventional text form, e.g.
// `(a, b: number = 1, *rest) -> string`.
func (s Signature) String() string {
	parts := make([]string, 0, len(s.Parameters))
	for _, p := range s.Parameters {
		parts = append(parts, p.String())
	}
	text := "(" + strings.Join(parts, ", ") + ")"
	if !s.Return.IsUnset() {
		text += " -> " + s.Return.String()
	}
	return text
}

// Validate checks that the parameter sequence could appear in a callable
// header: kinds in canonical order, at most one of each variadic kind,
// unique names, and no non-defaulted positional parameter after a
// defaulted one.
func (s Signature) Validate() error {
	seen := make(map[string]struct{}, len(s.Parameters))
	prev := PositionalOnly
	variadicPos, variadicKw := false, false
	defaulted := false
	for _, p := range s.Parameters {
		if p.ParamKind() < prev {
			return fmt.Errorf("%w: %s parameter %q follows %s", ErrInvalidArgument, p.ParamKind(), p.Name(), prev)
		}
		prev = p.ParamKind()
		if _, dup := seen[p.Name()]; dup {
			return fmt.Errorf("%w: duplicate parameter name %q", ErrInvalidArgument, p.Name())
		}
		seen[p.Name()] = struct{}{}
		switch p.ParamKind() {
		case VariadicPositional:
			if variadicPos {
				return fmt.Errorf("%w: multiple variadic-positional parameters", ErrInvalidArgument)
			}
			variadicPos = true
		case VariadicKeyword:
			if variadicKw {
				return fmt.Errorf("%w: multiple variadic-keyword parameters", ErrInvalidArgument)
			}
			variadicKw = true
		case PositionalOnly, PositionalOrKeyword:
			if p.Default().IsUnset() && defaulted {
				return fmt.Errorf("%w: non-default parameter %q follows a default parameter", ErrInvalidArgument, p.Name())
			}
			if !p.Default().IsUnset() {
				defaulted = true
			}
		}
	}
	return nil
}
