// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines symbols that observe live runtime values. A Target
// captures the value either weakly (the owner keeps it alive; the
// observation may expire) or owningly (for values that cannot support
// weak observation). The symbol's own lifetime is independent of its
// target's: a Local stays registered after its weak target is reclaimed,
// and only dereferencing it fails.

package symbol

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"weak"

	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/symtab/registry"
)

// anonFuncName matches compiler-synthesized names of function literals,
// e.g. `main.main.func1` or `pkg.glob..func2.1`.
var anonFuncName = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

var (
	moduleType       = reflect.TypeFor[Module]()
	reflectTypeIface = reflect.TypeFor[reflect.Type]()
)

// Target is the captured observation of a live value: a non-owning weak
// handle, or a direct owning capture. The zero Target observes nothing.
type Target struct {
	deref func() (any, bool)
	typ   reflect.Type
	weak  bool
}

// Observe captures a non-owning weak observation of the pointee. The
// pointee stays owned elsewhere and may be reclaimed independently;
// dereferencing after that fails with ErrCollected. A nil pointer yields
// the zero Target.
func Observe[T any](p *T) Target {
	if p == nil {
		return Target{}
	}
	h := weak.Make(p)
	return Target{
		deref: func() (any, bool) {
			if q := h.Value(); q != nil {
				return q, true
			}
			return nil, false
		},
		typ:  reflect.TypeFor[T](),
		weak: true,
	}
}

// Own captures the value directly, for targets whose type cannot support
// weak observation. Dereferencing always succeeds. A nil value yields
// the zero Target.
func Own(v any) Target {
	if v == nil {
		return Target{}
	}
	return Target{
		deref: func() (any, bool) { return v, true },
		typ:   reflect.TypeOf(v),
		weak:  false,
	}
}

// IsZero reports whether the target observes nothing.
func (t Target) IsZero() bool {
	return t.deref == nil
}

// Weak reports whether the capture is a non-owning weak observation.
func (t Target) Weak() bool {
	return t.weak
}

// Type returns the reflected type of the observed value; for a weak
// capture, the pointee's type.
func (t Target) Type() reflect.Type {
	return t.typ
}

// same reports target identity: both captures resolve to the same value.
// Two expired weak captures compare equal.
func (t Target) same(other Target) bool {
	if t.IsZero() || other.IsZero() {
		return t.IsZero() == other.IsZero()
	}
	if t.weak != other.weak {
		return false
	}
	a, okA := t.deref()
	b, okB := other.deref()
	if okA != okB {
		return false
	}
	if !okA {
		return true
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return va.Comparable() && va.Equal(vb)
	}
}

// classifyType auto-classifies a target's kind, precedence
// module > class > callable > variable.
func classifyType(t reflect.Type) Kind {
	switch {
	case t == nil:
		return KindVariable
	case t == moduleType || (t.Kind() == reflect.Pointer && t.Elem() == moduleType):
		return KindModule
	case t.Implements(reflectTypeIface):
		return KindClass
	case t.Kind() == reflect.Func:
		return KindFunction
	default:
		return KindVariable
	}
}

// Local is a symbol observing a live runtime value.
type Local struct {
	base
	target Target
}

type localConfig struct {
	kind       Kind
	kindSet    bool
	annotation Annotation
	annSet     bool
}

// LocalOption configures a Local at construction time.
type LocalOption func(*localConfig)

// WithKind overrides the auto-classified kind.
func WithKind(k Kind) LocalOption {
	return func(c *localConfig) {
		c.kind = k
		c.kindSet = true
	}
}

// WithLocalAnnotation sets the annotation instead of deriving it from
// the target's type.
func WithLocalAnnotation(a Annotation) LocalOption {
	return func(c *localConfig) {
		c.annotation = a
		c.annSet = true
	}
}

// NewLocal constructs a live-object symbol over the given target. A zero
// target fails with ErrInvalidArgument. Unless overridden, the kind is
// auto-classified from the target and the annotation is derived from the
// target's type where the type system can express it.
func NewLocal(name string, target Target, opts ...LocalOption) (*Local, error) {
	if target.IsZero() {
		return nil, fmt.Errorf("%w: local symbol requires a target", ErrInvalidArgument)
	}
	var cfg localConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	kind := cfg.kind
	if !cfg.kindSet {
		kind = classifyType(target.typ)
	}
	annotation := cfg.annotation
	if !cfg.annSet {
		annotation = impliedAnnotation(target)
	}
	b, err := newBase(name, kind, annotation)
	if err != nil {
		return nil, err
	}
	return &Local{base: b, target: target}, nil
}

// impliedAnnotation derives an annotation from the target's current
// value, or leaves it unset when the type system cannot express one.
func impliedAnnotation(t Target) Annotation {
	v, ok := t.deref()
	if !ok {
		return NoAnnotation()
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return NoAnnotation()
	}
	return TypeAnnotation(ty)
}

// Value returns the live value. For a weak capture whose target has been
// reclaimed it fails with ErrCollected; owning captures always succeed.
func (l *Local) Value() (any, error) {
	v, ok := l.target.deref()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollected, l.QualifiedName())
	}
	return v, nil
}

// Weak reports whether the symbol observes its target weakly.
func (l *Local) Weak() bool {
	return l.target.weak
}

// Target returns the captured observation.
func (l *Local) Target() Target {
	return l.target
}

// Accept dispatches to VisitLocal.
func (l *Local) Accept(v Visitor) error {
	return v.VisitLocal(l)
}

// Equal compares the shared metadata and target identity.
func (l *Local) Equal(other *Local) bool {
	if other == nil {
		return false
	}
	return l.equal(&other.base) && l.target.same(other.target)
}

// LocalTable is the registry of live-object symbols. It accepts only
// variable, function, and class kinds.
type LocalTable struct {
	*registry.Registry[*Local]
	allowAnon bool
	anonSeq   int
}

// LocalTableOption configures a LocalTable at construction time.
type LocalTableOption func(*LocalTable)

// WithoutAnonymous makes AddFunc reject anonymous callables with
// ErrPolicyViolation instead of synthesizing names for them.
func WithoutAnonymous() LocalTableOption {
	return func(t *LocalTable) {
		t.allowAnon = false
	}
}

// NewLocalTable creates an empty table. Anonymous callables are
// supported unless disabled.
func NewLocalTable(opts ...LocalTableOption) *LocalTable {
	t := &LocalTable{allowAnon: true}
	t.Registry = registry.New(registry.WithValidate(checkLocalKind))
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func checkLocalKind(l *Local) error {
	switch l.Kind() {
	case KindVariable, KindFunction, KindClass:
		return nil
	default:
		return fmt.Errorf("%w: expected a variable, function, or class, got a %s", ErrWrongKind, l.Kind())
	}
}

// AddVar constructs a live-object symbol under the given name and adds
// it. The kind is auto-classified from the target, so a callable target
// still registers as a function.
func (t *LocalTable) AddVar(name string, target Target, opts ...LocalOption) (*Local, error) {
	l, err := NewLocal(name, target, opts...)
	if err != nil {
		return nil, err
	}
	return t.Add(l)
}

// AddFunc adds a callable under its own runtime name. Anonymous
// callables get a synthesized table-unique name when supported, else
// fail with ErrPolicyViolation. Non-callables fail with
// ErrInvalidArgument.
func (t *LocalTable) AddFunc(fn any, opts ...LocalOption) (*Local, error) {
	full, anonymous, err := funcName(fn)
	if err != nil {
		return nil, err
	}
	var name string
	if anonymous {
		if !t.allowAnon {
			return nil, fmt.Errorf("%w: anonymous callables are not supported here", ErrPolicyViolation)
		}
		t.anonSeq++
		name = fmt.Sprintf("anon_%d", t.anonSeq)
	} else {
		name = full
		if idx := strings.LastIndex(full, "."); idx >= 0 {
			name = full[idx+1:]
		}
	}
	l, err := NewLocal(name, Own(fn), opts...)
	if err != nil {
		return nil, err
	}
	return t.Add(l)
}

// AddType adds a named type under its short name. Types from the
// predeclared namespace, and unnamed types, fail with
// ErrPolicyViolation.
func (t *LocalTable) AddType(rt reflect.Type, opts ...LocalOption) (*Local, error) {
	if rt == nil {
		return nil, fmt.Errorf("%w: nil type", ErrInvalidArgument)
	}
	if rt.PkgPath() == "" {
		return nil, fmt.Errorf("%w: type %s is predeclared or unnamed", ErrPolicyViolation, rt)
	}
	l, err := NewLocal(rt.Name(), Own(rt), opts...)
	if err != nil {
		return nil, err
	}
	return t.Add(l)
}

// Accept visits every local symbol in insertion order.
func (t *LocalTable) Accept(v Visitor) error {
	return t.Each(func(l *Local) error {
		return l.Accept(v)
	})
}
