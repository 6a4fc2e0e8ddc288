// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the three-state presence model for symbol metadata.
// An annotation or default value is either intentionally absent (unset),
// an explicit null (the modeled language's None), or a present value.
// The distinction matters to consumers: "def f(x)" and "def f(x: None)"
// are different declarations, and so are "no default" and "default None".

package symbol

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

type presence uint8

const (
	unset presence = iota
	null
	set
)

// Annotation is an optional type annotation. The zero value is unset.
type Annotation struct {
	state presence
	typ   cty.Type
}

// NoAnnotation returns the unset annotation.
func NoAnnotation() Annotation {
	return Annotation{}
}

// NoneAnnotation returns the explicit-null annotation.
func NoneAnnotation() Annotation {
	return Annotation{state: null}
}

// TypeAnnotation returns an annotation carrying the given type.
func TypeAnnotation(t cty.Type) Annotation {
	return Annotation{state: set, typ: t}
}

// IsUnset reports an intentionally absent annotation.
func (a Annotation) IsUnset() bool { return a.state == unset }

// IsNone reports an explicit-null annotation.
func (a Annotation) IsNone() bool { return a.state == null }

// IsSet reports a present type.
func (a Annotation) IsSet() bool { return a.state == set }

// Type returns the annotated type when one is present.
func (a Annotation) Type() (cty.Type, bool) {
	if a.state != set {
		return cty.NilType, false
	}
	return a.typ, true
}

// Equal reports structural equality across the three states.
func (a Annotation) Equal(other Annotation) bool {
	if a.state != other.state {
		return false
	}
	if a.state != set {
		return true
	}
	return a.typ.Equals(other.typ)
}

// String renders the annotation: empty for unset, "None" for null, the
// type's friendly name otherwise.
func (a Annotation) String() string {
	switch a.state {
	case null:
		return "None"
	case set:
		return a.typ.FriendlyName()
	default:
		return ""
	}
}

// Default is an optional default value. The zero value is unset.
type Default struct {
	state presence
	val   cty.Value
}

// NoDefault returns the unset default.
func NoDefault() Default {
	return Default{}
}

// NullDefault returns the explicit-null default.
func NullDefault() Default {
	return Default{state: null}
}

// DefaultOf returns a default carrying the given value.
func DefaultOf(v cty.Value) Default {
	return Default{state: set, val: v}
}

// IsUnset reports an intentionally absent default.
func (d Default) IsUnset() bool { return d.state == unset }

// IsNull reports an explicit-null default.
func (d Default) IsNull() bool { return d.state == null }

// IsSet reports a present value.
func (d Default) IsSet() bool { return d.state == set }

// Value returns the default value when one is present.
func (d Default) Value() (cty.Value, bool) {
	if d.state != set {
		return cty.NilVal, false
	}
	return d.val, true
}

// Equal reports structural equality across the three states. Present
// values compare with RawEquals, so unknowns and marks never panic.
func (d Default) Equal(other Default) bool {
	if d.state != other.state {
		return false
	}
	if d.state != set {
		return true
	}
	return d.val.RawEquals(other.val)
}

// String renders the default: empty for unset, "None" for null, a
// source-like literal otherwise.
func (d Default) String() string {
	switch d.state {
	case null:
		return "None"
	case set:
		return formatValue(d.val)
	default:
		return ""
	}
}

// formatValue renders a cty value the way the modeled language writes
// literals.
func formatValue(v cty.Value) string {
	if !v.IsKnown() {
		return v.GoString()
	}
	if v.IsNull() {
		return "None"
	}
	switch {
	case v.Type().Equals(cty.String):
		return fmt.Sprintf("%q", v.AsString())
	case v.Type().Equals(cty.Number):
		return v.AsBigFloat().Text('g', -1)
	case v.Type().Equals(cty.Bool):
		if v.True() {
			return "True"
		}
		return "False"
	default:
		return v.GoString()
	}
}
