// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the traversal protocol. Dispatch is a fixed table:
// one Visitor method per concrete variant, resolved statically by each
// variant's Accept. Consumers that care about a subset of variants embed
// UnimplementedVisitor, whose methods fail instead of silently skipping,
// so a gap in coverage surfaces as an error at the first unhandled symbol.

package symbol

import "fmt"

// Visitor handles each concrete symbol variant. Implementations usually
// embed UnimplementedVisitor and override the methods they support.
type Visitor interface {
	VisitLocal(*Local) error
	VisitParameter(*Parameter) error
	VisitFunction(*Function) error
	VisitVariable(*Variable) error
	VisitClass(*Class) error
	VisitImport(*Import) error
	VisitModule(*Module) error
}

// UnimplementedVisitor fails loudly for every variant. Embed it to opt in
// to the "alert me about unhandled kinds" contract.
type UnimplementedVisitor struct{}

func (UnimplementedVisitor) VisitLocal(s *Local) error {
	return unhandled(s)
}

func (UnimplementedVisitor) VisitParameter(s *Parameter) error {
	return unhandled(s)
}

func (UnimplementedVisitor) VisitFunction(s *Function) error {
	return unhandled(s)
}

func (UnimplementedVisitor) VisitVariable(s *Variable) error {
	return unhandled(s)
}

func (UnimplementedVisitor) VisitClass(s *Class) error {
	return unhandled(s)
}

func (UnimplementedVisitor) VisitImport(s *Import) error {
	return unhandled(s)
}

func (UnimplementedVisitor) VisitModule(s *Module) error {
	return unhandled(s)
}

func unhandled(s Descriptor) error {
	return fmt.Errorf("%w: no handler for %s %q", ErrUnhandledKind, s.Kind(), s.QualifiedName())
}

var _ Visitor = UnimplementedVisitor{}
