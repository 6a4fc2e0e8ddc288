// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package symbol models the structural elements of a program as a uniform,
// queryable, in-memory graph: modules, classes, functions, variables,
// parameters, and import relationships.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Descriptor: the surface shared by every symbol. A descriptor has a
//     short name, an optional enclosing scope, a closed Kind tag, and an
//     optional type annotation. Its qualified name (scope + "." + name) is
//     the key under which registries index it.
//
//   - Declarations: function, variable, and class symbols carrying body
//     text, collected per compilation unit with kind-filtered lookups.
//
//   - Import: a "bring in X under alias Y" reference, including the
//     wildcard whole-module form.
//
//   - Module: the compilation unit, aggregating one import registry and
//     one declaration registry plus documentation text.
//
//   - Local: a symbol observing a live runtime value, either weakly (the
//     target is owned elsewhere and may be reclaimed) or owningly.
//
// Traversal uses a closed Visitor interface with one method per concrete
// variant; UnimplementedVisitor supplies fail-loud defaults so a consumer
// handling a subset of variants is alerted to gaps instead of silently
// skipping symbols. Composite symbols visit their children in insertion
// order, and a module always presents its imports before its declarations.
//
// Type annotations and default values are expressed with cty types and
// values, with an explicit three-state presence model (unset, null,
// present) carried by Annotation and Default.
//
// Everything here is synchronous and in-memory. Construction is
// programmatic: a front end or introspection layer produces symbols, a
// generator or analyzer consumes them.
package symbol
