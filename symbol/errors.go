// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import "errors"

// Contract violations are synchronous and atomic: the failing call leaves
// no partial state behind. Match with errors.Is; wrapped messages carry
// the offending name or kind.
var (
	// ErrMalformedName reports a full name that cannot be split into a
	// valid scope and name.
	ErrMalformedName = errors.New("malformed symbol name")
	// ErrWrongKind reports a symbol whose kind a kind-restricted registry
	// does not accept.
	ErrWrongKind = errors.New("wrong symbol kind")
	// ErrCollected reports a weakly observed target that has been
	// reclaimed.
	ErrCollected = errors.New("referenced object has been collected")
	// ErrInvalidArgument reports a missing or ill-typed argument, such as
	// an absent target or a non-callable where a function is required.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPolicyViolation reports a reference into the predeclared
	// namespace, or an anonymous callable where those are unsupported.
	ErrPolicyViolation = errors.New("policy violation")
	// ErrUnhandledKind reports a visited variant the visitor does not
	// implement.
	ErrUnhandledKind = errors.New("unhandled symbol kind")
)
