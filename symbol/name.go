// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import (
	"fmt"
	"strings"
)

// SplitName splits a dotted full name into enclosing scope and short name
// on the last separator. A name without a separator has an empty scope.
// The scope side is opaque and may itself be dotted; the name segment must
// be non-empty and must not contain a separator after the split.
func SplitName(full string) (scope, name string, err error) {
	if full == "" {
		return "", "", fmt.Errorf("%w: name is empty", ErrMalformedName)
	}
	idx := strings.LastIndex(full, ".")
	if idx < 0 {
		return "", full, nil
	}
	scope, name = full[:idx], full[idx+1:]
	if name == "" {
		return "", "", fmt.Errorf("%w: %q has an empty name segment", ErrMalformedName, full)
	}
	if strings.Contains(name, ".") {
		// Unreachable after a last-index split; kept as the normalization
		// invariant check.
		return "", "", fmt.Errorf("%w: %q still contains a separator", ErrMalformedName, name)
	}
	return scope, name, nil
}

// JoinName is the inverse of SplitName for a present scope.
func JoinName(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}
