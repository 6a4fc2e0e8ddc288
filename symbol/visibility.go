// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package symbol

import (
	"fmt"
	"strings"
)

// Visibility classifies a symbol name by the modeled language's
// leading-underscore convention.
type Visibility int

const (
	// Public names carry no leading underscore.
	Public Visibility = iota
	// Private names start with an underscore.
	Private
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

// VisibilityOf classifies a short name.
func VisibilityOf(name string) Visibility {
	if strings.HasPrefix(name, "_") {
		return Private
	}
	return Public
}

// Matches reports whether the short name has this visibility.
func (v Visibility) Matches(name string) bool {
	return VisibilityOf(name) == v
}
