// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package overrides

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotBoolish is returned for a string that is neither a truthy nor a
// falsy spelling.
var ErrNotBoolish = errors.New("value is not a boolean")

var (
	truthy = []string{"1", "t", "true", "y", "yes", "on"}
	falsy  = []string{"", "0", "f", "false", "n", "no", "off"}
)

// BoolIsh is a boolean read from a loosely typed source such as an
// environment variable. Every boolean override is parsed through it.
type BoolIsh bool

// ParseBoolIsh interprets s as a boolean. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseBoolIsh(s string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, t := range truthy {
		if v == t {
			return true, nil
		}
	}
	for _, f := range falsy {
		if v == f {
			return false, nil
		}
	}

	return false, fmt.Errorf("%w: %q", ErrNotBoolish, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so caarlos0/env can
// decode BoolIsh fields.
func (b *BoolIsh) UnmarshalText(text []byte) error {
	v, err := ParseBoolIsh(string(text))
	if err != nil {
		return err
	}
	*b = BoolIsh(v)
	return nil
}
