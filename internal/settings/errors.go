package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorNotFound indicates that a registration list does not contain
	// the entry a new component must be inserted next to.
	ErrAnchorNotFound = errors.New("anchor entry not found")
	// ErrMissingSetting indicates that a setting the addon reads is absent.
	ErrMissingSetting = errors.New("required setting is missing")
	// ErrDecodeSettings indicates that a settings document could not be parsed.
	ErrDecodeSettings = errors.New("error decoding settings")
)

// AnchorError reports a failed [InsertBefore].
type AnchorError struct {
	// Anchor is the entry that was expected in the list.
	Anchor string
	// Entry is the entry that could not be inserted.
	Entry string
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("cannot insert %q: %s: %q", e.Entry, ErrAnchorNotFound, e.Anchor)
}

func (e *AnchorError) Unwrap() error {
	return ErrAnchorNotFound
}

// MissingSettingError wraps [ErrMissingSetting] with the offending key.
func MissingSettingError(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingSetting, key)
}
