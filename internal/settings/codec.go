// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load decodes a settings document. YAML and JSON are both accepted.
func Load(r io.Reader) (*Settings, error) {
	s := new(Settings)
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDecodeSettings, err)
	}

	return s, nil
}

// LoadFile decodes the settings document at path on fs.
func LoadFile(fs afero.Fs, path string) (*Settings, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening settings file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Write encodes s as YAML.
func (s *Settings) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	return enc.Close()
}
