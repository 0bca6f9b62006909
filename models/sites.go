// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMalformedSiteTable is returned when a language table is not a mapping
// of "default" and numeric site ids.
var ErrMalformedSiteTable = errors.New("malformed language table")

const defaultKey = "default"

// encodeSiteTable renders a language table as one mapping with "default"
// first and the site ids in ascending order.
func encodeSiteTable[T any](def any, sites map[int]T) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	defNode := &yaml.Node{}
	if err := defNode.Encode(def); err != nil {
		return nil, err
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: defaultKey},
		defNode,
	)

	for _, site := range slices.Sorted(maps.Keys(sites)) {
		value := &yaml.Node{}
		if err := value.Encode(sites[site]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(site)},
			value,
		)
	}

	return node, nil
}

func decodeSiteTable(node *yaml.Node, def any, site func(int, *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a mapping at line %d", ErrMalformedSiteTable, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value == defaultKey {
			if err := value.Decode(def); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedSiteTable, err)
			}
			continue
		}

		id, err := strconv.Atoi(key.Value)
		if err != nil {
			return fmt.Errorf("%w: site key %q is not numeric", ErrMalformedSiteTable, key.Value)
		}
		if err := site(id, value); err != nil {
			return fmt.Errorf("%w: site %d: %w", ErrMalformedSiteTable, id, err)
		}
	}

	return nil
}
