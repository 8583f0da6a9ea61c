// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxYAMLNodes bounds alias expansion while converting YAML node trees.
const maxYAMLNodes = 1 << 20

// errYAMLTooLarge is returned when YAML alias expansion exceeds maxYAMLNodes.
var errYAMLTooLarge = errors.New("yaml document expands beyond node limit")

// errYAMLMergeValue is returned when merge key value is not mapping or sequence of mappings.
var errYAMLMergeValue = errors.New("yaml merge requires mapping or sequence of mappings")

// ParseDocument decodes resume bytes into a loosely-typed map tree.
// Root must be object or null.
func ParseDocument(data []byte, format InputFormat) (any, error) {
	format, err := normalizeInputFormat(format)
	if err != nil {
		return nil, err
	}

	if format == InputFormatAuto {
		format = sniffInputFormat(data)
	}

	var document any
	switch format {
	case InputFormatJSON:
		document, err = decodeJSONDocument(data)
	default:
		document, err = decodeYAMLDocument(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResume, err)
	}

	switch document.(type) {
	case nil, map[string]any:
		return document, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrResumeRootType, document)
	}
}

// sniffInputFormat picks JSON for brace-prefixed content and YAML otherwise.
func sniffInputFormat(data []byte) InputFormat {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return InputFormatJSON
	}

	return InputFormatYAML
}

// FormatForPath maps file extension into input format when format is auto.
func FormatForPath(path string, format InputFormat) InputFormat {
	if format != "" && format != InputFormatAuto {
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return InputFormatJSON
	case ".yaml", ".yml":
		return InputFormatYAML
	default:
		return InputFormatAuto
	}
}

// decodeJSONDocument decodes JSON bytes into map tree.
func decodeJSONDocument(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	return document, nil
}

// decodeYAMLDocument decodes YAML bytes into map tree with string keys.
// Numeric and timestamp scalars keep source text so unquoted dates survive.
func decodeYAMLDocument(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	converter := yamlConverter{budget: maxYAMLNodes}
	return converter.value(&root)
}

// yamlConverter converts yaml.Node trees with bounded alias expansion.
type yamlConverter struct {
	budget int
}

// value converts one node and its children.
func (converter *yamlConverter) value(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}

	converter.budget--
	if converter.budget < 0 {
		return nil, errYAMLTooLarge
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return converter.value(node.Content[0])

	case yaml.AliasNode:
		return converter.value(node.Alias)

	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		var merges []*yaml.Node
		for index := 0; index+1 < len(node.Content); index += 2 {
			key := node.Content[index]
			if isMergeKey(key) {
				merges = append(merges, node.Content[index+1])
				continue
			}

			item, err := converter.value(node.Content[index+1])
			if err != nil {
				return nil, err
			}

			out[key.Value] = item
		}

		for _, merge := range merges {
			if err := converter.merge(out, merge); err != nil {
				return nil, err
			}
		}

		return out, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := converter.value(child)
			if err != nil {
				return nil, err
			}

			out = append(out, item)
		}

		return out, nil

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var flag bool
			if err := node.Decode(&flag); err != nil {
				return node.Value, nil
			}

			return flag, nil
		default:
			return node.Value, nil
		}

	default:
		return nil, nil
	}
}

// merge copies entries of merged mapping (or sequence of mappings) into out.
// Explicit keys and earlier merge sources win over later ones.
func (converter *yamlConverter) merge(out map[string]any, node *yaml.Node) error {
	value, err := converter.value(node)
	if err != nil {
		return err
	}

	switch typed := value.(type) {
	case map[string]any:
		mergeMissing(out, typed)
	case []any:
		for _, item := range typed {
			source, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("%w, got %T", errYAMLMergeValue, item)
			}

			mergeMissing(out, source)
		}
	default:
		return fmt.Errorf("%w, got %T", errYAMLMergeValue, value)
	}

	return nil
}

// mergeMissing copies source entries whose keys are absent in out.
func mergeMissing(out, source map[string]any) {
	for key, item := range source {
		if _, exists := out[key]; !exists {
			out[key] = item
		}
	}
}

// isMergeKey reports whether mapping key is YAML merge key "<<".
func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge"
}

// lookup walks key path through nested objects and returns nil when any step is not an object.
func lookup(root any, path ...string) any {
	current := root
	for _, key := range path {
		object, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = object[key]
	}

	return current
}
