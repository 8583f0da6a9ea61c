// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// sampleFS stores built-in sample resume embedded into the package.
//
//go:embed samples/resume.json
var sampleFS embed.FS

// samplePath is embedded sample resume location.
const samplePath = "samples/resume.json"

// SampleFormats returns supported sample output formats.
func SampleFormats() []InputFormat {
	return []InputFormat{InputFormatJSON, InputFormatYAML}
}

// SampleResume returns embedded sample resume encoded as JSON or YAML.
func SampleResume(format InputFormat) ([]byte, error) {
	data, err := sampleFS.ReadFile(samplePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSample, err)
	}

	switch InputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", InputFormatJSON:
		return data, nil
	case InputFormatYAML, "yml":
		out, err := jsonToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeSampleYAML, err)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSampleFormat, format)
	}
}

// jsonToYAML re-encodes JSON document as block-style YAML keeping key order.
func jsonToYAML(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	clearYAMLStyle(&root)
	return marshalYAMLNode(&root)
}

// clearYAMLStyle resets flow and quoting styles so encoder picks block layout.
func clearYAMLStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearYAMLStyle(child)
	}
}

// marshalYAMLNode serializes YAML document node with two-space indentation.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(node); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
