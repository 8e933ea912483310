// Package extract derives structured rule records from YAML rule documents.
//
// Extraction is tolerant by design: a missing or wrong-typed field never
// fails a document, it resolves to the field's default. The only hard
// failure is a document whose YAML cannot be parsed at all. The original
// document text travels with the record verbatim; the extracted fields are
// an index over it, not a replacement.
package extract

import (
	"path/filepath"

	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/logging"
	"github.com/winclean/rulepack/pkg/types"
	"gopkg.in/yaml.v3"
)

// Fallbacks when the rule path carries no usable parent directory or file
// name. Discovery never produces such paths, but Extract accepts any path.
const (
	fallbackCategory = "other"
	fallbackFilename = "unknown.yaml"
)

// Extract parses one rule document and builds its SerializedRule. The
// category is the immediate parent directory of path and the filename its
// base name, regardless of document content.
//
// Fields are read from the YAML node tree rather than a decoded value, so a
// scalar like 2024-01-15 keeps its source spelling instead of being
// resolved to a timestamp.
func Extract(content []byte, path string) (*types.SerializedRule, error) {
	logger := logging.GetLogger("extract")

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrExtractionParse, "cannot parse rule document").
			WithDetail("path", path)
	}

	// A document that parses but is not a mapping carries no fields; every
	// lookup falls back to its default.
	doc := documentMapping(&root)

	meta := extractMetadata(doc, path)
	paths, registry := extractMatches(doc)

	logger.Trace().
		Str("path", path).
		Str("id", meta.ID).
		Int("paths", len(paths)).
		Int("registryEntries", len(registry)).
		Msg("Extracted rule")

	return &types.SerializedRule{
		Metadata:        meta,
		YamlContent:     string(content),
		Paths:           paths,
		RegistryEntries: registry,
	}, nil
}

// extractMetadata resolves the metadata fields with per-field defaults.
func extractMetadata(doc *yaml.Node, path string) types.RuleMetadata {
	category := filepath.Base(filepath.Dir(path))
	if category == "." || category == string(filepath.Separator) {
		category = fallbackCategory
	}
	filename := filepath.Base(path)
	if filename == "." || filename == string(filepath.Separator) {
		filename = fallbackFilename
	}

	return types.RuleMetadata{
		ID:          stringOr(doc, "id", ""),
		Name:        stringOr(doc, "name", ""),
		Risk:        stringOr(doc, "risk", types.DefaultRisk),
		SystemInfo:  stringSlice(doc, "systeminfo"),
		Update:      stringOr(doc, "update", ""),
		Author:      optString(doc, "author"),
		Description: optString(doc, "description"),
		Category:    category,
		Filename:    filename,
	}
}

// extractMatches reads the match section's path and registry lists.
func extractMatches(doc *yaml.Node) ([]string, []types.RegistryEntry) {
	var paths []string
	var registry []types.RegistryEntry

	match := mappingValue(doc, "match")
	if match == nil {
		return paths, registry
	}

	if seq := sequenceValue(match, "path"); seq != nil {
		for _, item := range seq.Content {
			if s, ok := scalarText(item); ok {
				paths = append(paths, s)
			}
		}
	}

	if seq := sequenceValue(match, "registry"); seq != nil {
		for _, item := range seq.Content {
			// Non-mapping elements still produce an entry with defaults;
			// one malformed entry must never abort the batch.
			entry := resolve(item)
			if entry != nil && entry.Kind != yaml.MappingNode {
				entry = nil
			}
			registry = append(registry, types.RegistryEntry{
				Path:      stringOr(entry, "path", ""),
				Key:       stringOr(entry, "key", types.DefaultRegistryKey),
				Value:     optString(entry, "value"),
				ValueData: optString(entry, "value_data"),
				Action:    stringOr(entry, "action", types.DefaultRegistryAction),
			})
		}
	}

	return paths, registry
}

// documentMapping returns the top-level mapping of a parsed document, or nil
// when the document is empty or not a mapping.
func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	doc := resolve(root.Content[0])
	if doc == nil || doc.Kind != yaml.MappingNode {
		return nil
	}
	return doc
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// mapValue returns the value node for key in a mapping, or nil when the
// mapping is nil or the key is absent.
func mapValue(doc *yaml.Node, key string) *yaml.Node {
	if doc == nil {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		k := resolve(doc.Content[i])
		if k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			return resolve(doc.Content[i+1])
		}
	}
	return nil
}

// mappingValue returns the value at key when it is a mapping, nil otherwise.
func mappingValue(doc *yaml.Node, key string) *yaml.Node {
	if v := mapValue(doc, key); v != nil && v.Kind == yaml.MappingNode {
		return v
	}
	return nil
}

// sequenceValue returns the value at key when it is a sequence, nil
// otherwise.
func sequenceValue(doc *yaml.Node, key string) *yaml.Node {
	if v := mapValue(doc, key); v != nil && v.Kind == yaml.SequenceNode {
		return v
	}
	return nil
}

// scalarText returns a scalar node's source text. Only string-shaped scalars
// qualify: date-like values such as 2024-01-15 count as strings, while
// numbers, booleans and nulls do not.
func scalarText(n *yaml.Node) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	switch n.Tag {
	case "!!str", "!!timestamp":
		return n.Value, true
	}
	return "", false
}

// stringOr returns the string value at key, or def when the key is absent
// or not a string.
func stringOr(doc *yaml.Node, key, def string) string {
	if s, ok := scalarText(mapValue(doc, key)); ok {
		return s
	}
	return def
}

// optString returns the string value at key, or nil when absent or not a
// string. Absence is distinct from an empty string.
func optString(doc *yaml.Node, key string) *string {
	if s, ok := scalarText(mapValue(doc, key)); ok {
		return &s
	}
	return nil
}

// stringSlice returns the string elements of the sequence at key, in order,
// silently dropping non-string elements. Absent or non-sequence values
// yield nil.
func stringSlice(doc *yaml.Node, key string) []string {
	seq := sequenceValue(doc, key)
	if seq == nil {
		return nil
	}
	var out []string
	for _, item := range seq.Content {
		if s, ok := scalarText(item); ok {
			out = append(out, s)
		}
	}
	return out
}
