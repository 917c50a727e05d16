package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is the section-keyed result of one collection run. Sections keep
// the order in which they were added, and both JSON and YAML encodings emit
// them in that order.
type Snapshot struct {
	entries []entry
}

type entry struct {
	section Section
	data    any
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Set stores data for a section. A section that is already present keeps its
// position and has its data replaced.
func (s *Snapshot) Set(section Section, data any) {
	for i := range s.entries {
		if s.entries[i].section == section {
			s.entries[i].data = data
			return
		}
	}
	s.entries = append(s.entries, entry{section: section, data: data})
}

// Get returns the data stored for a section.
func (s *Snapshot) Get(section Section) (any, bool) {
	for _, e := range s.entries {
		if e.section == section {
			return e.data, true
		}
	}
	return nil, false
}

// Sections returns the stored sections in insertion order.
func (s *Snapshot) Sections() []Section {
	out := make([]Section, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.section)
	}
	return out
}

// Len returns the number of sections in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// MarshalJSON encodes the snapshot as an object whose keys follow insertion
// order.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.section))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.data)
		if err != nil {
			return nil, fmt.Errorf("encoding section %s: %w", e.section, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML builds a mapping node from the JSON form so that YAML output
// has the same shape and key order as JSON output.
func (s *Snapshot) MarshalYAML() (interface{}, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("converting snapshot to YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	root := doc.Content[0]
	blockStyle(root)
	return root, nil
}

// blockStyle clears the flow and quoting styles the YAML parser records for
// JSON input, letting the encoder pick its usual block layout.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
