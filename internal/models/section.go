package models

import (
	"errors"
	"fmt"
	"strings"
)

// Section names one independently requestable category of metrics.
type Section string

const (
	SectionOS      Section = "os"
	SectionCPU     Section = "cpu"
	SectionMemory  Section = "memory"
	SectionDisk    Section = "disk"
	SectionNetwork Section = "network"
)

// SectionAll is the request keyword that expands to every section.
const SectionAll = "all"

// ErrUnknownSection is returned when a section name is not recognised.
var ErrUnknownSection = errors.New("unknown section")

// AllSections returns every section in canonical order.
func AllSections() []Section {
	return []Section{SectionOS, SectionCPU, SectionMemory, SectionDisk, SectionNetwork}
}

// Title returns the heading used when rendering the section.
func (s Section) Title() string {
	switch s {
	case SectionOS:
		return "Operating System"
	case SectionCPU:
		return "CPU"
	case SectionMemory:
		return "Memory"
	case SectionDisk:
		return "Disk"
	case SectionNetwork:
		return "Network"
	default:
		return string(s)
	}
}

// ParseSection converts a name such as "cpu" into a Section.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllSections() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// ExpandSections resolves requested names into sections. "all" expands to
// every section; duplicates are dropped and first-seen order is kept.
func ExpandSections(names []string) ([]Section, error) {
	seen := make(map[Section]bool)
	var out []Section
	add := func(s Section) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), SectionAll) {
			for _, s := range AllSections() {
				add(s)
			}
			continue
		}
		s, err := ParseSection(name)
		if err != nil {
			return nil, err
		}
		add(s)
	}
	return out, nil
}
