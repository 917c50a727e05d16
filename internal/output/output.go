// Package output renders a snapshot as a set of tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Guliveer/sysinfo/internal/models"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable renders one table per record.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", name)
	}
}

// Writer renders snapshots in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter creates a Writer for the given format. If out is nil, os.Stdout
// is used.
func NewWriter(format Format, out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// Write renders the snapshot.
func (w *Writer) Write(snap *models.Snapshot) error {
	switch w.format {
	case FormatJSON:
		return w.writeJSON(snap)
	case FormatYAML:
		return w.writeYAML(snap)
	case FormatTable:
		return w.writeTables(snap)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) writeJSON(snap *models.Snapshot) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) writeYAML(snap *models.Snapshot) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return enc.Close()
}
