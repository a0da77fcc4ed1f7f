// Package export writes roster listings in various output formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rollbook/rollbook/pkg/codec"
	"github.com/rollbook/rollbook/pkg/model"
)

// Format is the output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatCSV:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format: %s (use: text, json, csv)", s)
}

// Exporter writes records one at a time in the configured format.
type Exporter struct {
	format Format
	writer io.Writer
	first  bool // track first record for JSON array framing
}

// New creates an exporter writing to w.
func New(w io.Writer, format Format) *Exporter {
	return &Exporter{
		format: format,
		writer: w,
		first:  true,
	}
}

// Start writes any header the format needs.
func (e *Exporter) Start() error {
	switch e.format {
	case FormatJSON:
		_, err := fmt.Fprintln(e.writer, "[")
		return err
	case FormatCSV:
		_, err := fmt.Fprintln(e.writer, codec.Header)
		return err
	default:
		return e.writeTableHeader()
	}
}

// Finish writes any footer the format needs.
func (e *Exporter) Finish() error {
	if e.format == FormatJSON {
		if !e.first {
			if _, err := fmt.Fprintln(e.writer); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(e.writer, "]")
		return err
	}
	return nil
}

// Export writes a single record.
func (e *Exporter) Export(s *model.Student) error {
	switch e.format {
	case FormatJSON:
		return e.exportJSON(s)
	case FormatCSV:
		_, err := fmt.Fprintln(e.writer, codec.EncodeLine(s))
		return err
	default:
		return e.exportText(s)
	}
}

func (e *Exporter) writeTableHeader() error {
	if _, err := fmt.Fprintf(e.writer, "%-6s  %-25s  %-8s  %-8s  %-5s\n",
		"Roll", "Name", "Subjects", "Average", "Grade"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.writer, "------  -------------------------  --------  --------  -----")
	return err
}

// exportText writes the fixed-width table row; names are truncated to
// the 25-character column.
func (e *Exporter) exportText(s *model.Student) error {
	_, err := fmt.Fprintf(e.writer, "%-6d  %-25.25s  %-8d  %-8.2f  %-5s\n",
		s.Roll, s.Name, len(s.Marks), s.Average, s.Grade)
	return err
}

func (e *Exporter) exportJSON(s *model.Student) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if e.first {
		e.first = false
		_, err = fmt.Fprintf(e.writer, "  %s", data)
	} else {
		_, err = fmt.Fprintf(e.writer, ",\n  %s", data)
	}
	return err
}
