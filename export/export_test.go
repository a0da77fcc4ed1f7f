package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rollbook/rollbook/pkg/model"
)

func sample() []*model.Student {
	a := &model.Student{Roll: 1, Name: "Alice Johnson Hammersmith III", Marks: []int{85, 90, 78}}
	a.Recompute()
	b := &model.Student{Roll: 2, Name: "Bob", Marks: []int{40, 45, 50}}
	b.Recompute()
	return []*model.Student{a, b}
}

func runExport(t *testing.T, format Format) string {
	t.Helper()
	var sb strings.Builder
	e := New(&sb, format)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, s := range sample() {
		if err := e.Export(s); err != nil {
			t.Fatalf("Export: %v", err)
		}
	}
	if err := e.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return sb.String()
}

func TestExportText(t *testing.T) {
	out := runExport(t, FormatText)

	if !strings.Contains(out, "Roll") || !strings.Contains(out, "Grade") {
		t.Errorf("missing table header:\n%s", out)
	}
	// Long names are clipped to the 25-char column.
	if strings.Contains(out, "Hammersmith III") {
		t.Errorf("name not truncated:\n%s", out)
	}
	if !strings.Contains(out, "Alice Johnson Hammersmit") {
		t.Errorf("truncated name missing:\n%s", out)
	}
	if !strings.Contains(out, "84.33") || !strings.Contains(out, "45.00") {
		t.Errorf("averages missing:\n%s", out)
	}
}

func TestExportJSON(t *testing.T) {
	out := runExport(t, FormatJSON)

	var records []model.Student
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Roll != 1 || records[1].Grade != model.GradeF {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestExportCSV(t *testing.T) {
	out := runExport(t, FormatCSV)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records", len(lines))
	}
	if !strings.HasPrefix(lines[0], "roll,") {
		t.Errorf("missing header: %q", lines[0])
	}
	if lines[2] != "2,Bob,3,40;45;50,45.00,F" {
		t.Errorf("unexpected record line: %q", lines[2])
	}
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"text", "json", "csv"} {
		if _, err := ParseFormat(ok); err != nil {
			t.Errorf("ParseFormat(%q): %v", ok, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
