package report

import (
	"strings"
	"testing"

	"github.com/rollbook/rollbook/pkg/model"
)

func TestWriteText(t *testing.T) {
	mk := func(roll int, name string, marks ...int) *model.Student {
		s := &model.Student{Roll: roll, Name: name, Marks: marks}
		s.Recompute()
		return s
	}
	d := Build([]*model.Student{
		mk(1, "Alice Johnson Hammersmith III", 85, 90, 78),
		mk(2, "Bob", 40, 45, 50),
	})

	var sb strings.Builder
	if err := WriteText(&sb, d); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Student Management Report",
		"Roll", "Name", "Subjects", "Average", "Grade",
		"--- Summary ---",
		"Total students : 2",
		"Class average  : 64.67",
		"Topper         : Roll 1",
		"Lowest         : Roll 2 (Bob) Avg 45.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\ngot:\n%s", want, out)
		}
	}

	// Names are clipped to the 25-char column in the table.
	if strings.Contains(out, "Hammersmith III  ") {
		t.Errorf("name not truncated in table:\n%s", out)
	}
}
