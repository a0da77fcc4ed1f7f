// Package stats aggregates roster-wide statistics.
package stats

import (
	"fmt"
	"io"

	"github.com/rollbook/rollbook/pkg/model"
)

// Stats is the aggregate view of a roster.
type Stats struct {
	Total        int
	ClassAverage float64
	Topper       *model.Student
	Lowest       *model.Student
	GradeCounts  map[model.Grade]int
}

// Compute aggregates the records in their current order. The slice must
// be non-empty. Ties on average go to the earliest record: only a
// strictly greater (or lesser) average displaces the current pick.
func Compute(students []*model.Student) *Stats {
	st := &Stats{
		Total:       len(students),
		GradeCounts: make(map[model.Grade]int, len(model.Grades)),
	}
	for _, g := range model.Grades {
		st.GradeCounts[g] = 0
	}

	top, low := students[0], students[0]
	sum := 0.0
	for _, s := range students {
		sum += s.Average
		if s.Average > top.Average {
			top = s
		}
		if s.Average < low.Average {
			low = s
		}
		if _, ok := st.GradeCounts[s.Grade]; ok {
			st.GradeCounts[s.Grade]++
		} else {
			// Unrecognized grades loaded from disk count as F.
			st.GradeCounts[model.GradeF]++
		}
	}

	st.ClassAverage = sum / float64(len(students))
	st.Topper = top
	st.Lowest = low
	return st
}

// Print writes the statistics block to the writer.
func Print(w io.Writer, st *Stats) {
	fmt.Fprintln(w, "--- Statistics ---")
	fmt.Fprintf(w, "Total students : %d\n", st.Total)
	fmt.Fprintf(w, "Class average  : %.2f\n", st.ClassAverage)
	fmt.Fprintf(w, "Topper         : Roll %d (%s) Avg %.2f\n",
		st.Topper.Roll, st.Topper.Name, st.Topper.Average)
	fmt.Fprintf(w, "Lowest         : Roll %d (%s) Avg %.2f\n",
		st.Lowest.Roll, st.Lowest.Name, st.Lowest.Average)
	fmt.Fprintf(w, "Grades         : A=%d, B=%d, C=%d, D=%d, F=%d\n",
		st.GradeCounts[model.GradeA],
		st.GradeCounts[model.GradeB],
		st.GradeCounts[model.GradeC],
		st.GradeCounts[model.GradeD],
		st.GradeCounts[model.GradeF])
}
