// Package report renders the human-readable roster report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/rollbook/rollbook/pkg/model"
	"github.com/rollbook/rollbook/stats"
)

// Data holds everything needed to render a report.
type Data struct {
	GeneratedAt time.Time
	Students    []*model.Student
	Summary     *stats.Stats
}

// Build assembles report data from the roster in its current order.
// The slice must be non-empty.
func Build(students []*model.Student) *Data {
	return &Data{
		GeneratedAt: time.Now(),
		Students:    students,
		Summary:     stats.Compute(students),
	}
}

// WriteText renders the fixed-width report. The output is write-only:
// nothing parses it back.
func WriteText(w io.Writer, d *Data) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "==============================================")
	fmt.Fprintln(bw, "          Student Management Report           ")
	fmt.Fprintln(bw, "==============================================")
	fmt.Fprintf(bw, "Generated: %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(bw, "%-6s  %-25s  %-8s  %-8s  %-5s\n",
		"Roll", "Name", "Subjects", "Average", "Grade")
	fmt.Fprintln(bw, "------  -------------------------  --------  --------  -----")
	for _, s := range d.Students {
		fmt.Fprintf(bw, "%-6d  %-25.25s  %-8d  %-8.2f  %-5s\n",
			s.Roll, s.Name, len(s.Marks), s.Average, s.Grade)
	}

	sum := d.Summary
	fmt.Fprintln(bw, "\n--- Summary ---")
	fmt.Fprintf(bw, "Total students : %d\n", sum.Total)
	fmt.Fprintf(bw, "Class average  : %.2f\n", sum.ClassAverage)
	fmt.Fprintf(bw, "Topper         : Roll %d (%s) Avg %.2f\n",
		sum.Topper.Roll, sum.Topper.Name, sum.Topper.Average)
	fmt.Fprintf(bw, "Lowest         : Roll %d (%s) Avg %.2f\n",
		sum.Lowest.Roll, sum.Lowest.Name, sum.Lowest.Average)

	return bw.Flush()
}
