// Package model defines the student record, its derived fields, and the
// sort orders the roster supports.
package model

import (
	"errors"
	"sort"
	"strings"
)

const (
	// MaxSubjects is the maximum number of marks a record can hold.
	MaxSubjects = 10
	// MaxNameLen bounds the stored name length; longer names are truncated.
	MaxNameLen = 100
	// MinMark and MaxMark delimit the valid range for a single mark.
	MinMark = 0
	MaxMark = 100
)

// Validation errors, checked with errors.Is by callers.
var (
	ErrEmptyName = errors.New("name cannot be empty")
	ErrMarkCount = errors.New("subject count out of range")
	ErrMarkValue = errors.New("mark out of range")
)

// Grade is the letter category derived from a record's average.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists all grades in display order.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// Student is a single roster record. Average and Grade are derived from
// Marks and refreshed via Recompute whenever Marks change.
type Student struct {
	Roll    int     `json:"roll"`
	Name    string  `json:"name"`
	Marks   []int   `json:"marks"`
	Average float64 `json:"average"`
	Grade   Grade   `json:"grade"`
}

// DeriveGrade maps an average to its letter grade. Thresholds are
// inclusive at the lower bound, checked top-down.
func DeriveGrade(avg float64) Grade {
	switch {
	case avg >= 90.0:
		return GradeA
	case avg >= 75.0:
		return GradeB
	case avg >= 60.0:
		return GradeC
	case avg >= 50.0:
		return GradeD
	default:
		return GradeF
	}
}

// Recompute refreshes Average and Grade from the current Marks.
func (s *Student) Recompute() {
	sum := 0
	for _, m := range s.Marks {
		sum += m
	}
	s.Average = float64(sum) / float64(len(s.Marks))
	s.Grade = DeriveGrade(s.Average)
}

// SanitizeName replaces commas with spaces (the persistence format is
// comma-delimited) and truncates to MaxNameLen.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, ",", " ")
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}

// ValidateName rejects empty names.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateMarks checks the mark count and each mark's range.
func ValidateMarks(marks []int) error {
	if len(marks) < 1 || len(marks) > MaxSubjects {
		return ErrMarkCount
	}
	for _, m := range marks {
		if m < MinMark || m > MaxMark {
			return ErrMarkValue
		}
	}
	return nil
}

// SortKey selects the field records are ordered by.
type SortKey int

const (
	SortByRoll SortKey = iota
	SortByName
	SortByAverage
)

// String returns the key's command-line spelling.
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortByAverage:
		return "average"
	default:
		return "roll"
	}
}

// ParseSortKey parses a command-line sort key name.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(s) {
	case "roll":
		return SortByRoll, nil
	case "name":
		return SortByName, nil
	case "average", "avg":
		return SortByAverage, nil
	}
	return 0, errors.New("unknown sort key: " + s + " (use: roll, name, average)")
}

// SortOrder selects ascending or descending order.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Less reports whether a orders before b under the key, ascending.
// Name comparison is case-insensitive.
func (k SortKey) Less(a, b *Student) bool {
	switch k {
	case SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case SortByAverage:
		return a.Average < b.Average
	default:
		return a.Roll < b.Roll
	}
}

// SortStudents orders records in place. The sort is stable, so records
// with equal keys keep their prior relative order; descending is the
// exact inverse of ascending.
func SortStudents(students []*Student, key SortKey, order SortOrder) {
	sort.SliceStable(students, func(i, j int) bool {
		if order == Descending {
			return key.Less(students[j], students[i])
		}
		return key.Less(students[i], students[j])
	})
}
