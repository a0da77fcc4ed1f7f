package model

import (
	"errors"
	"math"
	"testing"
)

func TestDeriveGradeBoundaries(t *testing.T) {
	cases := []struct {
		avg  float64
		want Grade
	}{
		{100.0, GradeA},
		{90.0, GradeA},
		{89.99, GradeB},
		{75.0, GradeB},
		{74.99, GradeC},
		{60.0, GradeC},
		{59.99, GradeD},
		{50.0, GradeD},
		{49.99, GradeF},
		{0.0, GradeF},
	}
	for _, c := range cases {
		if got := DeriveGrade(c.avg); got != c.want {
			t.Errorf("DeriveGrade(%.2f) = %s, want %s", c.avg, got, c.want)
		}
	}
}

func TestRecompute(t *testing.T) {
	s := &Student{Roll: 1, Name: "Alice", Marks: []int{85, 90, 78}}
	s.Recompute()

	want := 253.0 / 3.0
	if math.Abs(s.Average-want) > 1e-9 {
		t.Errorf("Average = %v, want %v", s.Average, want)
	}
	if s.Grade != GradeB {
		t.Errorf("Grade = %s, want B", s.Grade)
	}

	s.Marks = []int{40, 45, 50}
	s.Recompute()
	if s.Average != 45.0 {
		t.Errorf("Average = %v, want 45", s.Average)
	}
	if s.Grade != GradeF {
		t.Errorf("Grade = %s, want F", s.Grade)
	}
}

func TestSanitizeName(t *testing.T) {
	if got := SanitizeName("Doe, John"); got != "Doe  John" {
		t.Errorf("SanitizeName = %q", got)
	}

	long := make([]byte, MaxNameLen+20)
	for i := range long {
		long[i] = 'x'
	}
	if got := SanitizeName(string(long)); len(got) != MaxNameLen {
		t.Errorf("truncated length = %d, want %d", len(got), MaxNameLen)
	}
}

func TestValidateMarks(t *testing.T) {
	if err := ValidateMarks([]int{0, 100, 50}); err != nil {
		t.Errorf("valid marks rejected: %v", err)
	}
	if err := ValidateMarks(nil); !errors.Is(err, ErrMarkCount) {
		t.Errorf("empty marks: got %v, want ErrMarkCount", err)
	}
	if err := ValidateMarks(make([]int, MaxSubjects+1)); !errors.Is(err, ErrMarkCount) {
		t.Errorf("too many marks: got %v, want ErrMarkCount", err)
	}
	if err := ValidateMarks([]int{101}); !errors.Is(err, ErrMarkValue) {
		t.Errorf("mark 101: got %v, want ErrMarkValue", err)
	}
	if err := ValidateMarks([]int{-1}); !errors.Is(err, ErrMarkValue) {
		t.Errorf("mark -1: got %v, want ErrMarkValue", err)
	}
}

func TestSortStudentsInverse(t *testing.T) {
	mk := func() []*Student {
		return []*Student{
			{Roll: 2, Name: "bob", Average: 45.0},
			{Roll: 1, Name: "Alice", Average: 84.33},
			{Roll: 3, Name: "carol", Average: 70.0},
		}
	}

	for _, key := range []SortKey{SortByRoll, SortByName, SortByAverage} {
		asc := mk()
		SortStudents(asc, key, Ascending)
		desc := mk()
		SortStudents(desc, key, Descending)

		for i := range asc {
			if asc[i].Roll != desc[len(desc)-1-i].Roll {
				t.Errorf("key %s: descending is not the reverse of ascending", key)
				break
			}
		}
	}
}

func TestSortStudentsStableTies(t *testing.T) {
	students := []*Student{
		{Roll: 1, Name: "first", Average: 50.0},
		{Roll: 2, Name: "second", Average: 50.0},
		{Roll: 3, Name: "third", Average: 50.0},
	}
	SortStudents(students, SortByAverage, Ascending)

	for i, want := range []int{1, 2, 3} {
		if students[i].Roll != want {
			t.Errorf("position %d: roll %d, want %d (ties must keep prior order)", i, students[i].Roll, want)
		}
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	students := []*Student{
		{Roll: 1, Name: "bob"},
		{Roll: 2, Name: "Alice"},
	}
	SortStudents(students, SortByName, Ascending)
	if students[0].Name != "Alice" {
		t.Errorf("expected Alice first, got %s", students[0].Name)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, c := range []struct {
		in   string
		want SortKey
	}{
		{"roll", SortByRoll},
		{"Name", SortByName},
		{"avg", SortByAverage},
		{"average", SortByAverage},
	} {
		got, err := ParseSortKey(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseSortKey(%q) = %v, %v", c.in, got, err)
		}
	}
	if _, err := ParseSortKey("marks"); err == nil {
		t.Error("expected error for unknown key")
	}
}
