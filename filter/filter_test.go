package filter

import (
	"testing"

	"github.com/rollbook/rollbook/pkg/model"
)

func roster() []*model.Student {
	mk := func(roll int, name string, marks ...int) *model.Student {
		s := &model.Student{Roll: roll, Name: name, Marks: marks}
		s.Recompute()
		return s
	}
	return []*model.Student{
		mk(1, "Alice Johnson", 85, 90, 78),
		mk(2, "Bob", 40, 45, 50),
		mk(3, "Carol", 60, 70),
	}
}

func TestCompileEmptyMatchesAll(t *testing.T) {
	match, err := Compile("   ")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := len(Apply(roster(), match)); got != 3 {
		t.Errorf("matched %d records, want 3", got)
	}
}

func TestFilterByAverage(t *testing.T) {
	match, err := Compile("average >= 60")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	hits := Apply(roster(), match)
	if len(hits) != 2 {
		t.Fatalf("matched %d records, want 2", len(hits))
	}
	if hits[0].Roll != 1 || hits[1].Roll != 3 {
		t.Errorf("unexpected matches: %v, %v", hits[0].Roll, hits[1].Roll)
	}
}

func TestFilterByGrade(t *testing.T) {
	match, err := Compile(`grade == "F"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	hits := Apply(roster(), match)
	if len(hits) != 1 || hits[0].Name != "Bob" {
		t.Errorf("expected only Bob, got %d matches", len(hits))
	}
}

func TestFilterByNameRegex(t *testing.T) {
	match, err := Compile(`name matches "(?i)john"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	hits := Apply(roster(), match)
	if len(hits) != 1 || hits[0].Roll != 1 {
		t.Errorf("expected Alice Johnson, got %d matches", len(hits))
	}
}

func TestFilterCombined(t *testing.T) {
	match, err := Compile("subjects == 3 && average < 50")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	hits := Apply(roster(), match)
	if len(hits) != 1 || hits[0].Name != "Bob" {
		t.Errorf("expected Bob, got %d matches", len(hits))
	}
}

func TestCompileBadExpression(t *testing.T) {
	if _, err := Compile("average >>> 3"); err == nil {
		t.Error("expected compile error")
	}
	if _, err := Compile("average + 1"); err == nil {
		t.Error("expected error for non-boolean expression")
	}
}
