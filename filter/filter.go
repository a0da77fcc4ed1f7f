// Package filter compiles record filter expressions using expr-lang/expr.
//
// Expressions see one record at a time through the fields below:
//
//	roll == 3
//	average >= 75 && grade == "B"
//	subjects > 2
//	name matches "(?i)john"
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/rollbook/rollbook/pkg/model"
)

// Env is the expression environment for one record.
type Env struct {
	Roll     int     `expr:"roll"`
	Name     string  `expr:"name"`
	Subjects int     `expr:"subjects"`
	Marks    []int   `expr:"marks"`
	Average  float64 `expr:"average"`
	Grade    string  `expr:"grade"`
}

// Compile compiles a filter expression into a predicate over records.
// The empty expression matches everything. A record for which the
// expression errors at run time does not match.
func Compile(src string) (func(*model.Student) bool, error) {
	if strings.TrimSpace(src) == "" {
		return func(*model.Student) bool { return true }, nil
	}

	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}

	return func(s *model.Student) bool {
		result, err := expr.Run(program, toEnv(s))
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		return ok && b
	}, nil
}

// Apply returns the records matching the predicate, in input order.
func Apply(students []*model.Student, match func(*model.Student) bool) []*model.Student {
	var result []*model.Student
	for _, s := range students {
		if match(s) {
			result = append(result, s)
		}
	}
	return result
}

func toEnv(s *model.Student) Env {
	return Env{
		Roll:     s.Roll,
		Name:     s.Name,
		Subjects: len(s.Marks),
		Marks:    s.Marks,
		Average:  s.Average,
		Grade:    string(s.Grade),
	}
}
