// Package codec reads and writes the roster's delimited on-disk format.
//
// One line per record:
//
//	roll,name,subjectCount,mark1;mark2;...;markN,average,grade
//
// An optional header line beginning "roll," is written on save and
// skipped on load when present.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rollbook/rollbook/pkg/model"
)

// Header is the first line of a saved roster file.
const Header = "roll,name,subjectCount,marks,average,grade"

// LoadResult is the outcome of a best-effort load: the records that
// parsed, plus a count of malformed lines that were skipped.
type LoadResult struct {
	Students []*model.Student
	Skipped  int
}

// EncodeLine renders a single record in the persistence format.
func EncodeLine(s *model.Student) string {
	marks := make([]string, len(s.Marks))
	for i, m := range s.Marks {
		marks[i] = strconv.Itoa(m)
	}
	return fmt.Sprintf("%d,%s,%d,%s,%.2f,%s",
		s.Roll, s.Name, len(s.Marks), strings.Join(marks, ";"), s.Average, s.Grade)
}

// Encode writes the header and one line per record.
func Encode(w io.Writer, students []*model.Student) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, s := range students {
		fmt.Fprintln(bw, EncodeLine(s))
	}
	return bw.Flush()
}

// Decode parses the persistence format. Malformed lines are skipped and
// counted rather than failing the load; average and grade are trusted as
// written, not reverified against the marks.
func Decode(r io.Reader) (*LoadResult, error) {
	res := &LoadResult{}
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first {
			first = false
			if strings.HasPrefix(line, "roll,") {
				continue
			}
		}
		if line == "" {
			continue
		}
		s, ok := parseLine(line)
		if !ok {
			res.Skipped++
			continue
		}
		res.Students = append(res.Students, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return res, nil
}

func parseLine(line string) (*model.Student, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return nil, false
	}

	roll, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, false
	}
	name := fields[1]

	count, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil || count < 1 || count > model.MaxSubjects {
		return nil, false
	}

	tokens := strings.Split(fields[3], ";")
	if len(tokens) != count {
		return nil, false
	}
	marks := make([]int, count)
	for i, tok := range tokens {
		m, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, false
		}
		marks[i] = m
	}

	avg, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return nil, false
	}

	grade := strings.TrimSpace(fields[5])
	if grade == "" {
		return nil, false
	}

	return &model.Student{
		Roll:    roll,
		Name:    name,
		Marks:   marks,
		Average: avg,
		Grade:   model.Grade(grade[:1]),
	}, true
}

// LoadFile reads the roster from path. A missing file yields an empty
// result, not an error.
func LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &LoadResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// SaveFile rewrites path with the full roster.
func SaveFile(path string, students []*model.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create roster file: %w", err)
	}
	if err := Encode(f, students); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
