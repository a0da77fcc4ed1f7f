// Package query runs ad-hoc read-only SQL over a roster snapshot using
// an in-memory SQLite database.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rollbook/rollbook/pkg/model"
)

// Engine holds the SQLite connection with the loaded roster.
type Engine struct {
	db *sql.DB
}

// NewEngine creates the students table and loads the given records.
func NewEngine(students []*model.Student) (*Engine, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// An in-memory database lives per connection; keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	schema := `
CREATE TABLE students (
	roll          INTEGER PRIMARY KEY,
	name          TEXT NOT NULL,
	subject_count INTEGER NOT NULL,
	marks         TEXT NOT NULL,
	average       REAL NOT NULL,
	grade         TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	e := &Engine{db: db}
	if err := e.load(students); err != nil {
		db.Close()
		return nil, err
	}
	return e, nil
}

func (e *Engine) load(students []*model.Student) error {
	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO students
		(roll, name, subject_count, marks, average, grade)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range students {
		marks := make([]string, len(s.Marks))
		for i, m := range s.Marks {
			marks[i] = strconv.Itoa(m)
		}
		if _, err := stmt.Exec(s.Roll, s.Name, len(s.Marks),
			strings.Join(marks, ";"), s.Average, string(s.Grade)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert roll %d: %w", s.Roll, err)
		}
	}
	return tx.Commit()
}

// Close releases the database connection.
func (e *Engine) Close() error {
	return e.db.Close()
}

// Result holds column names and stringified rows.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Query executes a single SELECT statement against the roster.
func (e *Engine) Query(ctx context.Context, sqlText string) (*Result, error) {
	trimmed := strings.TrimSpace(sqlText)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return nil, fmt.Errorf("only SELECT statements are allowed")
	}

	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	res := &Result{Columns: cols}
	vals := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = formatValue(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return res, nil
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	default:
		return fmt.Sprint(x)
	}
}

// WriteTable renders the result as a fixed-width table.
func (r *Result) WriteTable(w io.Writer) {
	widths := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		widths[i] = len(c)
	}
	for _, row := range r.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, c := range r.Columns {
		fmt.Fprintf(w, "%-*s  ", widths[i], c)
	}
	fmt.Fprintln(w)
	for i := range r.Columns {
		fmt.Fprintf(w, "%s  ", strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(w)
	for _, row := range r.Rows {
		for i, cell := range row {
			fmt.Fprintf(w, "%-*s  ", widths[i], cell)
		}
		fmt.Fprintln(w)
	}
}
