// Package app wires the roster store to its on-disk files.
package app

import (
	"fmt"
	"os"

	"github.com/go-kit/log"

	"github.com/rollbook/rollbook/pkg/codec"
	"github.com/rollbook/rollbook/pkg/model"
	"github.com/rollbook/rollbook/pkg/store"
)

const (
	// DefaultDataFile is where the roster is persisted.
	DefaultDataFile = "students.csv"
	// DefaultReportFile is where report export writes.
	DefaultReportFile = "report.txt"
)

// NewLogger returns the logfmt diagnostic logger shared by all commands.
// Diagnostics go to stderr so they never mix with command output.
func NewLogger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// OpenRoster loads the data file into a store wired to save back to it
// after every mutation. Skipped malformed lines are reported through the
// logger; the load itself stays best-effort.
func OpenRoster(path string, logger log.Logger) (*store.Store, error) {
	res, err := codec.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if res.Skipped > 0 {
		logger.Log("msg", "skipped malformed roster lines", "file", path, "skipped", res.Skipped)
	}

	s := store.New()
	s.Load(res.Students)
	s.SetLogger(logger)
	s.SetSaver(func(students []*model.Student) error {
		return codec.SaveFile(path, students)
	})
	return s, nil
}
