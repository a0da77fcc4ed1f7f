// Package store owns the in-memory roster and its CRUD operations.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-kit/log"

	"github.com/rollbook/rollbook/pkg/model"
)

// DefaultMaxStudents is the default roster capacity.
const DefaultMaxStudents = 1000

var (
	// ErrNotFound is returned when no record has the requested roll.
	ErrNotFound = errors.New("no student with that roll")
	// ErrRosterFull is returned when the capacity limit is reached.
	ErrRosterFull = errors.New("roster is full")
)

// SaveFunc persists the full roster. It is invoked after every mutation.
type SaveFunc func(students []*model.Student) error

// Store holds the ordered collection of records. Insertion order is the
// default iteration order until Sort establishes a new canonical order.
//
// Thread-safe for concurrent read/write access.
type Store struct {
	mu          sync.RWMutex
	students    []*model.Student
	maxStudents int
	save        SaveFunc
	logger      log.Logger
}

// New creates a Store with the default capacity.
func New() *Store {
	return NewWithCapacity(DefaultMaxStudents)
}

// NewWithCapacity creates a Store holding at most maxStudents records.
func NewWithCapacity(maxStudents int) *Store {
	if maxStudents <= 0 {
		maxStudents = DefaultMaxStudents
	}
	return &Store{
		maxStudents: maxStudents,
		logger:      log.NewNopLogger(),
	}
}

// SetSaver installs the persistence hook invoked after every mutation.
func (s *Store) SetSaver(fn SaveFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save = fn
}

// SetLogger installs the diagnostic logger.
func (s *Store) SetLogger(l log.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l
}

// Load replaces the collection with records restored from disk. It does
// not trigger the save hook.
func (s *Store) Load(students []*model.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = students
}

// Count returns the number of live records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

// All returns the records in current store order.
func (s *Store) All() []*model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Student, len(s.students))
	copy(result, s.students)
	return result
}

// MaxRoll returns the highest roll among live records, 0 when empty.
func (s *Store) MaxRoll() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxRoll()
}

func (s *Store) maxRoll() int {
	max := 0
	for _, st := range s.students {
		if st.Roll > max {
			max = st.Roll
		}
	}
	return max
}

// Add validates and appends a new record. The roll number is assigned as
// max(existing)+1 and never reused while the record lives.
//
// When persistence fails the record is still committed in memory: the
// returned record is non-nil alongside the save error.
func (s *Store) Add(name string, marks []int) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = model.SanitizeName(strings.TrimSpace(name))
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}
	if err := model.ValidateMarks(marks); err != nil {
		return nil, err
	}
	if len(s.students) >= s.maxStudents {
		return nil, ErrRosterFull
	}

	st := &model.Student{
		Roll:  s.maxRoll() + 1,
		Name:  name,
		Marks: append([]int(nil), marks...),
	}
	st.Recompute()
	s.students = append(s.students, st)

	return st, s.persist("add")
}

// FindByRoll returns the record with the given roll.
func (s *Store) FindByRoll(roll int) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(roll); i >= 0 {
		return s.students[i], nil
	}
	return nil, ErrNotFound
}

func (s *Store) indexOf(roll int) int {
	for i, st := range s.students {
		if st.Roll == roll {
			return i
		}
	}
	return -1
}

// SearchName returns records whose name contains the query,
// case-insensitive, in current store order. The empty query matches all.
func (s *Store) SearchName(query string) []*model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var result []*model.Student
	for _, st := range s.students {
		if strings.Contains(strings.ToLower(st.Name), q) {
			result = append(result, st)
		}
	}
	return result
}

// Update replaces the record's name and/or marks. Both fields are
// validated before anything is mutated; derived fields are recomputed.
// A nil newName or nil newMarks leaves that field unchanged.
func (s *Store) Update(roll int, newName *string, newMarks []int) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(roll)
	if i < 0 {
		return nil, ErrNotFound
	}

	var name string
	if newName != nil {
		name = model.SanitizeName(strings.TrimSpace(*newName))
		if err := model.ValidateName(name); err != nil {
			return nil, err
		}
	}
	if newMarks != nil {
		if err := model.ValidateMarks(newMarks); err != nil {
			return nil, err
		}
	}

	st := s.students[i]
	if newName != nil {
		st.Name = name
	}
	if newMarks != nil {
		st.Marks = append([]int(nil), newMarks...)
		st.Recompute()
	}

	return st, s.persist("update")
}

// Delete removes the record with the given roll, preserving the relative
// order of the remaining records.
func (s *Store) Delete(roll int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(roll)
	if i < 0 {
		return ErrNotFound
	}
	s.students = append(s.students[:i], s.students[i+1:]...)

	return s.persist("delete")
}

// Sort reorders the whole collection; the new order becomes canonical
// and is persisted.
func (s *Store) Sort(key model.SortKey, order model.SortOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	model.SortStudents(s.students, key, order)
	return s.persist("sort")
}

// persist runs the save hook. A failed save does not roll back the
// mutation; the store and file diverge until the next successful save.
func (s *Store) persist(op string) error {
	if s.save == nil {
		return nil
	}
	if err := s.save(s.students); err != nil {
		s.logger.Log("msg", "roster save failed", "op", op, "err", err)
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}
