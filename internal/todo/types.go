package todo

import (
	"iter"
)

// SchemaVersion is the only data file version this package reads and writes.
const SchemaVersion = 1

// Task is a single checklist entry.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// File is the persisted checklist document.
type File struct {
	SchemaVersion int    `json:"schema_version"`
	Tasks         []Task `json:"tasks"`
}

// New returns an empty checklist.
func New() *File {
	return &File{
		SchemaVersion: SchemaVersion,
		Tasks:         []Task{},
	}
}

// Len returns the number of tasks.
func (f *File) Len() int {
	return len(f.Tasks)
}

// All returns the tasks paired with their 1-based positions.
// The sequence reads the list when it is ranged over, so ranging again after
// a mutation reflects the new state.
func (f *File) All() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range f.Tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// Counts returns the number of open and done tasks.
func (f *File) Counts() (open, done int) {
	for _, t := range f.Tasks {
		if t.Done {
			done++
		} else {
			open++
		}
	}
	return open, done
}

// Get returns the task at a 1-based position.
func (f *File) Get(pos int) (Task, error) {
	if err := f.checkPosition(pos); err != nil {
		return Task{}, err
	}
	return f.Tasks[pos-1], nil
}
