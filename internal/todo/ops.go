package todo

import (
	"fmt"
	"slices"
	"strings"
)

// Add appends one open task per text, in the order given.
func (f *File) Add(texts ...string) error {
	if len(texts) == 0 {
		return ErrEmptyArgument
	}
	for _, text := range texts {
		f.Tasks = append(f.Tasks, Task{Text: text})
	}
	return nil
}

// Remove deletes the selected tasks.
// KeywordAll clears the list, KeywordChecked removes every done task, and a
// position selector removes the tasks at those positions. Duplicate
// positions remove a task once.
func (f *File) Remove(sel Selector) error {
	if sel.IsKeyword() {
		switch sel.Keyword {
		case KeywordAll:
			f.Tasks = []Task{}
		case KeywordChecked:
			f.Tasks = slices.DeleteFunc(f.Tasks, func(t Task) bool { return t.Done })
		default:
			return &InvalidSelectorError{Arg: string(sel.Keyword), Reason: "remove accepts positions, all, checked or completed"}
		}
		return nil
	}

	marked, err := f.markPositions(sel.Positions)
	if err != nil {
		return err
	}
	kept := make([]Task, 0, len(f.Tasks))
	for i, t := range f.Tasks {
		if !marked[i] {
			kept = append(kept, t)
		}
	}
	f.Tasks = kept
	return nil
}

// Clear removes every task.
func (f *File) Clear() {
	f.Tasks = []Task{}
}

// Check marks the selected tasks done. Checking a done task is not an error.
func (f *File) Check(sel Selector) error {
	return f.setDone(sel, true)
}

// Uncheck marks the selected tasks open.
func (f *File) Uncheck(sel Selector) error {
	return f.setDone(sel, false)
}

func (f *File) setDone(sel Selector, done bool) error {
	if sel.IsKeyword() {
		if sel.Keyword != KeywordAll {
			return &InvalidSelectorError{Arg: string(sel.Keyword), Reason: "accepts positions or all"}
		}
		for i := range f.Tasks {
			f.Tasks[i].Done = done
		}
		return nil
	}

	marked, err := f.markPositions(sel.Positions)
	if err != nil {
		return err
	}
	for i := range marked {
		f.Tasks[i].Done = done
	}
	return nil
}

// Sort moves done tasks after open tasks, keeping the relative order within
// each group.
func (f *File) Sort() {
	slices.SortStableFunc(f.Tasks, func(a, b Task) int {
		switch {
		case a.Done == b.Done:
			return 0
		case !a.Done:
			return -1
		default:
			return 1
		}
	})
}

// Edit replaces the text of the task at pos.
func (f *File) Edit(pos int, text string) error {
	if err := f.checkPosition(pos); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("edit position %d: %w", pos, ErrEmptyArgument)
	}
	f.Tasks[pos-1].Text = text
	return nil
}

// markPositions validates every position and returns the set of 0-based
// indexes they address. Nothing is returned unless all positions are valid.
func (f *File) markPositions(positions []int) (map[int]bool, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyArgument
	}
	marked := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if err := f.checkPosition(pos); err != nil {
			return nil, err
		}
		marked[pos-1] = true
	}
	return marked, nil
}

func (f *File) checkPosition(pos int) error {
	if pos < 1 || pos > len(f.Tasks) {
		return &OutOfRangeError{Position: pos, Len: len(f.Tasks)}
	}
	return nil
}
