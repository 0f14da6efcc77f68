package todo

import (
	"fmt"
	"path/filepath"
	"testing"
)

func largeFile(n int) *File {
	f := New()
	for i := 1; i <= n; i++ {
		f.Tasks = append(f.Tasks, Task{Text: fmt.Sprintf("Task %d", i), Done: i%3 == 0})
	}
	return f
}

// BenchmarkLoad benchmarks data file loading, validation and parsing.
func BenchmarkLoad(b *testing.B) {
	path := filepath.Join(b.TempDir(), "todo.json")
	if err := largeFile(3).Save(path); err != nil {
		b.Fatalf("Failed to create test file: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(path); err != nil {
			b.Fatalf("Load failed: %v", err)
		}
	}
}

// BenchmarkLoadLarge benchmarks loading a list with 1000 tasks.
func BenchmarkLoadLarge(b *testing.B) {
	path := filepath.Join(b.TempDir(), "todo.json")
	if err := largeFile(1000).Save(path); err != nil {
		b.Fatalf("Failed to create test file: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(path); err != nil {
			b.Fatalf("Load failed: %v", err)
		}
	}
}

func BenchmarkSave(b *testing.B) {
	path := filepath.Join(b.TempDir(), "todo.json")
	f := largeFile(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.Save(path); err != nil {
			b.Fatalf("Save failed: %v", err)
		}
	}
}

func BenchmarkSort(b *testing.B) {
	base := largeFile(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := &File{SchemaVersion: SchemaVersion, Tasks: append([]Task(nil), base.Tasks...)}
		f.Sort()
	}
}

func BenchmarkRemoveChecked(b *testing.B) {
	base := largeFile(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := &File{SchemaVersion: SchemaVersion, Tasks: append([]Task(nil), base.Tasks...)}
		if err := f.Remove(Checked()); err != nil {
			b.Fatal(err)
		}
	}
}
