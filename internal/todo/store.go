package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads and validates the data file at path.
// A missing or empty file yields an empty list.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}

	if result := ValidateBytes(data); !result.Valid {
		return nil, &IOError{Op: "validate", Path: path, Err: result.Err()}
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &IOError{Op: "parse", Path: path, Err: err}
	}
	if f.Tasks == nil {
		f.Tasks = []Task{}
	}
	return &f, nil
}

// Marshal encodes the file with 2-space indentation and a trailing newline.
func (f *File) Marshal() ([]byte, error) {
	if f.SchemaVersion == 0 {
		f.SchemaVersion = SchemaVersion
	}
	if f.Tasks == nil {
		f.Tasks = []Task{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes the file to path. The data is written to a temporary file in
// the same directory and renamed over path, so a failed save leaves the
// previous contents in place. An existing file keeps its permissions.
func (f *File) Save(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: fmt.Errorf("marshal: %w", err)}
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}
	if err := writeFileAtomic(path, data, perm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	committed = true
	return nil
}
