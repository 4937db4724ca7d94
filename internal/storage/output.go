package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"podblog/internal/content"
)

// ErrFileNotFound is returned when a requested output does not exist.
var ErrFileNotFound = errors.New("file not found")

// Output persists generated artifacts under a single directory and
// retrieves them by filename.
type Output struct {
	dir string
}

// NewOutput creates the output store, making the directory if needed.
func NewOutput(dir string) (*Output, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Output{dir: dir}, nil
}

// Save writes content as <name>.<format> and returns the filename.
func (o *Output) Save(text, name string, format content.Format) (string, error) {
	filename := fmt.Sprintf("%s.%s", name, format)
	path := filepath.Join(o.dir, filename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", filename, err)
	}
	log.Printf("[Storage] Saved %s", filename)
	return filename, nil
}

// Read returns the raw bytes of a previously saved file.
func (o *Output) Read(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(o.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
		}
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return data, nil
}

// Path resolves a filename to its absolute location, failing for files
// that do not exist or that escape the output directory.
func (o *Output) Path(filename string) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	path := filepath.Join(o.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	return path, nil
}
