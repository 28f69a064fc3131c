// Package importlist parses, validates and writes the media path list handed
// to the editor's import dialog.
package importlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Parse decodes a JSON array of path strings.
func Parse(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("path list is empty")
	}
	var paths []string
	if err := json.Unmarshal([]byte(raw), &paths); err != nil {
		return nil, fmt.Errorf("path list must be a JSON array of strings: %w", err)
	}
	return paths, nil
}

// Validate splits paths into those naming an existing regular file and the
// rest. Order is preserved in both results.
func Validate(fs afero.Fs, paths []string) (valid, missing []string) {
	for _, p := range paths {
		if p == "" {
			missing = append(missing, p)
			continue
		}
		info, err := fs.Stat(p)
		if err != nil || info.IsDir() {
			missing = append(missing, p)
			continue
		}
		valid = append(valid, p)
	}
	return valid, missing
}

// Write replaces the list file with one path per line, creating its parent
// directory if needed.
func Write(fs afero.Fs, file string, paths []string) error {
	if dir := filepath.Dir(file); dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create list directory: %w", err)
		}
	}
	var buf bytes.Buffer
	for _, p := range paths {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	if err := afero.WriteFile(fs, file, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write list file: %w", err)
	}
	return nil
}

// Read returns the non-empty lines of the list file.
func Read(fs afero.Fs, file string) ([]string, error) {
	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}
	var paths []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, sc.Err()
}
