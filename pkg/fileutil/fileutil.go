// Package fileutil provides whole-file I/O with tmp+rename output semantics.
package fileutil

import (
	"fmt"
	"os"

	"github.com/eunmann/hilbertpix/pkg/logging"
)

// ReadAll reads the entire file at path into memory.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteAtomic writes data to path by way of a temporary file in the same
// directory, syncing and renaming into place. A crash mid-write leaves at
// worst a stale .tmp file, never a truncated output.
func WriteAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp to final: %w", err)
	}

	logging.L().Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote output file")
	return nil
}

// Exists returns true if the file exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
