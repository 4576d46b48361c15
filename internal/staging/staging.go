package staging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-aisociety-jobs/internal/models"
)

// Path returns the staging file location for a source
func Path(dataDir, sourceName string) string {
	return filepath.Join(dataDir, sourceName+"_jobs.json")
}

// Save writes a source staging artifact atomically: to a temp file first,
// then renamed into place, so a crashed fetch never leaves a truncated file.
func Save(path string, file *models.SourceFile) error {
	return WriteJSON(path, file)
}

// Load reads a staging artifact, failing on missing or corrupt files
func Load(path string) (*models.SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read staging file %s: %w", path, err)
	}
	var file models.SourceFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse staging file %s: %w", path, err)
	}
	return &file, nil
}

// WriteJSON marshals v and atomically replaces path with the result
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
