package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names inside the data directory used by the File*Repo types.
const (
	ProgressFile  = "progress.json"
	SettingsFile  = "settings.json"
	DifficultFile = "difficult_words.json"
	HistoryFile   = "history.jsonl"
)

// NewFileStores returns JSON document repositories rooted at dir.
func NewFileStores(dir string) Stores {
	return Stores{
		Progress:  NewFileProgressRepo(filepath.Join(dir, ProgressFile)),
		Settings:  NewFileSettingsRepo(filepath.Join(dir, SettingsFile)),
		Difficult: NewFileDifficultWordRepo(filepath.Join(dir, DifficultFile)),
		History:   NewFileHistoryRepo(filepath.Join(dir, HistoryFile)),
	}
}

// readJSONFile decodes path into v. A missing file is ErrNotFound.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", filepath.Base(path), ErrNotFound)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// writeJSONFile replaces path with the encoding of v. The document is written
// to a sibling temp file and renamed over the target so a crash leaves either
// the old or the new document, never a torn one.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
