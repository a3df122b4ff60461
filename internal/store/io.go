package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// readFile reads the file at path; a missing file is not an error and
// yields ok == false.
func readFile(path string) (b []byte, ok bool, err error) {
	b, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// writeFile stages b next to path, syncs it, and renames it over path. On
// any failure the staged file is removed and path is left as it was.
func writeFile(path string, b []byte, mode os.FileMode) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: staging %s: %w", path, err)
	}
	name := staged.Name()
	defer func() {
		if err != nil {
			_ = staged.Close()
			_ = os.Remove(name)
		}
	}()

	if _, err = staged.Write(b); err != nil {
		return fmt.Errorf("store: writing %s: %w", path, err)
	}
	if err = staged.Chmod(mode); err != nil {
		return fmt.Errorf("store: chmod %s: %w", path, err)
	}
	if err = staged.Sync(); err != nil {
		return fmt.Errorf("store: syncing %s: %w", path, err)
	}
	if err = staged.Close(); err != nil {
		return fmt.Errorf("store: closing %s: %w", path, err)
	}
	if err = os.Rename(name, path); err != nil {
		return fmt.Errorf("store: replacing %s: %w", path, err)
	}
	return nil
}
