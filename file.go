package wav

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile reads the whole file at path and decodes it.
func ReadFile(path string) (*WaveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	w, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return w, nil
}

// WriteFile encodes w and atomically replaces the file at path with the
// result: the bytes go to a temporary file in the same directory that is
// renamed over path once synced. A replaced file keeps its permissions, a
// new one gets 0644.
func WriteFile(path string, w *WaveFile) error {
	data, err := Encode(w)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(fileMode(path)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set mode of %s: %w", tmpName, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", tmpName, path, err)
	}

	return nil
}

func fileMode(path string) os.FileMode {
	fi, err := os.Stat(path)
	if err != nil {
		return 0o644
	}

	return fi.Mode().Perm()
}
