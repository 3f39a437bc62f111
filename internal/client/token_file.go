package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const tokenFileMode fs.FileMode = 0o600

// tokenFile persists the session token. An empty path disables persistence.
type tokenFile struct {
	path string
}

func (f tokenFile) Load() (string, error) {
	if f.path == "" {
		return "", nil
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save replaces the token file with one readable by the owner only. The
// token goes to a temp file in the same directory which is then renamed over
// the old file, so a pre-existing file never keeps wider permissions.
func (f tokenFile) Save(token string) error {
	if f.path == "" {
		return nil
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating token file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err = tmp.Chmod(tokenFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error restricting token file: %w", err)
	}
	if _, err = tmp.WriteString(token); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing token file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("error replacing token file: %w", err)
	}

	return nil
}

func (f tokenFile) Clear() error {
	if f.path == "" {
		return nil
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing token file: %w", err)
	}

	return nil
}
