package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the refresh token verbatim, no trailing newline. The write goes
// through a temp file in the destination directory and a rename, so a failed
// run never clobbers a previously good token file.
func Save(path string, token string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".refresh-token-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Load reads a token file written by Save. The cleanup job uses this.
func Load(path string) (string, error) {
	byteData, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(byteData))
	if token == "" {
		return "", fmt.Errorf("refresh token file %s is empty", path)
	}
	return token, nil
}
