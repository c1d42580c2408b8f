package cli

import (
	"os"
	"path/filepath"

	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/internal/golden"
)

// WriteGoldenFile writes cases as the golden file inside dir, creating the
// directory if needed. The file is written to a temporary name first and
// renamed so readers never observe a partial file.
//
// Parameters:
//   - dir: The destination directory.
//   - cases: The cases to store.
//
// Returns:
//   - string: The path of the written file.
//   - error: An error if the directory or the file cannot be written.
func WriteGoldenFile(dir string, cases []golden.Case) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.WrapError(err, "failed to create directory")
	}

	tmp, err := os.CreateTemp(dir, golden.FileName+".*")
	if err != nil {
		return "", apperrors.WrapError(err, "failed to create output file")
	}
	defer os.Remove(tmp.Name())

	if err := golden.Write(tmp, cases); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", apperrors.WrapError(err, "failed to close output file")
	}

	path := filepath.Join(dir, golden.FileName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", apperrors.WrapError(err, "failed to move output file into place")
	}
	return path, nil
}
