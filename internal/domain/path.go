package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathType is the expected kind of filesystem entry
type PathType string

const (
	PathDirectory PathType = "directory"
	PathFile      PathType = "file"
)

var (
	ErrPathNotExist = errors.New("invalid path does not exist")
	ErrPathInvalid  = errors.New("found an invalid path")
)

// PathTypeError is returned when a path exists but has the wrong type
type PathTypeError struct {
	Actual   PathType
	Expected PathType
}

func (e *PathTypeError) Error() string {
	return fmt.Sprintf("expected a %s path but found a %s", e.Expected, e.Actual)
}

// ResolveAbsolutePath canonicalises path (trimmed, made absolute, symlinks
// followed) and checks that it exists with the expected type.
func ResolveAbsolutePath(path string, expected PathType) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrPathInvalid
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathInvalid, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrPathNotExist
		}
		return "", fmt.Errorf("%w: %v", ErrPathInvalid, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrPathNotExist
		}
		return "", fmt.Errorf("%w: %v", ErrPathInvalid, err)
	}

	actual := PathFile
	if info.IsDir() {
		actual = PathDirectory
	}
	if actual != expected {
		return "", &PathTypeError{Actual: actual, Expected: expected}
	}

	return resolved, nil
}

// IsFile reports whether path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
