package usecase

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/kipp/internal/domain"
)

// resolveStoragePath returns the file a save or load should use.
// A blank argument selects defaultPath.
func resolveStoragePath(arg, defaultPath string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		path = defaultPath
	}
	if path == "" {
		return "", fmt.Errorf("%w: no path given", domain.ErrInvalidPath)
	}
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPath, path)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %q is a directory", domain.ErrInvalidPath, path)
	}
	return path, nil
}
