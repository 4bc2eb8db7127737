// Package reader loads the whole target file into memory
package reader

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// ReadContents returns file contents as one string. Every failure wraps model.ErrIO.
func ReadContents(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: error opening file %q: %w", model.ErrIO, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified source filename %q is a directory", model.ErrIO, fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't read file %q: %w", model.ErrIO, fileName, err)
	}
	return string(raw), nil
}
