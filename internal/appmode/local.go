// Package appmode provides methods to work in preliminarily defined mode 'local', 'server' and 'remote'
package appmode

import (
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// RunLocal reads the file, searches it and prints matching lines to w.
func RunLocal(ai *model.AppInit, w io.Writer) error {
	contents, err := reader.ReadContents(ai.Config.FilePath)
	if err != nil {
		return err
	}

	return printLines(w, processor.Search(ai.Config, contents))
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
	}
	return nil
}
