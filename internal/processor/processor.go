// Package processor dispatches a search to the right variant and checksums its output
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/searcher"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

// ProcessInput runs a search-node task. A task arriving with a done context yields empty output.
func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	select {
	case <-ctx.Done():
	default:
		result.Output = searcher.For(task.IgnoreCase)(task.Query, task.Contents)
	}

	// считаем общий хеш
	result.HashSumm = Checksum(result.Output)

	return &result
}

// Search runs the variant selected by cfg.IgnoreCase over contents.
func Search(cfg model.Config, contents string) []string {
	return searcher.For(cfg.IgnoreCase)(cfg.Query, contents)
}

// Checksum hashes lines with their terminators, so ["ab"] and ["a","b"] differ.
func Checksum(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
