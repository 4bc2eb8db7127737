// Package qaggr - provides method to aggregate results received from search-nodes and reach quorum
package qaggr

import (
	"context"
	"errors"

	"github.com/UnendingLoop/minigrep/internal/model"
)

var ErrNoQuorum = errors.New("result collector's context exceeded or cancelled without reaching quorum")

type taskTotals struct {
	votes int
	data  []string
}

// CollectQuorum reads results for taskID until some output, identified by its hash, gets quorum votes.
func CollectQuorum(ctx context.Context, ch <-chan model.SearchResult, taskID string, quorum int) ([]string, error) {
	// считаем голоса по каждой вариации хеш-суммы
	votes := make(map[uint64]*taskTotals)

	for {
		select {
		case <-ctx.Done():
			return nil, ErrNoQuorum
		case newRes, ok := <-ch:
			if !ok {
				return nil, ErrNoQuorum
			}

			// результаты чужих заданий пропускаем
			if newRes.TaskID != taskID {
				continue
			}

			record, exists := votes[newRes.HashSumm]
			if !exists {
				record = &taskTotals{data: newRes.Output}
				votes[newRes.HashSumm] = record
			}
			record.votes++

			if record.votes >= quorum {
				return record.data, nil
			}
		}
	}
}
