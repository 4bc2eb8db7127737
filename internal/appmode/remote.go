package appmode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/qaggr"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/docker/distribution/uuid"
)

const (
	healthTimeout = 5 * time.Second
	taskTimeout   = 1 * time.Minute
)

// RunRemote sends the search to every node and prints the output agreed on by quorum nodes.
func RunRemote(ctx context.Context, ai *model.AppInit, w io.Writer) error {
	contents, err := reader.ReadContents(ai.Config.FilePath)
	if err != nil {
		return err
	}

	client := &http.Client{}

	// проверить пингом, что хотя бы минимальное кол-во search-nodes доступны
	if err := checkNodesHealth(ctx, client, ai.Nodes, ai.Quorum); err != nil {
		return fmt.Errorf("failed to start searching: %w", err)
	}

	task := model.SearchTask{
		TaskID:     uuid.Generate().String(),
		Query:      ai.Config.Query,
		IgnoreCase: ai.Config.IgnoreCase,
		Contents:   contents,
	}
	raw, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to MARSHAL task: %w", err)
	}

	tCtx, cancel := context.WithTimeout(ctx, taskTimeout)
	defer cancel()

	// буфер на все ноды: отправители не блокируются после выхода сборщика
	resCollect := make(chan model.SearchResult, len(ai.Nodes))
	wg := sync.WaitGroup{}
	for _, nodeAddr := range ai.Nodes {
		wg.Go(func() {
			sendTaskToNode(tCtx, client, nodeAddr, raw, resCollect)
		})
	}
	go func() {
		wg.Wait()
		close(resCollect)
	}()

	lines, err := qaggr.CollectQuorum(tCtx, resCollect, task.TaskID, ai.Quorum)
	cancel() // кворум есть - остальные запросы больше не нужны
	if err != nil {
		return fmt.Errorf("failed to search task %q: %w", task.TaskID, err)
	}

	return printLines(w, lines)
}

func checkNodesHealth(ctx context.Context, client *http.Client, nodes []string, quorumN int) error {
	wg := sync.WaitGroup{}
	var goodNodes atomic.Int64
	rCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	for _, v := range nodes {
		wg.Go(func() {
			req, err := http.NewRequestWithContext(rCtx, http.MethodGet, v+"/ping", nil)
			if err != nil {
				return
			}

			resp, err := client.Do(req)
			if err != nil {
				log.Printf("search-node %q is unavailable: %v", v, err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				goodNodes.Add(1)
			}
		})
	}

	wg.Wait()
	res := goodNodes.Load()
	if res < int64(quorumN) {
		return fmt.Errorf("only %d search-nodes are OK to continue, while quorum should be %d", res, quorumN)
	}

	return nil
}

func sendTaskToNode(ctx context.Context, client *http.Client, na string, raw []byte, ch chan<- model.SearchResult) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, na+"/task", bytes.NewReader(raw))
	if err != nil {
		log.Printf("failed to CREATE request to search-node %q: %q", na, err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("failed to SEND task to search-node %q: %q", na, err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("search-node %q rejected task: %s", na, resp.Status)
		return
	}

	var result model.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("failed to UNMARSHAL result from search-node %q: %q", na, err.Error())
		return
	}

	// хеш должен совпадать с выводом, иначе голос не засчитываем
	if processor.Checksum(result.Output) != result.HashSumm {
		log.Printf("search-node %q returned result with broken hash", na)
		return
	}
	ch <- result
}
