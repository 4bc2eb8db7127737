package appmode

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// RunServer serves search tasks until ctx is done. A listener failure is
// returned as is, so the process can exit non-zero.
func RunServer(ctx context.Context, ai *model.AppInit) error {
	srv := transport.NewServer(ai.Address, processor.Processor{})

	// ListenAndServe всегда возвращает ошибку; до Shutdown это не ErrServerClosed
	listenErr := make(chan error, 1)
	go func() {
		log.Printf("Search-node listening on %s", srv.Addr)
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("search-node %q failed to serve: %w", ai.Address, err)
	case <-ctx.Done():
	}

	log.Printf("Search-node %q: stop requested, waiting for running tasks...", ai.Address)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("search-node %q failed to finish running tasks: %w", ai.Address, err)
	}

	log.Printf("Search-node %q is closed.", ai.Address)
	return nil
}
