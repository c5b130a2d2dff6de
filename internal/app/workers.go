package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/edarioq/prop-ordering/internal/processor"
)

type fileResult struct {
	file   string
	result processor.ProcessResult
	err    error
}

// processFilesParallel lints every file on a bounded pool. Per-file errors
// are collected in the results; only cancellation aborts the run.
func processFilesParallel(ctx context.Context, files []string, cfg processor.Config) ([]fileResult, error) {
	workerCount := cfg.Workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	workerCount = min(workerCount, len(files))

	// Processors hold collators and are not goroutine-safe, so each running
	// task checks one out
	processors := make(chan *processor.Processor, workerCount)
	for i := 0; i < workerCount; i++ {
		p, err := processor.NewProcessor(cfg.Rules)
		if err != nil {
			return nil, err
		}
		processors <- p
	}

	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			p := <-processors
			defer func() { processors <- p }()

			res, err := p.ProcessFile(gctx, file, cfg)
			results[i] = fileResult{file: file, result: res, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
