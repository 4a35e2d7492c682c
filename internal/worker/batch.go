package worker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/game"
	"github.com/copperfishgh/testy/internal/hashing"
	"github.com/copperfishgh/testy/internal/output"
)

// Analyzer returns a ProcessFunc that reports on each FEN. When seen is
// not nil, a position already reported by another item is flagged as a
// duplicate and not analysed again.
func Analyzer(cfg *config.Config, seen *hashing.SeenPositions) ProcessFunc {
	quiet := cfg.Clone()
	quiet.Verbosity = 0

	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}

		s := game.New(quiet)
		if err := s.LoadFEN(item.FEN); err != nil {
			res.Error = err
			res.Report = &output.Report{FEN: item.FEN, Error: err.Error()}
			return res
		}
		if seen != nil && seen.CheckAndAdd(s.Board()) {
			res.Duplicate = true
			return res
		}
		res.Report = output.NewReport(s)
		return res
	}
}

// Batch runs process over fens and returns the results in input order.
// Cancelling ctx stops the remaining items; their results are left empty.
func Batch(ctx context.Context, fens []string, process ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPool(process, opts...)
	pool.Start()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		for i, fen := range fens {
			select {
			case <-ctx.Done():
				pool.Stop()
				return ctx.Err()
			default:
			}
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		return nil
	})

	results := make([]ProcessResult, len(fens))
	g.Go(func() error {
		for r := range pool.Results() {
			results[r.Index] = r
		}
		return nil
	})

	return results, g.Wait()
}
