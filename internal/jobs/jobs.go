// Package jobs runs a function over a slice either serially or on a set of
// goroutines, one goroutine per equal part of the input.
package jobs

import (
	"context"
	"fmt"
	"runtime"

	"github.com/WinPooh32/eqparts"
	"github.com/WinPooh32/eqparts/opt"
	"golang.org/x/sync/errgroup"
)

// ctxCheckEvery is how many inputs a worker processes between context checks.
const ctxCheckEvery = 1024

// Batch is the output of one worker.
type Batch[R any] struct {
	// Index is the position of the worker's part in emission order.
	Index int
	// Values are the results for the part's inputs, in input order.
	Values []R
}

// Serial applies fn to every input on the calling goroutine.
func Serial[T, R any](inputs []T, fn func(T) R) []R {
	results := make([]R, 0, len(inputs))

	for _, in := range inputs {
		results = append(results, fn(in))
	}

	return results
}

// Dispatch takes inputs over, splits them into workers equal parts and applies
// fn to each part on its own goroutine.
// The workers parameter specifies number of used goroutines, if set as 0 number of cpu cores will be used.
//
// The returned channel is closed after all workers finish. A failed run ends
// with a single error result.
func Dispatch[T, R any](ctx context.Context, inputs []T, workers int, fn func(T) R) <-chan opt.Result[Batch[R]] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	resC := make(chan opt.Result[Batch[R]], workers)

	go func() {
		defer close(resC)

		parts, err := eqparts.Take(inputs, workers)
		if err != nil {
			resC <- opt.Err[Batch[R]](fmt.Errorf("split inputs: %w", err))
			return
		}

		eg, ctx := errgroup.WithContext(ctx)

		var index int

		for part := range parts.All() {
			wrkr := worker[T, R]{
				index: index,
				part:  part,
				fn:    fn,
				resC:  resC,
			}

			eg.Go(func() error {
				return wrkr.run(ctx)
			})

			index++
		}

		if err := eg.Wait(); err != nil {
			resC <- opt.Err[Batch[R]](err)
			return
		}
	}()

	return resC
}

// Collect drains resC and joins the batches back in emission order.
func Collect[R any](resC <-chan opt.Result[Batch[R]]) ([]R, error) {
	var (
		batches [][]R
		total   int
	)

	for res := range resC {
		batch, err := res.Get()
		if err != nil {
			return nil, err
		}

		if batch.Index >= len(batches) {
			batches = append(batches, make([][]R, batch.Index-len(batches)+1)...)
		}

		batches[batch.Index] = batch.Values
		total += len(batch.Values)
	}

	results := make([]R, 0, total)

	for _, values := range batches {
		results = append(results, values...)
	}

	return results, nil
}

type worker[T, R any] struct {
	index int
	part  []T
	fn    func(T) R
	resC  chan<- opt.Result[Batch[R]]
}

func (w *worker[T, R]) run(ctx context.Context) error {
	values := make([]R, 0, len(w.part))

	for i, in := range w.part {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("context is done: %w", err)
			}
		}

		values = append(values, w.fn(in))
	}

	select {
	case w.resC <- opt.Ok(Batch[R]{Index: w.index, Values: values}):
	case <-ctx.Done():
		return fmt.Errorf("context is done: %w", ctx.Err())
	}

	return nil
}
