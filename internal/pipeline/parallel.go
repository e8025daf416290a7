package pipeline

import (
	"context"
	"sync"
)

// chunksPerWorker sets how many chunks each worker slot serves, so a slow
// chunk does not leave the other slots idle.
const chunksPerWorker = 4

// ParallelSum computes the sum of fn over items using at most workers
// goroutines at a time. The input is split into contiguous chunks, up to
// chunksPerWorker per worker; each chunk is reduced independently and the
// partial sums are added in chunk order. For integer N the result is
// identical to the sequential sum.
//
// ParallelSum returns ctx.Err() if ctx is done before it starts, or before any
// chunk acquires a worker slot. A chunk that has started runs to completion.
//
// workers < 1 is treated as 1.
func ParallelSum[T any, N Number](ctx context.Context, items []T, workers int, fn func(T) N) (N, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	if workers < 1 {
		workers = 1
	}
	chunks := split(items, min(workers, len(items))*chunksPerWorker)

	partials := make([]N, len(chunks))
	errs := make([]error, len(chunks))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(idx int, part []T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}

			// A free slot and a done context can be ready together.
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			var acc N
			for _, it := range part {
				acc += fn(it)
			}
			partials[idx] = acc
		}(i, chunk)
	}

	wg.Wait()

	var total N
	for i, p := range partials {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += p
	}
	return total, nil
}

// split cuts items into at most n contiguous, near-equal chunks.
func split[T any](items []T, n int) [][]T {
	if n > len(items) {
		n = len(items)
	}
	size := (len(items) + n - 1) / n

	chunks := make([][]T, 0, n)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
