package aggregate

import (
	"runtime"
	"sync"

	"github.com/arloliu/sensorcrunch/record"
)

// Workers reports the size of the worker pool used for parallel
// aggregation: one worker per schedulable CPU. Visible to callers for
// reporting, not configurable.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// Global filters records with Value strictly greater than threshold and
// reduces the survivors into one Accumulator.
//
// Records are split into contiguous partitions, one goroutine each; every
// worker folds its partition into a private Accumulator and the partials
// are merged after all workers finish. No shared mutable state, so the
// whole reduction is lock-free. The result is independent of partition
// count and scheduling, up to floating-point summation order.
func Global(records []record.Record, threshold float64) Accumulator {
	return globalWithWorkers(records, threshold, Workers())
}

func globalWithWorkers(records []record.Record, threshold float64, workers int) Accumulator {
	if len(records) == 0 {
		return Accumulator{}
	}
	if workers > len(records) {
		workers = len(records)
	}

	partials := make([]Accumulator, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()

			start, end := partition(len(records), workers, w)
			acc := &partials[w]
			for _, rec := range records[start:end] {
				if rec.Value > threshold {
					acc.Add(rec.Value)
				}
			}
		}(w)
	}
	wg.Wait()

	var global Accumulator
	for _, partial := range partials {
		global.Merge(partial)
	}

	return global
}

// partition returns the half-open index range [start, end) of partition w
// out of workers over n items. Ranges are contiguous, cover [0, n), and
// differ in size by at most one.
func partition(n, workers, w int) (start, end int) {
	base := n / workers
	extra := n % workers

	start = w*base + min(w, extra)
	end = start + base
	if w < extra {
		end++
	}

	return start, end
}
