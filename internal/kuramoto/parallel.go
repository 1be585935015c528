package kuramoto

import (
	"runtime"
	"sync"
)

// minParallelOsc is the oscillator count below which a step is
// computed serially; goroutine fan-out costs more than it saves on
// small networks.
const minParallelOsc = 64

// parallelFor executes fn over chunks of [0, n). Chunks only read the
// frozen snapshot and write disjoint ranges of the output buffer, so
// no synchronization beyond the final wait is needed.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n < minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
