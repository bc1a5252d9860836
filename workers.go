package pixfilter

import (
	"runtime"
	"sync"

	"github.com/gogpu/pixfilter/internal/parallel"
)

// parallelMinPixels is the buffer size below which filters run on the
// calling goroutine.
const parallelMinPixels = 128 * 128

var (
	poolMu  sync.Mutex
	pool    *parallel.WorkerPool
	workers = runtime.GOMAXPROCS(0)
)

// SetWorkers sets the number of goroutines filters use on large buffers.
// n <= 0 selects GOMAXPROCS; n == 1 disables parallelism. Results do not
// depend on the worker count.
//
// SetWorkers is safe for concurrent use. It waits for filters running on
// the previous pool to finish their current pass.
func SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	poolMu.Lock()
	old := pool
	pool = nil
	workers = n
	poolMu.Unlock()

	if old != nil {
		old.Close()
	}
	Logger().Info("pixfilter: workers configured", "workers", n)
}

// Workers returns the configured worker count.
func Workers() int {
	poolMu.Lock()
	defer poolMu.Unlock()
	return workers
}

// workerPool returns the shared pool, creating it on first use.
// It returns nil when parallelism is disabled.
func workerPool() *parallel.WorkerPool {
	poolMu.Lock()
	defer poolMu.Unlock()

	if workers < 2 {
		return nil
	}
	if pool == nil {
		pool = parallel.NewWorkerPool(workers)
	}
	return pool
}

// forRows runs fn over row bands of b, in parallel when b is large enough.
func forRows(b *Buffer, fn func(y0, y1 int)) {
	forBands(b, b.height, parallel.DefaultMinRows, fn)
}

// forBands splits [0, n) into bands of at least minN units for a filter
// over b. Units are rows, or rows of blocks for pixelate.
func forBands(b *Buffer, n, minN int, fn func(lo, hi int)) {
	var p *parallel.WorkerPool
	if b.Len() >= parallelMinPixels {
		p = workerPool()
	}
	parallel.ForRows(p, n, minN, fn)
}
