// Package parallel provides row-band parallel execution for pixfilter.
//
// A buffer is divided into horizontal bands of whole rows that are processed
// independently. Every band writes a disjoint range of output rows, so
// results do not depend on scheduling:
//
//   - bands are contiguous, non-overlapping and cover [0, rows)
//   - band count never exceeds the worker count
//   - short buffers run as a single band on the calling goroutine
package parallel

// DefaultMinRows is the smallest band height worth scheduling.
// Smaller bands spend more time in queues than in filter loops.
const DefaultMinRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides rows into at most n contiguous bands of at least minRows
// rows each. Remainder rows are spread over the leading bands, so band
// heights differ by at most one.
func SplitRows(rows, n, minRows int) []Band {
	if rows <= 0 {
		return nil
	}
	if minRows < 1 {
		minRows = 1
	}
	if n < 1 {
		n = 1
	}
	if limit := rows / minRows; n > limit {
		n = max(limit, 1)
	}

	bands := make([]Band, n)
	base, extra := rows/n, rows%n
	y := 0
	for i := range bands {
		h := base
		if i < extra {
			h++
		}
		bands[i] = Band{Y0: y, Y1: y + h}
		y += h
	}
	return bands
}

// ForRows runs fn over bands covering [0, rows). A nil pool, a single-worker
// pool or a single band runs fn inline on the calling goroutine.
func ForRows(p *WorkerPool, rows, minRows int, fn func(y0, y1 int)) {
	if rows <= 0 {
		return
	}
	if p == nil || p.Workers() < 2 {
		fn(0, rows)
		return
	}

	bands := SplitRows(rows, p.Workers(), minRows)
	if len(bands) == 1 {
		fn(0, rows)
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
