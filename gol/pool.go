package gol

import "sync"

// rowRange is a half-open band of rows [startY, endY) owned by one worker.
type rowRange struct {
	startY, endY int
}

// splitRows partitions height rows into at most workers contiguous bands whose
// sizes differ by at most one. Empty bands are never returned.
func splitRows(height, workers int) []rowRange {
	if workers > height {
		workers = height
	}
	ranges := make([]rowRange, 0, workers)
	base, extra := height/workers, height%workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		ranges = append(ranges, rowRange{startY: start, endY: start + size})
		start += size
	}
	return ranges
}

type job struct {
	cur, next []byte
}

// workerPool keeps one goroutine per row band alive for the length of a run.
type workerPool struct {
	width, height int
	jobs          []chan job
	wg            sync.WaitGroup
}

func newWorkerPool(width, height int, ranges []rowRange) *workerPool {
	p := &workerPool{
		width:  width,
		height: height,
		jobs:   make([]chan job, len(ranges)),
	}
	for i, r := range ranges {
		p.jobs[i] = make(chan job)
		go p.worker(r, p.jobs[i])
	}
	return p
}

func (p *workerPool) worker(r rowRange, jobs <-chan job) {
	for j := range jobs {
		advanceRows(j.cur, j.next, p.width, p.height, r.startY, r.endY)
		p.wg.Done()
	}
}

// step computes one generation and returns only after every worker has
// finished writing next.
func (p *workerPool) step(cur, next []byte) {
	p.wg.Add(len(p.jobs))
	for _, ch := range p.jobs {
		ch <- job{cur: cur, next: next}
	}
	p.wg.Wait()
}

func (p *workerPool) close() {
	for _, ch := range p.jobs {
		close(ch)
	}
}
