package terrain

import (
	"context"
	"sync"
)

// rowJob asks a worker to sample one heightfield row.
type rowJob struct {
	row int
	z   int
}

// RowPool samples heightfield rows on a fixed set of goroutines.
type RowPool struct {
	jobQueue chan rowJob
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	sample   func(row, z int)
}

// NewRowPool starts workers goroutines that call sample for each submitted row.
func NewRowPool(ctx context.Context, workers, queueSize int, sample func(row, z int)) *RowPool {
	ctx, cancel := context.WithCancel(ctx)

	pool := &RowPool{
		jobQueue: make(chan rowJob, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		sample:   sample,
	}

	for range workers {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// Submit queues a row, blocking while the queue is full.
// It returns false if the pool's context was cancelled first.
func (p *RowPool) Submit(row, z int) bool {
	select {
	case p.jobQueue <- rowJob{row: row, z: z}:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *RowPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.sample(job.row, job.z)
		case <-p.ctx.Done():
			return
		}
	}
}

// Wait closes the queue and blocks until every queued row has been sampled
// or the context was cancelled. It returns the context error, if any.
func (p *RowPool) Wait() error {
	close(p.jobQueue)
	p.wg.Wait()
	err := p.ctx.Err()
	p.cancel()
	return err
}
