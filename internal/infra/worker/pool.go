// File: internal/infra/worker/pool.go
package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/infra/metrics"
)

// A very small worker pool that runs submitted tasks. The webhook handler
// uses it so update handling never blocks the HTTP response to Telegram.

type Task func(ctx context.Context) error

type Pool struct {
	wg    sync.WaitGroup
	tasks chan Task
	quit  chan struct{}
	n     int
	log   *zerolog.Logger
}

func NewPool(workers int, logger *zerolog.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{tasks: make(chan Task, workers*4), quit: make(chan struct{}), n: workers, log: logger}
}

// Start launches the workers. They run until the context is cancelled or
// Stop is called; a failing task only logs, it never stops its worker.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.n; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-p.quit:
					return
				case task := <-p.tasks:
					if task == nil {
						continue
					}
					if err := task(ctx); err != nil {
						metrics.IncPoolTask("failed")
						p.log.Warn().Err(err).Int("worker", id).Msg("task failed")
					} else {
						metrics.IncPoolTask("completed")
					}
				}
			}
		}(i)
	}
}

// Stop signals the workers and waits for them to exit. Queued tasks that no
// worker picked up before the signal are abandoned.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}

// Submit enqueues a task without blocking. A full queue rejects the task;
// updates are cheap to lose compared to back-pressuring the caller.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return errors.New("nil task")
	}
	select {
	case p.tasks <- task:
		return nil
	default:
		metrics.IncPoolTask("dropped")
		return errors.New("worker queue full")
	}
}
