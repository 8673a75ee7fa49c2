package worker

import (
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrPoolClosed is returned when a task is enqueued after Shutdown.
	ErrPoolClosed = errors.New("worker pool is shut down")

	// ErrNilTask is returned when a nil task is enqueued.
	ErrNilTask = errors.New("nil task")
)

// entry is one queue slot. A nil task is the poison sentinel that
// terminates the worker dequeuing it.
type entry struct {
	task   Task
	report ProgressFunc
}

// Pool executes tasks on a fixed set of workers draining a shared FIFO
// queue. The queue is unbounded; Enqueue never blocks. Dequeue order is
// FIFO across the whole pool, but with two or more workers completion
// order is not guaranteed to match submission order.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []entry
	closed bool

	workers int
	wg      sync.WaitGroup

	report ProgressFunc
	logger *slog.Logger
}

// NewPool creates a pool with the given number of workers. Workers are not
// spawned until Start.
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		workers: workers,
		logger:  logger,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// SetProgressFunc sets the shared progress callback bound to every task at
// enqueue time. Must be called before Enqueue.
func (p *Pool) SetProgressFunc(report ProgressFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.report = report
}

// Start spawns the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Enqueue binds the pool's progress callback onto the task and appends it
// to the queue. Tasks enqueued after Shutdown are rejected since workers
// are no longer guaranteed to be listening.
func (p *Pool) Enqueue(t Task) error {
	if t == nil {
		return ErrNilTask
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}

	p.queue = append(p.queue, entry{task: t, report: p.report})
	p.cond.Signal()
	return nil
}

// Shutdown enqueues one poison sentinel per worker and rejects all further
// tasks. Use Wait to block until every worker has observed its sentinel.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for i := 0; i < p.workers; i++ {
		p.queue = append(p.queue, entry{})
	}
	p.cond.Broadcast()
}

// Wait blocks until all workers have terminated.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Pending returns the number of queued non-sentinel tasks.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, e := range p.queue {
		if e.task != nil {
			n++
		}
	}
	return n
}

// worker drains the queue until it dequeues a poison sentinel.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		e := p.next()
		if e.task == nil {
			p.logger.Debug("worker terminating", "worker", id)
			return
		}
		p.runTask(id, e)
	}
}

// next blocks until the queue is non-empty and pops the head.
func (p *Pool) next() entry {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) == 0 {
		p.cond.Wait()
	}

	e := p.queue[0]
	p.queue = p.queue[1:]
	return e
}

// runTask executes one task, isolating faults: a panicking or failing task
// is logged and must not kill the worker.
func (p *Pool) runTask(id int, e entry) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", "worker", id, "task", e.task.ID(), "panic", r)
		}
	}()

	p.logger.Debug("task started", "worker", id, "task", e.task.ID())
	if err := e.task.Run(e.report); err != nil {
		p.logger.Error("task failed", "worker", id, "task", e.task.ID(), "error", err)
		return
	}
	p.logger.Debug("task finished", "worker", id, "task", e.task.ID())
}
