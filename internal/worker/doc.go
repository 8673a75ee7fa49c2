package worker

// Package worker implements the background task pipeline: a fixed-size pool
// of goroutines draining a shared unbounded FIFO queue, poison-pill
// shutdown, panic isolation per task, and progress propagation through a
// pool-wide callback bound to each task at enqueue time.
