package notifier

import "sync"

// Dispatcher runs queued jobs on background workers. The submission
// pipeline enqueues its thank-you email here after persisting, so the
// HTTP response never waits on mail delivery.
type Dispatcher struct {
	jobs chan func()
	wg   sync.WaitGroup
}

// NewDispatcher starts a dispatcher with the given number of workers.
func NewDispatcher(workers int) *Dispatcher {
	d := &Dispatcher{
		jobs: make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	for job := range d.jobs {
		job()
		d.wg.Done()
	}
}

// Dispatch enqueues a job and returns without waiting for it to run.
func (d *Dispatcher) Dispatch(job func()) {
	d.wg.Add(1)
	d.jobs <- job
}

// Wait blocks until every dispatched job has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close stops the workers after the queue drains.
func (d *Dispatcher) Close() {
	close(d.jobs)
}
