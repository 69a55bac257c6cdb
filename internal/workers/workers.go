package workers

// Workers runs several workers as one.
type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts workers in registration order.
func (w *Workers) Start() {
	for _, worker := range w.workers {
		worker.Start()
	}
}

// Stop stops workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
