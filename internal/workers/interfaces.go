package workers

// Worker is a background job with an explicit lifecycle. Start must not
// block; Stop waits for the job to finish.
type Worker interface {
	Start()
	Stop()
}
