package server

// Server defines the lifecycle of the mobile side.
//
// RunServer blocks until a stop signal arrives or the server fails;
// Shutdown stops serving and waits for background workers.
type Server interface {
	RunServer()
	Shutdown()
}

// Worker is a background job started and stopped with the server.
type Worker interface {
	Start()
	Stop()
}
