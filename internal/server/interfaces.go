package server

// Server is the lifecycle contract of the application's transport server.
//
// RunServer blocks until a shutdown signal arrives; Shutdown stops accepting
// new requests and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
