package service

// Service is a long-lived subsystem owning background goroutines:
// the tick scheduler, the snapshot server and audio output
//
// A Hub drives every service through the same sequence:
// Init once all services are registered, Start once all have initialized,
// Stop in reverse start order on shutdown.
type Service interface {
	// Name is unique within a Hub
	Name() string

	// Dependencies names services that must start first; nil for none
	Dependencies() []string

	// Init applies late configuration; args are whatever the caller passed to InitAll
	Init(args ...any) error

	// Start launches goroutines; it must not block
	Start() error

	// Stop releases resources and is safe to call repeatedly or before Start
	Stop() error
}
