// Package platform is the runtime abstraction of the engine: one OS value
// holding process-wide state (command line, exit code, last error,
// restart-on-exit request, logger pipeline) and driving a Backend through
// a fixed lifecycle:
//
//	constructed -> core-initialized -> runtime-initialized -> running -> finalized -> destroyed
//
// Calling a lifecycle method out of order panics with *LifecycleError.
//
// Optional capabilities are answered by the Backend. Defaults provides the
// "not supported" answers so a back-end only implements what it has;
// callers detect missing capabilities with IsUnavailable.
package platform
