package platform

// restartRequest is replaced as a whole so the flag and its arguments are
// always observed together.
type restartRequest struct {
	enabled bool
	args    []string
}

// SetRestartOnExit asks the host to relaunch the executable with args after
// shutdown. SetRestartOnExit(false, nil) cancels the request.
func (o *OS) SetRestartOnExit(restart bool, args []string) {
	o.restart.Store(&restartRequest{
		enabled: restart,
		args:    append([]string(nil), args...),
	})
}

func (o *OS) IsRestartOnExitSet() bool {
	return o.restart.Load().enabled
}

// RestartOnExitArguments returns a copy of the pending restart arguments.
func (o *OS) RestartOnExitArguments() []string {
	return append([]string(nil), o.restart.Load().args...)
}
