package platform

import (
	"fmt"
	"log/slog"
	"slices"
)

// Stage is a point in the OS lifecycle.
type Stage int32

const (
	StageConstructed Stage = iota
	StageCoreInitialized
	StageRuntimeInitialized
	StageRunning
	StageFinalized
	StageDestroyed
)

var stageNames = [...]string{
	"constructed",
	"core-initialized",
	"runtime-initialized",
	"running",
	"finalized",
	"destroyed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int32(s))
	}
	return stageNames[s]
}

// Stage returns the current lifecycle stage.
func (o *OS) Stage() Stage {
	return Stage(o.stage.Load())
}

// enter moves to next if the current stage is one of allowed, and panics
// with a *LifecycleError otherwise.
func (o *OS) enter(op string, next Stage, allowed ...Stage) {
	cur := o.Stage()
	if !slices.Contains(allowed, cur) {
		panic(&LifecycleError{Op: op, Current: cur, Allowed: allowed})
	}
	o.stage.Store(int32(next))
	slog.Debug("platform stage", "op", op, "from", cur, "to", next, "backend", o.backend.Name())
}

// InitializeCore runs the back-end's core setup. Failures there are fatal
// to the back-end; there is nothing to report.
func (o *OS) InitializeCore() {
	o.enter("initialize_core", StageCoreInitialized, StageConstructed)
	o.backend.InitializeCore()
}

// InitializeRuntime brings up the platform subsystems with the requested
// audio driver. On error the OS stays core-initialized and can only be
// finalized.
func (o *OS) InitializeRuntime(audioDriver int) error {
	if cur := o.Stage(); cur != StageCoreInitialized {
		panic(&LifecycleError{Op: "initialize_runtime", Current: cur, Allowed: []Stage{StageCoreInitialized}})
	}
	if err := o.backend.InitializeRuntime(audioDriver); err != nil {
		slog.Debug("platform runtime init failed", "backend", o.backend.Name(), "audio_driver", audioDriver, "error", err)
		return err
	}
	o.runtimeInitialized = true
	o.enter("initialize_runtime", StageRuntimeInitialized, StageCoreInitialized)
	return nil
}

// BeginRunning marks the hand-off to the main loop.
func (o *OS) BeginRunning() {
	o.enter("begin_running", StageRunning, StageRuntimeInitialized)
}

// Finalize tears down the back-end: runtime first (if it came up), then
// core.
func (o *OS) Finalize() {
	o.enter("finalize", StageFinalized, StageCoreInitialized, StageRuntimeInitialized, StageRunning)
	if o.runtimeInitialized {
		o.backend.FinalizeRuntime()
		o.runtimeInitialized = false
	}
	o.backend.FinalizeCore()
}

// Close destroys the OS. Every sink of the pipeline that implements
// io.Closer is closed; the pipeline is dropped.
func (o *OS) Close() error {
	o.enter("close", StageDestroyed, StageConstructed, StageFinalized)
	p := o.pipeline.Swap(nil)
	if p == nil {
		return nil
	}
	return p.Close()
}
