package platform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/engineos/internal/logger"
	"github.com/roach88/engineos/internal/platform"
	"github.com/roach88/engineos/internal/testutil"
)

func newTestOS(t *testing.T, sinks ...logger.Logger) (*platform.OS, *testutil.FakeBackend) {
	t.Helper()
	backend := testutil.NewFakeBackend("Fake")
	b := logger.NewBuilder()
	for _, s := range sinks {
		b.Add(s)
	}
	o := platform.New(backend,
		platform.WithLogger(b.Build()),
		platform.WithIDGenerator(testutil.NewStaticIDGenerator("")),
	)
	return o, backend
}

func requireLifecyclePanic(t *testing.T, op string, fn func()) *platform.LifecycleError {
	t.Helper()
	var got *platform.LifecycleError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected %s to panic", op)
			var ok bool
			got, ok = r.(*platform.LifecycleError)
			require.True(t, ok, "panic value %T is not *LifecycleError", r)
		}()
		fn()
	}()
	assert.Equal(t, op, got.Op)
	return got
}

func TestLifecycle_FullRun(t *testing.T) {
	o, backend := newTestOS(t)
	assert.Equal(t, platform.StageConstructed, o.Stage())

	o.InitializeCore()
	assert.Equal(t, platform.StageCoreInitialized, o.Stage())

	require.NoError(t, o.InitializeRuntime(0))
	assert.Equal(t, platform.StageRuntimeInitialized, o.Stage())

	o.BeginRunning()
	assert.Equal(t, platform.StageRunning, o.Stage())

	o.Finalize()
	assert.Equal(t, platform.StageFinalized, o.Stage())

	require.NoError(t, o.Close())
	assert.Equal(t, platform.StageDestroyed, o.Stage())

	assert.Equal(t, []string{
		"initialize_core",
		"initialize_runtime",
		"finalize_runtime",
		"finalize_core",
	}, backend.Hooks())
}

func TestLifecycle_RuntimeFailureSkipsFinalizeRuntime(t *testing.T) {
	o, backend := newTestOS(t)
	backend.RuntimeErr = errors.New("no audio")

	o.InitializeCore()
	err := o.InitializeRuntime(1)
	require.Error(t, err)
	assert.Equal(t, platform.StageCoreInitialized, o.Stage())

	requireLifecyclePanic(t, "begin_running", o.BeginRunning)

	o.Finalize()
	require.NoError(t, o.Close())
	assert.Equal(t, []string{"initialize_core", "initialize_runtime", "finalize_core"}, backend.Hooks())
}

func TestLifecycle_CloseWithoutInitialize(t *testing.T) {
	o, backend := newTestOS(t)
	require.NoError(t, o.Close())
	assert.Equal(t, platform.StageDestroyed, o.Stage())
	assert.Empty(t, backend.Hooks())
}

func TestLifecycle_Violations(t *testing.T) {
	tests := []struct {
		name  string
		setup func(o *platform.OS)
		op    string
		call  func(o *platform.OS)
	}{
		{
			name:  "runtime before core",
			setup: func(o *platform.OS) {},
			op:    "initialize_runtime",
			call:  func(o *platform.OS) { _ = o.InitializeRuntime(0) },
		},
		{
			name:  "core twice",
			setup: func(o *platform.OS) { o.InitializeCore() },
			op:    "initialize_core",
			call:  func(o *platform.OS) { o.InitializeCore() },
		},
		{
			name:  "running before runtime",
			setup: func(o *platform.OS) { o.InitializeCore() },
			op:    "begin_running",
			call:  func(o *platform.OS) { o.BeginRunning() },
		},
		{
			name:  "finalize before core",
			setup: func(o *platform.OS) {},
			op:    "finalize",
			call:  func(o *platform.OS) { o.Finalize() },
		},
		{
			name:  "close while running",
			setup: func(o *platform.OS) { o.InitializeCore(); _ = o.InitializeRuntime(0); o.BeginRunning() },
			op:    "close",
			call:  func(o *platform.OS) { _ = o.Close() },
		},
		{
			name:  "finalize twice",
			setup: func(o *platform.OS) { o.InitializeCore(); o.Finalize() },
			op:    "finalize",
			call:  func(o *platform.OS) { o.Finalize() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, _ := newTestOS(t)
			tt.setup(o)
			before := o.Stage()

			le := requireLifecyclePanic(t, tt.op, func() { tt.call(o) })
			assert.Equal(t, before, le.Current)
			assert.Equal(t, before, o.Stage())
			assert.Contains(t, le.Error(), tt.op)
		})
	}
}

func TestLifecycle_CloseClosesSinks(t *testing.T) {
	rec := testutil.NewRecordingLogger("rec", nil)
	o, _ := newTestOS(t, rec)

	require.NoError(t, o.Close())
	assert.True(t, rec.Closed())
	assert.Nil(t, o.Logger())

	// Printing after close reaches nothing and does not panic.
	o.Print("late\n")
	assert.Empty(t, rec.Lines())
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "constructed", platform.StageConstructed.String())
	assert.Equal(t, "running", platform.StageRunning.String())
	assert.Equal(t, "destroyed", platform.StageDestroyed.String())
	assert.Equal(t, "stage(42)", platform.Stage(42).String())
}
