package testutil

import (
	"sync"

	"github.com/roach88/engineos/internal/platform"
)

// ExecCall records one FakeBackend.Execute invocation.
type ExecCall struct {
	Path     string
	Args     []string
	Blocking bool
}

// FakeBackend is an in-memory platform.Backend.
//
// Lifecycle hooks are appended to Hooks by name so tests can assert call
// order. Time comes from Clock; DelayUsec advances it.
type FakeBackend struct {
	platform.Defaults

	BackendName string
	Clock       *ManualClock
	// RuntimeErr is returned by InitializeRuntime.
	RuntimeErr error
	// Internal answers CheckInternalFeature.
	Internal map[string]bool
	// ExecResult and ExecErr are returned by Execute.
	ExecResult platform.ExecResult
	ExecErr    error
	// UserDir, when set, is returned by UserDataDir.
	UserDir string

	mu              sync.Mutex
	hooks           []string
	internalQueries []string
	execs           []ExecCall
	killed          []int
	env             map[string]string
	userDirReqs     []platform.UserDirRequest
	audioDriver     int
}

// NewFakeBackend creates a back-end named name with a clock at zero.
func NewFakeBackend(name string) *FakeBackend {
	return &FakeBackend{
		BackendName: name,
		Clock:       NewManualClock(0),
		Internal:    map[string]bool{},
		env:         map[string]string{},
	}
}

func (b *FakeBackend) record(hook string) {
	b.mu.Lock()
	b.hooks = append(b.hooks, hook)
	b.mu.Unlock()
}

// Hooks returns the lifecycle hooks called so far, in order.
func (b *FakeBackend) Hooks() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.hooks...)
}

func (b *FakeBackend) Name() string { return b.BackendName }

func (b *FakeBackend) InitializeCore() { b.record("initialize_core") }

func (b *FakeBackend) InitializeRuntime(audioDriver int) error {
	b.record("initialize_runtime")
	b.mu.Lock()
	b.audioDriver = audioDriver
	b.mu.Unlock()
	return b.RuntimeErr
}

// AudioDriver returns the driver index passed to InitializeRuntime.
func (b *FakeBackend) AudioDriver() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.audioDriver
}

func (b *FakeBackend) FinalizeRuntime() { b.record("finalize_runtime") }
func (b *FakeBackend) FinalizeCore()    { b.record("finalize_core") }

func (b *FakeBackend) CheckInternalFeature(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.internalQueries = append(b.internalQueries, name)
	return b.Internal[name]
}

// InternalQueries returns every name CheckInternalFeature was asked about.
func (b *FakeBackend) InternalQueries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.internalQueries...)
}

func (b *FakeBackend) Execute(path string, args []string, blocking bool, opts platform.ExecOptions) (platform.ExecResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.execs = append(b.execs, ExecCall{Path: path, Args: append([]string(nil), args...), Blocking: blocking})
	return b.ExecResult, b.ExecErr
}

// Execs returns every Execute call, in order.
func (b *FakeBackend) Execs() []ExecCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ExecCall(nil), b.execs...)
}

func (b *FakeBackend) Kill(pid int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.killed = append(b.killed, pid)
	return nil
}

// Killed returns every pid passed to Kill.
func (b *FakeBackend) Killed() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int(nil), b.killed...)
}

func (b *FakeBackend) HasEnv(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.env[name]
	return ok
}

func (b *FakeBackend) Getenv(name string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.env[name]
}

func (b *FakeBackend) Setenv(name, value string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.env[name] = value
	return true
}

func (b *FakeBackend) Date(local bool) platform.Date {
	return platform.Date{Year: 2024, Month: 1, Day: 2, Weekday: 2}
}

func (b *FakeBackend) TimeOfDay(local bool) platform.TimeOfDay {
	return platform.TimeOfDay{Hour: 3, Minute: 4, Second: 5}
}

func (b *FakeBackend) TimeZone() platform.TimeZoneInfo {
	return platform.TimeZoneInfo{Name: "UTC"}
}

func (b *FakeBackend) TicksUsec() uint64 { return b.Clock.Now() }

func (b *FakeBackend) DelayUsec(usec uint32) { b.Clock.Advance(uint64(usec)) }

func (b *FakeBackend) UserDataDir(req platform.UserDirRequest) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.userDirReqs = append(b.userDirReqs, req)
	if b.UserDir != "" {
		return b.UserDir
	}
	return b.Defaults.UserDataDir(req)
}

// UserDirRequests returns every request UserDataDir received.
func (b *FakeBackend) UserDirRequests() []platform.UserDirRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]platform.UserDirRequest(nil), b.userDirReqs...)
}

var _ platform.Backend = (*FakeBackend)(nil)
