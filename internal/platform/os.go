package platform

import (
	"sync"
	"sync/atomic"

	"github.com/roach88/engineos/internal/feature"
	"github.com/roach88/engineos/internal/logger"
)

// DefaultLowProcessorSleepUsec is the default sleep between frames in
// low-processor-usage mode.
const DefaultLowProcessorSleepUsec = 10000

// DefaultEngineDirName is the directory name used under the platform data
// path for per-application user data.
const DefaultEngineDirName = "engineos"

// Project is the project configuration the OS consults for custom
// features, the application name and the resource path.
type Project interface {
	feature.CustomFeatureSet

	// AppName is the human-facing project name.
	AppName() string

	// ResourcePath is the absolute path of the project resources.
	ResourcePath() string

	// CustomUserDir returns the custom user data directory name, if the
	// project opted into one.
	CustomUserDir() (string, bool)
}

// MIDIDriver is the MIDI input collaborator.
type MIDIDriver interface {
	ConnectedInputs() []string
	Open() error
	Close()
}

// OS is the runtime abstraction: process-wide state plus the staged
// lifecycle, in front of a platform Backend.
//
// Exactly one OS is created by the embedding host and handed to everything
// that needs runtime services.
//
// Thread-safety model:
//   - lifecycle, command line, settings and project: primary goroutine only,
//     mutated before any concurrent reader is started
//   - last error: safe from any goroutine
//   - logger pipeline and restart request: swapped atomically
type OS struct {
	backend  Backend
	resolver *feature.Resolver

	stage              atomic.Int32
	runtimeInitialized bool

	execPath string
	cmdline  []string

	lowProcessorMode      bool
	lowProcessorSleepUsec int
	verbose               bool
	splashTickMsec        uint64
	exitCode              int

	lastError errorCell
	restart   atomic.Pointer[restartRequest]
	pipeline  atomic.Pointer[logger.Composite]

	project    Project
	midi       MIDIDriver
	engineDir  string
	instanceID string

	memMu       sync.Mutex
	peakHeapUse uint64
}

// Option configures an OS at construction.
type Option func(*OS)

// WithLogger replaces the default pipeline (a single StdLogger).
func WithLogger(c *logger.Composite) Option {
	return func(o *OS) {
		o.pipeline.Store(c)
	}
}

// WithIDGenerator sets the generator used for the process instance ID.
// Default: UUIDv7Generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *OS) {
		o.instanceID = g.Generate()
	}
}

// WithEngineDirName overrides DefaultEngineDirName.
func WithEngineDirName(name string) Option {
	return func(o *OS) {
		o.engineDir = name
	}
}

// WithMIDIDriver attaches a MIDI collaborator.
func WithMIDIDriver(d MIDIDriver) Option {
	return func(o *OS) {
		o.midi = d
	}
}

// New creates the OS in the constructed stage.
//
// Defaults: low-processor mode off with a 10000µs sleep, exit code 0,
// restart-on-exit off, a pipeline holding one StdLogger.
func New(backend Backend, opts ...Option) *OS {
	o := &OS{
		backend:               backend,
		resolver:              feature.NewResolver(backend),
		lowProcessorSleepUsec: DefaultLowProcessorSleepUsec,
		engineDir:             DefaultEngineDirName,
	}
	o.pipeline.Store(logger.NewBuilder().Add(logger.NewStdLogger()).Build())
	o.restart.Store(&restartRequest{})

	for _, opt := range opts {
		opt(o)
	}
	if o.instanceID == "" {
		o.instanceID = UUIDv7Generator{}.Generate()
	}
	o.stage.Store(int32(StageConstructed))
	return o
}

// Backend returns the platform back-end.
func (o *OS) Backend() Backend {
	return o.backend
}

// Name returns the back-end name.
func (o *OS) Name() string {
	return o.backend.Name()
}

// InstanceID returns the identifier generated for this process run.
func (o *OS) InstanceID() string {
	return o.instanceID
}

// SetCmdline records the executable path and arguments.
func (o *OS) SetCmdline(execPath string, args []string) {
	o.execPath = execPath
	o.cmdline = append([]string(nil), args...)
}

// ExecutablePath returns the path recorded by SetCmdline.
func (o *OS) ExecutablePath() string {
	return o.execPath
}

// CmdlineArgs returns a copy of the recorded arguments.
func (o *OS) CmdlineArgs() []string {
	return append([]string(nil), o.cmdline...)
}

func (o *OS) SetLowProcessorUsageMode(enabled bool) { o.lowProcessorMode = enabled }
func (o *OS) IsInLowProcessorUsageMode() bool       { return o.lowProcessorMode }

// SetLowProcessorUsageModeSleepUsec sets the per-frame sleep. Negative
// values are stored as 0.
func (o *OS) SetLowProcessorUsageModeSleepUsec(usec int) { o.lowProcessorSleepUsec = max(usec, 0) }

func (o *OS) LowProcessorUsageModeSleepUsec() int { return o.lowProcessorSleepUsec }

// SetVerbose sets the verbose flag. The flag gates nothing in the pipeline;
// producers consult IsStdoutVerbose before printing.
func (o *OS) SetVerbose(v bool)     { o.verbose = v }
func (o *OS) IsStdoutVerbose() bool { return o.verbose }

func (o *OS) SetSplashTickMsec(ms uint64) { o.splashTickMsec = ms }
func (o *OS) SplashTickMsec() uint64      { return o.splashTickMsec }

// ExitCode returns the code the host will hand to the operating system.
func (o *OS) ExitCode() int        { return o.exitCode }
func (o *OS) SetExitCode(code int) { o.exitCode = code }

// SetProject attaches the project configuration. It also becomes the last
// tier of feature resolution.
func (o *OS) SetProject(p Project) {
	o.project = p
	if p == nil {
		o.resolver.SetProject(nil)
		return
	}
	o.resolver.SetProject(p)
}

// HasFeature resolves a feature token. See feature.Resolver for the
// precedence chain.
func (o *OS) HasFeature(name string) bool {
	return o.resolver.Has(name)
}

// Features returns the resolver, for diagnostics and callback registration.
func (o *OS) Features() *feature.Resolver {
	return o.resolver
}

// SetFeatureCallback registers the external feature predicate. It may be
// set once per process.
func (o *OS) SetFeatureCallback(cb feature.Callback) error {
	return o.resolver.SetCallback(cb)
}
