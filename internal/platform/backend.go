package platform

import (
	"time"
)

// ExecOptions tunes Execute.
type ExecOptions struct {
	// ReadStderr merges the child's stderr into the captured output.
	ReadStderr bool
}

// ExecResult reports the outcome of Execute.
//
// For blocking runs Output and ExitCode are filled; for non-blocking runs
// only PID is meaningful.
type ExecResult struct {
	PID      int
	Output   string
	ExitCode int
}

// Date is a calendar date as reported by the back-end.
type Date struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
	DST     bool
}

// TimeOfDay is a wall-clock time as reported by the back-end.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeZoneInfo describes the local time zone. Bias is the offset from UTC
// in minutes.
type TimeZoneInfo struct {
	Bias int
	Name string
}

// SystemDir names a user-visible system directory.
type SystemDir int

const (
	SystemDirDesktop SystemDir = iota
	SystemDirDCIM
	SystemDirDocuments
	SystemDirDownloads
	SystemDirMovies
	SystemDirMusic
	SystemDirPictures
	SystemDirRingtones
)

var systemDirNames = [...]string{"desktop", "dcim", "documents", "downloads", "movies", "music", "pictures", "ringtones"}

func (d SystemDir) String() string {
	if d < 0 || int(d) >= len(systemDirNames) {
		return "unknown"
	}
	return systemDirNames[d]
}

// ParseSystemDir maps a name produced by SystemDir.String back to its value.
func ParseSystemDir(name string) (SystemDir, bool) {
	for i, n := range systemDirNames {
		if n == name {
			return SystemDir(i), true
		}
	}
	return 0, false
}

// PowerState is the battery/charger status.
type PowerState int

const (
	PowerStateUnknown PowerState = iota
	PowerStateOnBattery
	PowerStateNoBattery
	PowerStateCharging
	PowerStateCharged
)

var powerStateNames = [...]string{"unknown", "on-battery", "no-battery", "charging", "charged"}

func (p PowerState) String() string {
	if p < 0 || int(p) >= len(powerStateNames) {
		return "unknown"
	}
	return powerStateNames[p]
}

// LibraryHandle is an opaque handle to a loaded dynamic library.
type LibraryHandle uintptr

// UserDirRequest carries everything a back-end needs to place the
// per-application user data directory.
type UserDirRequest struct {
	// EngineDir is the engine's directory name under the data path.
	EngineDir string
	// App is the project name made safe for use as a directory name.
	App string
	// UseCustom selects CustomDir instead of the default hierarchy.
	UseCustom bool
	// CustomDir is the project's custom directory name (separators allowed).
	CustomDir string
	// Fallback is returned as-is when the project has no name.
	Fallback string
}

// Backend is the contract every platform back-end implements.
//
// The first block of methods has no default and must be implemented by
// every back-end. The remaining methods are supplied by Defaults, which
// back-ends embed and override where real support exists.
type Backend interface {
	// Name identifies the back-end. The name is itself a feature token.
	Name() string

	// InitializeCore sets up everything that does not depend on audio or
	// display subsystems. It has no error channel; failure is fatal.
	InitializeCore()

	// InitializeRuntime brings up the platform subsystems using the
	// requested audio driver. A non-nil error stops the process from
	// reaching the running stage.
	InitializeRuntime(audioDriver int) error

	// FinalizeRuntime releases what InitializeRuntime acquired.
	FinalizeRuntime()

	// FinalizeCore releases what InitializeCore acquired.
	FinalizeCore()

	// CheckInternalFeature reports back-end specific feature tokens.
	CheckInternalFeature(name string) bool

	Execute(path string, args []string, blocking bool, opts ExecOptions) (ExecResult, error)
	Kill(pid int) error
	HasEnv(name string) bool
	Getenv(name string) string
	Setenv(name, value string) bool

	Date(local bool) Date
	TimeOfDay(local bool) TimeOfDay
	TimeZone() TimeZoneInfo
	TicksUsec() uint64
	DelayUsec(usec uint32)

	// Defaulted.

	UnixTime() uint64
	SystemTimeSecs() uint64
	SystemTimeMsecs() uint64
	Yield()
	ProcessID() int
	SetCwd(dir string) error
	Alert(text, title string)
	StdinLine(block bool) (string, error)
	OpenDynamicLibrary(path string, setLibraryPath bool) (LibraryHandle, error)
	CloseDynamicLibrary(h LibraryHandle) error
	LibrarySymbol(h LibraryHandle, name string, optional bool) (uintptr, error)
	ShellOpen(uri string) error
	MoveToTrash(path string) error
	UniqueID() (string, error)
	ProcessorCount() int
	CanUseThreads() bool
	ModelName() string
	Locale() string
	DataPath() string
	ConfigPath() string
	CachePath() string
	SystemDir(dir SystemDir) string
	UserDataDir(req UserDirRequest) string
	AudioDriverCount() int
	AudioDriverName(driver int) string
	PowerState() PowerState
	PowerSecondsLeft() int
	PowerPercentLeft() int
	RequestPermission(name string) bool
	IsUserFSPersistent() bool
	FreeMemory() uint64
}
