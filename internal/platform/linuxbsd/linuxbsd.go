//go:build linux || freebsd || openbsd || netbsd || dragonfly

// Package linuxbsd is the platform back-end for Linux and the BSDs. It
// follows freedesktop conventions: XDG base directories, xdg-user-dir,
// xdg-open and the usual trash and dialog helpers.
package linuxbsd

import (
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"golang.org/x/sys/unix"

	"github.com/roach88/engineos/internal/platform"
)

// Name is the back-end name, which is also a feature token.
const Name = "LinuxBSD"

// Runner starts an external helper. Backend.Execute is the default.
type Runner func(path string, args []string, blocking bool) (platform.ExecResult, error)

// Backend implements platform.Backend on Linux and BSD systems.
type Backend struct {
	platform.Defaults

	start    time.Time
	sysfs    fs.FS
	lookPath func(string) (string, error)
	run      Runner
	audio    AudioInitializer

	audioDriver int
}

// Option configures a Backend.
type Option func(*Backend)

// WithSysFS replaces the /sys tree used for power and device queries.
func WithSysFS(fsys fs.FS) Option {
	return func(b *Backend) {
		b.sysfs = fsys
	}
}

// WithLookPath replaces exec.LookPath when probing for helper programs.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(b *Backend) {
		b.lookPath = fn
	}
}

// WithRunner routes helper programs (xdg-open, trash, dialogs,
// xdg-user-dir) through fn.
func WithRunner(fn Runner) Option {
	return func(b *Backend) {
		b.run = fn
	}
}

// WithAudioInitializer sets the audio collaborator started by
// InitializeRuntime.
func WithAudioInitializer(a AudioInitializer) Option {
	return func(b *Backend) {
		b.audio = a
	}
}

// New creates the back-end. Ticks count from this call.
func New(opts ...Option) *Backend {
	b := &Backend{
		start:       time.Now(),
		sysfs:       os.DirFS("/sys"),
		lookPath:    exec.LookPath,
		audioDriver: -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.run == nil {
		b.run = func(path string, args []string, blocking bool) (platform.ExecResult, error) {
			return b.Execute(path, args, blocking, platform.ExecOptions{})
		}
	}
	return b
}

func (b *Backend) Name() string { return Name }

func (b *Backend) InitializeCore() {
	slog.Debug("linuxbsd core initialized", "kernel", kernelName(), "pid", os.Getpid())
}

// InitializeRuntime starts audio: the requested driver first, then every
// other one in order.
func (b *Backend) InitializeRuntime(audioDriver int) error {
	if b.audio == nil {
		return nil
	}
	idx, err := initAudio(b.audio, audioDriver)
	if err != nil {
		return err
	}
	b.audioDriver = idx
	slog.Debug("linuxbsd audio initialized", "driver", audioDrivers[idx])
	return nil
}

func (b *Backend) FinalizeRuntime() {
	if b.audio != nil && b.audioDriver >= 0 {
		b.audio.Finish()
		b.audioDriver = -1
	}
}

func (b *Backend) FinalizeCore() {
	slog.Debug("linuxbsd core finalized")
}

// CheckInternalFeature answers the desktop PC tokens, the kernel name
// (e.g. "Linux", "FreeBSD") and "X11" when an X display is reachable.
func (b *Backend) CheckInternalFeature(name string) bool {
	switch name {
	case "pc", "s3tc", "bptc":
		return true
	case "X11":
		return b.HasEnv("DISPLAY")
	}
	return name != "" && name == kernelName()
}

func kernelName() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Sysname[:])
}

var _ platform.Backend = (*Backend)(nil)
