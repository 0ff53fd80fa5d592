//go:build linux || freebsd || openbsd || netbsd || dragonfly

package linuxbsd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	"github.com/roach88/engineos/internal/platform"
)

// Execute runs path with args. A blocking run waits and captures stdout
// (plus stderr with opts.ReadStderr); a non-blocking run returns the child
// PID and reaps the child in the background.
func (b *Backend) Execute(path string, args []string, blocking bool, opts platform.ExecOptions) (platform.ExecResult, error) {
	cmd := exec.Command(path, args...)

	if !blocking {
		if err := cmd.Start(); err != nil {
			return platform.ExecResult{}, platform.WrapError(platform.CodeCantFork, "execute", err)
		}
		pid := cmd.Process.Pid
		go func() {
			if err := cmd.Wait(); err != nil {
				slog.Debug("child exited", "path", path, "pid", pid, "error", err)
			}
		}()
		return platform.ExecResult{PID: pid}, nil
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if opts.ReadStderr {
		cmd.Stderr = &out
	}
	err := cmd.Run()

	res := platform.ExecResult{Output: out.String()}
	if cmd.Process != nil {
		res.PID = cmd.Process.Pid
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, platform.WrapError(platform.CodeCantFork, "execute", err)
	}
	return res, nil
}

// Kill sends SIGKILL to pid.
func (b *Backend) Kill(pid int) error {
	if err := unix.Kill(pid, unix.SIGKILL); err != nil {
		return platform.WrapError(platform.CodeFailed, "kill", err)
	}
	return nil
}

func (b *Backend) ProcessID() int { return os.Getpid() }

func (b *Backend) SetCwd(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return platform.WrapError(platform.CodeCantOpen, "set_cwd", err)
	}
	return nil
}

func (b *Backend) HasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

func (b *Backend) Getenv(name string) string { return os.Getenv(name) }

func (b *Backend) Setenv(name, value string) bool {
	return os.Setenv(name, value) == nil
}

func now(local bool) time.Time {
	if local {
		return time.Now()
	}
	return time.Now().UTC()
}

func (b *Backend) Date(local bool) platform.Date {
	t := now(local)
	return platform.Date{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		DST:     t.IsDST(),
	}
}

func (b *Backend) TimeOfDay(local bool) platform.TimeOfDay {
	t := now(local)
	return platform.TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// TimeZone reports the local zone. Bias is minutes east of UTC.
func (b *Backend) TimeZone() platform.TimeZoneInfo {
	name, offset := time.Now().Zone()
	return platform.TimeZoneInfo{Bias: offset / 60, Name: name}
}

func (b *Backend) UnixTime() uint64        { return uint64(time.Now().Unix()) }
func (b *Backend) SystemTimeSecs() uint64  { return uint64(time.Now().Unix()) }
func (b *Backend) SystemTimeMsecs() uint64 { return uint64(time.Now().UnixMilli()) }

// TicksUsec is the monotonic time since New.
func (b *Backend) TicksUsec() uint64 {
	return uint64(time.Since(b.start).Microseconds())
}

func (b *Backend) DelayUsec(usec uint32) {
	time.Sleep(time.Duration(usec) * time.Microsecond)
}

func (b *Backend) Yield() { runtime.Gosched() }
