package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Defaults supplies the conservative behavior of every defaulted Backend
// method. Back-ends embed it and override only what they really support:
//
//	type Backend struct {
//	    platform.Defaults
//	    ...
//	}
//
// Callers must treat these defaults as "unsupported", not as failures of
// the back-end.
type Defaults struct {
	// Stdin is read by StdinLine. Nil means os.Stdin.
	Stdin io.Reader
	// Stderr receives Alert output. Nil means os.Stderr.
	Stderr io.Writer

	mu     sync.Mutex
	reader *bufio.Reader
	src    io.Reader
}

func (d *Defaults) UnixTime() uint64        { return 0 }
func (d *Defaults) SystemTimeSecs() uint64  { return 0 }
func (d *Defaults) SystemTimeMsecs() uint64 { return 0 }
func (d *Defaults) Yield()                  {}
func (d *Defaults) ProcessID() int          { return -1 }

func (d *Defaults) SetCwd(dir string) error {
	return NewError(CodeCantOpen, "set_cwd", dir)
}

// Alert writes the message to stderr.
func (d *Defaults) Alert(text, title string) {
	w := d.Stderr
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "%s: %s\n", title, text)
}

// StdinLine reads one line from Stdin with the trailing newline removed.
// Non-blocking reads are not supported and return "". io.EOF is returned
// once the input is exhausted.
func (d *Defaults) StdinLine(block bool) (string, error) {
	if !block {
		return "", nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	src := d.Stdin
	if src == nil {
		src = os.Stdin
	}
	if d.reader == nil || d.src != src {
		d.reader = bufio.NewReader(src)
		d.src = src
	}

	line, err := d.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *Defaults) OpenDynamicLibrary(path string, setLibraryPath bool) (LibraryHandle, error) {
	return 0, Unavailable("open_dynamic_library")
}

func (d *Defaults) CloseDynamicLibrary(h LibraryHandle) error {
	return Unavailable("close_dynamic_library")
}

func (d *Defaults) LibrarySymbol(h LibraryHandle, name string, optional bool) (uintptr, error) {
	return 0, Unavailable("get_dynamic_library_symbol_handle")
}

func (d *Defaults) ShellOpen(uri string) error {
	return Unavailable("shell_open")
}

func (d *Defaults) MoveToTrash(path string) error {
	return NewError(CodeFailed, "move_to_trash", path)
}

func (d *Defaults) UniqueID() (string, error) {
	return "", Unavailable("unique_id")
}

func (d *Defaults) ProcessorCount() int { return 1 }
func (d *Defaults) CanUseThreads() bool { return threadsEnabled }
func (d *Defaults) ModelName() string   { return "GenericDevice" }
func (d *Defaults) Locale() string      { return "en" }
func (d *Defaults) DataPath() string    { return "." }
func (d *Defaults) ConfigPath() string  { return "." }
func (d *Defaults) CachePath() string   { return "." }

func (d *Defaults) SystemDir(dir SystemDir) string        { return "." }
func (d *Defaults) UserDataDir(req UserDirRequest) string { return "." }

func (d *Defaults) AudioDriverCount() int             { return 0 }
func (d *Defaults) AudioDriverName(driver int) string { return "" }

func (d *Defaults) PowerState() PowerState { return PowerStateUnknown }
func (d *Defaults) PowerSecondsLeft() int  { return -1 }
func (d *Defaults) PowerPercentLeft() int  { return -1 }

func (d *Defaults) RequestPermission(name string) bool { return true }
func (d *Defaults) IsUserFSPersistent() bool           { return true }
func (d *Defaults) FreeMemory() uint64                 { return 0 }
