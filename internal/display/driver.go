package display

import (
	"log/slog"
	"sync"
)

// VSyncSwitcher applies a vsync change somewhere other than the calling
// goroutine, typically a render thread that owns the GL context.
type VSyncSwitcher func(enabled bool)

// Console is where fallback dialogs prompt and read answers.
// *platform.OS satisfies it.
type Console interface {
	Print(format string, args ...any)
	StdinLine(block bool) (string, error)
}

// MainLoop is driven by the host once the runtime is running.
type MainLoop interface {
	// Init runs once before the first iteration.
	Init()
	// Iteration advances one frame. Returning true ends the loop.
	Iteration(deltaUsec uint64) bool
	// Finish runs once after the last iteration.
	Finish()
}

// Driver is the display abstraction: window and input state in front of a
// windowing Backend. Backend methods are promoted; Driver adds the state
// every back-end shares.
type Driver struct {
	Backend

	console Console

	mu           sync.Mutex
	vsync        bool
	switcher     VSyncSwitcher
	orientation  ScreenOrientation
	mouseMode    MouseMode
	keepScreenOn bool
	noWindow     bool
	clipboard    string
	mainLoop     MainLoop
}

// Option configures a Driver at construction.
type Option func(*Driver)

// WithVSyncSwitcher routes SetUseVSync through fn instead of the back-end.
func WithVSyncSwitcher(fn VSyncSwitcher) Option {
	return func(d *Driver) {
		d.switcher = fn
	}
}

// WithConsole sets where dialogs prompt and read input.
func WithConsole(c Console) Option {
	return func(d *Driver) {
		d.console = c
	}
}

// WithNoWindow starts the driver in no-window mode.
func WithNoWindow(enabled bool) Option {
	return func(d *Driver) {
		d.noWindow = enabled
	}
}

// New creates a Driver over backend. The screen is kept on by default.
func New(backend Backend, opts ...Option) *Driver {
	d := &Driver{
		Backend:      backend,
		orientation:  OrientationLandscape,
		mouseMode:    MouseModeVisible,
		keepScreenOn: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetVSyncSwitcher replaces the vsync strategy. Nil restores the direct
// back-end call.
func (d *Driver) SetVSyncSwitcher(fn VSyncSwitcher) {
	d.mu.Lock()
	d.switcher = fn
	d.mu.Unlock()
}

// SetUseVSync records the flag, then applies it through the switcher if
// one is installed and through the back-end otherwise.
func (d *Driver) SetUseVSync(enabled bool) {
	d.mu.Lock()
	d.vsync = enabled
	fn := d.switcher
	d.mu.Unlock()

	if fn != nil {
		fn(enabled)
		return
	}
	d.Backend.SetUseVSync(enabled)
}

func (d *Driver) IsVSyncEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.vsync
}

// CenterWindow moves the window to the middle of its current screen.
// Fullscreen windows are left alone.
func (d *Driver) CenterWindow() {
	if d.IsWindowFullscreen() {
		return
	}
	screen := d.CurrentScreen()
	origin := d.ScreenPosition(screen)
	scr := d.ScreenSize(screen)
	wnd := d.RealWindowSize()

	p := Point{
		X: centered(origin.X, scr.Width, wnd.Width),
		Y: centered(origin.Y, scr.Height, wnd.Height),
	}
	slog.Debug("center window", "screen", screen, "position", p)
	d.SetWindowPosition(p)
}

// centered is origin + (screen-window)/2 in floating point, truncated once.
func centered(origin, screen, window int) int {
	return int(float64(origin) + float64(screen-window)/2)
}

func (d *Driver) SetMouseMode(m MouseMode) {
	d.mu.Lock()
	d.mouseMode = m
	d.mu.Unlock()
}

func (d *Driver) MouseMode() MouseMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mouseMode
}

func (d *Driver) SetScreenOrientation(o ScreenOrientation) {
	d.mu.Lock()
	d.orientation = o
	d.mu.Unlock()
}

func (d *Driver) ScreenOrientation() ScreenOrientation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.orientation
}

func (d *Driver) SetKeepScreenOn(enabled bool) {
	d.mu.Lock()
	d.keepScreenOn = enabled
	d.mu.Unlock()
}

func (d *Driver) IsKeepScreenOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keepScreenOn
}

func (d *Driver) SetNoWindowMode(enabled bool) {
	d.mu.Lock()
	d.noWindow = enabled
	d.mu.Unlock()
}

func (d *Driver) IsNoWindowModeEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.noWindow
}

// SetClipboard stores text in the system clipboard when the back-end has
// one, and in a process-local buffer otherwise.
func (d *Driver) SetClipboard(text string) {
	if cb, ok := d.Backend.(Clipboard); ok {
		cb.SetClipboard(text)
		return
	}
	d.mu.Lock()
	d.clipboard = text
	d.mu.Unlock()
}

func (d *Driver) Clipboard() string {
	if cb, ok := d.Backend.(Clipboard); ok {
		return cb.Clipboard()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clipboard
}

func (d *Driver) SetMainLoop(ml MainLoop) {
	d.mu.Lock()
	d.mainLoop = ml
	d.mu.Unlock()
}

func (d *Driver) MainLoop() MainLoop {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mainLoop
}
