// Package headless is a display back-end without a window system. It keeps
// window geometry in memory, which is enough for servers, CI and tools that
// never draw.
package headless

import (
	"sync"

	"github.com/roach88/engineos/internal/display"
)

// Name is the back-end name.
const Name = "Headless"

// DefaultScreen is the single screen reported when none is configured.
var DefaultScreen = display.Rect{Size: display.Size{Width: 1024, Height: 600}}

// Backend is the headless display back-end.
type Backend struct {
	display.Defaults

	mu         sync.Mutex
	screens    []display.Rect
	current    int
	position   display.Point
	size       display.Size
	decoration display.Size
	fullscreen bool
	title      string
	vsync      bool
	events     int
}

// Option configures a Backend.
type Option func(*Backend)

// WithScreens replaces the screen layout.
func WithScreens(screens ...display.Rect) Option {
	return func(b *Backend) {
		b.screens = append([]display.Rect(nil), screens...)
	}
}

// WithWindowSize sets the initial client area size.
func WithWindowSize(s display.Size) Option {
	return func(b *Backend) {
		b.size = s
	}
}

// WithDecoration sets the extra extent added by window decorations.
func WithDecoration(s display.Size) Option {
	return func(b *Backend) {
		b.decoration = s
	}
}

// New creates a headless back-end with one screen and a window filling it.
func New(opts ...Option) *Backend {
	b := &Backend{
		screens: []display.Rect{DefaultScreen},
		size:    DefaultScreen.Size,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Name() string { return Name }

func (b *Backend) ScreenCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.screens)
}

func (b *Backend) CurrentScreen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// SetCurrentScreen moves the window to screen. Out-of-range values are
// ignored.
func (b *Backend) SetCurrentScreen(screen int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if screen >= 0 && screen < len(b.screens) {
		b.current = screen
	}
}

func (b *Backend) ScreenPosition(screen int) display.Point {
	return b.screen(screen).Position
}

func (b *Backend) ScreenSize(screen int) display.Size {
	return b.screen(screen).Size
}

func (b *Backend) screen(i int) display.Rect {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.screens) {
		return display.Rect{}
	}
	return b.screens[i]
}

func (b *Backend) WindowPosition() display.Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

func (b *Backend) SetWindowPosition(p display.Point) {
	b.mu.Lock()
	b.position = p
	b.mu.Unlock()
}

func (b *Backend) WindowSize() display.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *Backend) SetWindowSize(s display.Size) {
	b.mu.Lock()
	b.size = s
	b.mu.Unlock()
}

func (b *Backend) RealWindowSize() display.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return display.Size{
		Width:  b.size.Width + b.decoration.Width,
		Height: b.size.Height + b.decoration.Height,
	}
}

func (b *Backend) IsWindowFullscreen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fullscreen
}

func (b *Backend) SetWindowFullscreen(enabled bool) {
	b.mu.Lock()
	b.fullscreen = enabled
	b.mu.Unlock()
}

func (b *Backend) SetWindowTitle(title string) {
	b.mu.Lock()
	b.title = title
	b.mu.Unlock()
}

// WindowTitle returns the last title set.
func (b *Backend) WindowTitle() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

func (b *Backend) SetUseVSync(enabled bool) {
	b.mu.Lock()
	b.vsync = enabled
	b.mu.Unlock()
}

// VSync reports the last value applied through SetUseVSync.
func (b *Backend) VSync() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vsync
}

// ProcessEvents has nothing to drain; it counts calls.
func (b *Backend) ProcessEvents() {
	b.mu.Lock()
	b.events++
	b.mu.Unlock()
}

// EventPumps returns how many times ProcessEvents ran.
func (b *Backend) EventPumps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.events
}

var _ display.Backend = (*Backend)(nil)
