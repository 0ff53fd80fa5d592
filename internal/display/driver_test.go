package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/engineos/internal/display"
	"github.com/roach88/engineos/internal/display/headless"
	"github.com/roach88/engineos/internal/platform"
)

func TestCenterWindow(t *testing.T) {
	tests := []struct {
		name   string
		screen display.Rect
		window display.Size
		deco   display.Size
		want   display.Point
	}{
		{
			name:   "full hd",
			screen: display.Rect{Size: display.Size{Width: 1920, Height: 1080}},
			window: display.Size{Width: 800, Height: 600},
			want:   display.Point{X: 560, Y: 240},
		},
		{
			name:   "screen offset",
			screen: display.Rect{Position: display.Point{X: 1920, Y: 0}, Size: display.Size{Width: 1280, Height: 1024}},
			window: display.Size{Width: 640, Height: 480},
			want:   display.Point{X: 2240, Y: 272},
		},
		{
			name:   "odd remainder truncates",
			screen: display.Rect{Size: display.Size{Width: 1001, Height: 701}},
			window: display.Size{Width: 500, Height: 300},
			want:   display.Point{X: 250, Y: 200},
		},
		{
			name:   "decorations count",
			screen: display.Rect{Size: display.Size{Width: 1920, Height: 1080}},
			window: display.Size{Width: 800, Height: 570},
			deco:   display.Size{Width: 0, Height: 30},
			want:   display.Point{X: 560, Y: 240},
		},
		{
			name:   "window larger than screen",
			screen: display.Rect{Size: display.Size{Width: 800, Height: 600}},
			window: display.Size{Width: 1000, Height: 800},
			want:   display.Point{X: -100, Y: -100},
		},
		{
			name:   "screen left of primary",
			screen: display.Rect{Position: display.Point{X: -1920, Y: 0}, Size: display.Size{Width: 1920, Height: 1080}},
			window: display.Size{Width: 801, Height: 600},
			want:   display.Point{X: -1360, Y: 240},
		},
		{
			name:   "odd overflow on offset screen",
			screen: display.Rect{Position: display.Point{X: 1000, Y: 0}, Size: display.Size{Width: 800, Height: 600}},
			window: display.Size{Width: 1001, Height: 600},
			want:   display.Point{X: 899, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := headless.New(
				headless.WithScreens(tt.screen),
				headless.WithWindowSize(tt.window),
				headless.WithDecoration(tt.deco),
			)
			d := display.New(b)

			d.CenterWindow()
			assert.Equal(t, tt.want, d.WindowPosition())
		})
	}
}

func TestCenterWindow_FullscreenUnchanged(t *testing.T) {
	b := headless.New(
		headless.WithScreens(display.Rect{Size: display.Size{Width: 1920, Height: 1080}}),
		headless.WithWindowSize(display.Size{Width: 800, Height: 600}),
	)
	d := display.New(b)
	d.SetWindowPosition(display.Point{X: 7, Y: 9})
	d.SetWindowFullscreen(true)

	d.CenterWindow()
	assert.Equal(t, display.Point{X: 7, Y: 9}, d.WindowPosition())
}

func TestCenterWindow_UsesCurrentScreen(t *testing.T) {
	b := headless.New(
		headless.WithScreens(
			display.Rect{Size: display.Size{Width: 1920, Height: 1080}},
			display.Rect{Position: display.Point{X: 1920}, Size: display.Size{Width: 1920, Height: 1080}},
		),
		headless.WithWindowSize(display.Size{Width: 800, Height: 600}),
	)
	b.SetCurrentScreen(1)
	d := display.New(b)

	d.CenterWindow()
	assert.Equal(t, display.Point{X: 2480, Y: 240}, d.WindowPosition())
}

func TestSetUseVSync_BackendByDefault(t *testing.T) {
	b := headless.New()
	d := display.New(b)
	assert.False(t, d.IsVSyncEnabled())

	d.SetUseVSync(true)
	assert.True(t, d.IsVSyncEnabled())
	assert.True(t, b.VSync())
}

func TestSetUseVSync_SwitcherReplacesBackend(t *testing.T) {
	b := headless.New()
	var got []bool
	d := display.New(b, display.WithVSyncSwitcher(func(enabled bool) {
		got = append(got, enabled)
	}))

	d.SetUseVSync(true)
	d.SetUseVSync(false)
	assert.Equal(t, []bool{true, false}, got)
	assert.False(t, b.VSync())
	assert.False(t, d.IsVSyncEnabled())

	d.SetVSyncSwitcher(nil)
	d.SetUseVSync(true)
	assert.True(t, b.VSync())
	assert.Len(t, got, 2)
}

func TestDriver_StateDefaults(t *testing.T) {
	d := display.New(headless.New())

	assert.Equal(t, display.MouseModeVisible, d.MouseMode())
	assert.Equal(t, display.OrientationLandscape, d.ScreenOrientation())
	assert.True(t, d.IsKeepScreenOn())
	assert.False(t, d.IsNoWindowModeEnabled())
	assert.Equal(t, "", d.Clipboard())
	assert.Nil(t, d.MainLoop())

	d.SetMouseMode(display.MouseModeCaptured)
	d.SetScreenOrientation(display.OrientationSensor)
	d.SetKeepScreenOn(false)
	d.SetNoWindowMode(true)
	d.SetClipboard("copied")

	assert.Equal(t, display.MouseModeCaptured, d.MouseMode())
	assert.Equal(t, display.OrientationSensor, d.ScreenOrientation())
	assert.False(t, d.IsKeepScreenOn())
	assert.True(t, d.IsNoWindowModeEnabled())
	assert.Equal(t, "copied", d.Clipboard())

	assert.True(t, display.New(headless.New(), display.WithNoWindow(true)).IsNoWindowModeEnabled())
}

type clipboardBackend struct {
	*headless.Backend
	text string
}

func (c *clipboardBackend) SetClipboard(text string) { c.text = "sys:" + text }
func (c *clipboardBackend) Clipboard() string        { return c.text }

func TestClipboard_PrefersBackend(t *testing.T) {
	b := &clipboardBackend{Backend: headless.New()}
	d := display.New(b)

	d.SetClipboard("x")
	assert.Equal(t, "sys:x", b.text)
	assert.Equal(t, "sys:x", d.Clipboard())
}

func TestDefaults_Capabilities(t *testing.T) {
	d := display.New(headless.New())

	assert.False(t, d.HasVirtualKeyboard())
	assert.Equal(t, 0, d.VirtualKeyboardHeight())
	d.SetCursorShape(display.CursorIBeam)
	assert.Equal(t, display.CursorArrow, d.CursorShape())

	err := d.NativeVideoPlay("intro.webm", 1, "", "")
	assert.True(t, platform.IsFailed(err))
	assert.False(t, d.NativeVideoIsPlaying())

	assert.Equal(t, "Default Joypad", d.JoyGUID(0))
	assert.True(t, d.IsJoyKnown(3))
	assert.Equal(t, display.KeyboardQWERTY, d.LatinKeyboardVariant())
	assert.False(t, d.HasTouchscreenUIHint())

	require.Equal(t, 2, d.VideoDriverCount())
	assert.Equal(t, "GLES2", d.VideoDriverName(display.VideoDriverGLES2))
	assert.Equal(t, "GLES3", d.VideoDriverName(display.VideoDriverGLES3))
	assert.Equal(t, display.InvalidVideoDriver, d.VideoDriverName(2))
	assert.Equal(t, display.InvalidVideoDriver, d.VideoDriverName(-1))
}

type countingLoop struct{}

func (l *countingLoop) Init()                 {}
func (l *countingLoop) Iteration(uint64) bool { return false }
func (l *countingLoop) Finish()               {}

func TestMainLoopHolder(t *testing.T) {
	d := display.New(headless.New())
	ml := &countingLoop{}
	d.SetMainLoop(ml)
	assert.Same(t, ml, d.MainLoop())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "captured", display.MouseModeCaptured.String())
	assert.Equal(t, "reverse-portrait", display.OrientationReversePortrait.String())
	assert.Equal(t, "pointing-hand", display.CursorPointingHand.String())
	assert.Equal(t, "DVORAK", display.KeyboardDvorak.String())
	assert.Equal(t, "MouseMode(9)", display.MouseMode(9).String())
}
