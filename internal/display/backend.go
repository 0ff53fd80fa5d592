package display

import (
	"image"

	"github.com/roach88/engineos/internal/platform"
)

// Backend is the contract a windowing back-end implements.
//
// The first block has no default. The rest is supplied by Defaults, which
// back-ends embed.
type Backend interface {
	Name() string

	ScreenCount() int
	CurrentScreen() int
	ScreenPosition(screen int) Point
	ScreenSize(screen int) Size

	WindowPosition() Point
	SetWindowPosition(p Point)
	WindowSize() Size
	SetWindowSize(s Size)
	// RealWindowSize includes decorations.
	RealWindowSize() Size
	IsWindowFullscreen() bool
	SetWindowFullscreen(enabled bool)
	SetWindowTitle(title string)

	// SetUseVSync switches vsync on the calling goroutine.
	SetUseVSync(enabled bool)

	// ProcessEvents drains pending window system events.
	ProcessEvents()

	// Defaulted.

	HasVirtualKeyboard() bool
	ShowVirtualKeyboard(existing string, area Rect)
	HideVirtualKeyboard()
	VirtualKeyboardHeight() int
	SetCursorShape(shape CursorShape)
	CursorShape() CursorShape
	SetCustomMouseCursor(img image.Image, shape CursorShape, hotspot Point)
	SetIcon(img image.Image)
	SetContext(ctx int)
	ReleaseRenderingThread()
	MakeRenderingThread()
	SwapBuffers()
	NativeVideoPlay(path string, volume float32, audioTrack, subtitleTrack string) error
	NativeVideoIsPlaying() bool
	NativeVideoPause()
	NativeVideoUnpause()
	NativeVideoStop()
	LatinKeyboardVariant() LatinKeyboardVariant
	IsJoyKnown(device int) bool
	JoyGUID(device int) string
	HasTouchscreenUIHint() bool
	VideoDriverCount() int
	VideoDriverName(driver int) string
}

// Clipboard is implemented by back-ends with access to a system clipboard.
// Without it the Driver keeps a process-local clipboard.
type Clipboard interface {
	SetClipboard(text string)
	Clipboard() string
}

// Defaults supplies the defaulted half of Backend.
type Defaults struct{}

func (Defaults) HasVirtualKeyboard() bool                       { return false }
func (Defaults) ShowVirtualKeyboard(existing string, area Rect) {}
func (Defaults) HideVirtualKeyboard()                           {}
func (Defaults) VirtualKeyboardHeight() int                     { return 0 }
func (Defaults) SetCursorShape(shape CursorShape)               {}
func (Defaults) CursorShape() CursorShape                       { return CursorArrow }

func (Defaults) SetCustomMouseCursor(img image.Image, shape CursorShape, hotspot Point) {}
func (Defaults) SetIcon(img image.Image)                                                {}

func (Defaults) SetContext(ctx int)      {}
func (Defaults) ReleaseRenderingThread() {}
func (Defaults) MakeRenderingThread()    {}
func (Defaults) SwapBuffers()            {}

// NativeVideoPlay fails: no back-end plays video by default.
func (Defaults) NativeVideoPlay(path string, volume float32, audioTrack, subtitleTrack string) error {
	return platform.NewError(platform.CodeFailed, "native_video_play", path)
}

func (Defaults) NativeVideoIsPlaying() bool { return false }
func (Defaults) NativeVideoPause()          {}
func (Defaults) NativeVideoUnpause()        {}
func (Defaults) NativeVideoStop()           {}

func (Defaults) LatinKeyboardVariant() LatinKeyboardVariant { return KeyboardQWERTY }
func (Defaults) IsJoyKnown(device int) bool                 { return true }
func (Defaults) JoyGUID(device int) string                  { return "Default Joypad" }
func (Defaults) HasTouchscreenUIHint() bool                 { return false }
func (Defaults) VideoDriverCount() int                      { return 2 }

func (Defaults) VideoDriverName(driver int) string {
	switch driver {
	case VideoDriverGLES2:
		return "GLES2"
	case VideoDriverGLES3:
		return "GLES3"
	default:
		return InvalidVideoDriver
	}
}
