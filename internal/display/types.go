package display

import "fmt"

// Point is a position in screen pixels.
type Point struct {
	X, Y int
}

// Size is an extent in screen pixels.
type Size struct {
	Width, Height int
}

// Rect is a screen rectangle.
type Rect struct {
	Position Point
	Size     Size
}

// MouseMode controls cursor visibility and confinement.
type MouseMode int

const (
	MouseModeVisible MouseMode = iota
	MouseModeHidden
	MouseModeCaptured
	MouseModeConfined
)

var mouseModeNames = [...]string{"visible", "hidden", "captured", "confined"}

func (m MouseMode) String() string {
	if m < 0 || int(m) >= len(mouseModeNames) {
		return fmt.Sprintf("MouseMode(%d)", int(m))
	}
	return mouseModeNames[m]
}

// ScreenOrientation is the requested orientation on devices that rotate.
type ScreenOrientation int

const (
	OrientationLandscape ScreenOrientation = iota
	OrientationPortrait
	OrientationReverseLandscape
	OrientationReversePortrait
	OrientationSensorLandscape
	OrientationSensorPortrait
	OrientationSensor
)

var orientationNames = [...]string{
	"landscape",
	"portrait",
	"reverse-landscape",
	"reverse-portrait",
	"sensor-landscape",
	"sensor-portrait",
	"sensor",
}

func (o ScreenOrientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("ScreenOrientation(%d)", int(o))
	}
	return orientationNames[o]
}

// CursorShape selects the system cursor image.
type CursorShape int

const (
	CursorArrow CursorShape = iota
	CursorIBeam
	CursorPointingHand
	CursorCross
	CursorWait
	CursorBusy
	CursorDrag
	CursorCanDrop
	CursorForbidden
	CursorVSize
	CursorHSize
	CursorBDiagSize
	CursorFDiagSize
	CursorMove
	CursorVSplit
	CursorHSplit
	CursorHelp
)

var cursorNames = [...]string{
	"arrow", "ibeam", "pointing-hand", "cross", "wait", "busy", "drag",
	"can-drop", "forbidden", "vsize", "hsize", "bdiagsize", "fdiagsize",
	"move", "vsplit", "hsplit", "help",
}

func (c CursorShape) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return fmt.Sprintf("CursorShape(%d)", int(c))
	}
	return cursorNames[c]
}

// LatinKeyboardVariant is the layout of the latin part of the keyboard.
type LatinKeyboardVariant int

const (
	KeyboardQWERTY LatinKeyboardVariant = iota
	KeyboardQWERTZ
	KeyboardAZERTY
	KeyboardQZERTY
	KeyboardDvorak
	KeyboardNeo
	KeyboardColemak
)

var keyboardNames = [...]string{"QWERTY", "QWERTZ", "AZERTY", "QZERTY", "DVORAK", "NEO", "COLEMAK"}

func (k LatinKeyboardVariant) String() string {
	if k < 0 || int(k) >= len(keyboardNames) {
		return fmt.Sprintf("LatinKeyboardVariant(%d)", int(k))
	}
	return keyboardNames[k]
}

// Video drivers known to every back-end.
const (
	VideoDriverGLES2 = iota
	VideoDriverGLES3
)

// InvalidVideoDriver is the name reported for an out-of-range driver index.
const InvalidVideoDriver = "INVALID VIDEO DRIVER"

// ParseScreenOrientation maps a name produced by ScreenOrientation.String
// back to its value.
func ParseScreenOrientation(name string) (ScreenOrientation, bool) {
	for i, n := range orientationNames {
		if n == name {
			return ScreenOrientation(i), true
		}
	}
	return 0, false
}
