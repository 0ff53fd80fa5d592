// Package display is the window and input abstraction. A Driver wraps a
// windowing Backend and keeps the state shared by all back-ends: vsync,
// orientation, mouse mode, keep-screen-on, no-window mode, clipboard and
// the main loop handed over by the host.
//
// Capabilities a back-end lacks are answered by Defaults: no virtual
// keyboard, arrow cursor, no native video, GLES2/GLES3 video drivers.
package display
