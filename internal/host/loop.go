package host

// FrameLoop is a display.MainLoop that runs a fixed number of frames, or
// until cancelled when Frames is zero. OnFrame, if set, runs every frame.
type FrameLoop struct {
	Frames  int
	OnFrame func(frame int, deltaUsec uint64)

	frame int
}

func (l *FrameLoop) Init() { l.frame = 0 }

func (l *FrameLoop) Iteration(deltaUsec uint64) bool {
	l.frame++
	if l.OnFrame != nil {
		l.OnFrame(l.frame, deltaUsec)
	}
	return l.Frames > 0 && l.frame >= l.Frames
}

func (l *FrameLoop) Finish() {}

// Count returns how many frames ran.
func (l *FrameLoop) Count() int { return l.frame }
