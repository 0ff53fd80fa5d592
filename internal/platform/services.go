package platform

import "runtime"

// Process control.

// Execute runs path with args through the back-end.
func (o *OS) Execute(path string, args []string, blocking bool, opts ExecOptions) (ExecResult, error) {
	return o.backend.Execute(path, args, blocking, opts)
}

func (o *OS) Kill(pid int) error              { return o.backend.Kill(pid) }
func (o *OS) ProcessID() int                  { return o.backend.ProcessID() }
func (o *OS) SetCwd(dir string) error         { return o.backend.SetCwd(dir) }
func (o *OS) HasEnv(name string) bool         { return o.backend.HasEnv(name) }
func (o *OS) Getenv(name string) string       { return o.backend.Getenv(name) }
func (o *OS) Setenv(name, v string) bool      { return o.backend.Setenv(name, v) }
func (o *OS) Alert(text, title string)        { o.backend.Alert(text, title) }
func (o *OS) ShellOpen(uri string) error      { return o.backend.ShellOpen(uri) }
func (o *OS) MoveToTrash(p string) error      { return o.backend.MoveToTrash(p) }
func (o *OS) RequestPermission(n string) bool { return o.backend.RequestPermission(n) }

// StdinLine reads one line of standard input through the back-end.
func (o *OS) StdinLine(block bool) (string, error) {
	return o.backend.StdinLine(block)
}

// Time.

func (o *OS) Date(local bool) Date           { return o.backend.Date(local) }
func (o *OS) TimeOfDay(local bool) TimeOfDay { return o.backend.TimeOfDay(local) }
func (o *OS) TimeZone() TimeZoneInfo         { return o.backend.TimeZone() }
func (o *OS) UnixTime() uint64               { return o.backend.UnixTime() }
func (o *OS) SystemTimeSecs() uint64         { return o.backend.SystemTimeSecs() }
func (o *OS) SystemTimeMsecs() uint64        { return o.backend.SystemTimeMsecs() }
func (o *OS) TicksUsec() uint64              { return o.backend.TicksUsec() }
func (o *OS) DelayUsec(usec uint32)          { o.backend.DelayUsec(usec) }
func (o *OS) Yield()                         { o.backend.Yield() }

// TicksMsec derives milliseconds from a single TicksUsec reading.
func (o *OS) TicksMsec() uint64 {
	return o.backend.TicksUsec() / 1000
}

// Dynamic libraries.

func (o *OS) OpenDynamicLibrary(path string, setLibraryPath bool) (LibraryHandle, error) {
	return o.backend.OpenDynamicLibrary(path, setLibraryPath)
}

func (o *OS) CloseDynamicLibrary(h LibraryHandle) error {
	return o.backend.CloseDynamicLibrary(h)
}

func (o *OS) LibrarySymbol(h LibraryHandle, name string, optional bool) (uintptr, error) {
	return o.backend.LibrarySymbol(h, name, optional)
}

// Device and host queries.

func (o *OS) UniqueID() (string, error) { return o.backend.UniqueID() }
func (o *OS) ProcessorCount() int       { return o.backend.ProcessorCount() }
func (o *OS) CanUseThreads() bool       { return o.backend.CanUseThreads() }
func (o *OS) ModelName() string         { return o.backend.ModelName() }
func (o *OS) Locale() string            { return o.backend.Locale() }
func (o *OS) IsUserFSPersistent() bool  { return o.backend.IsUserFSPersistent() }

// SwapOKCancel reports whether dialogs should put Cancel before OK.
func (o *OS) SwapOKCancel() bool { return false }

// Audio.

func (o *OS) AudioDriverCount() int        { return o.backend.AudioDriverCount() }
func (o *OS) AudioDriverName(i int) string { return o.backend.AudioDriverName(i) }

// Power.

func (o *OS) PowerState() PowerState { return o.backend.PowerState() }
func (o *OS) PowerSecondsLeft() int  { return o.backend.PowerSecondsLeft() }
func (o *OS) PowerPercentLeft() int  { return o.backend.PowerPercentLeft() }

// MIDI. Without a driver there are no inputs and open/close do nothing.

func (o *OS) ConnectedMIDIInputs() []string {
	if o.midi == nil {
		return nil
	}
	return o.midi.ConnectedInputs()
}

func (o *OS) OpenMIDIInputs() error {
	if o.midi == nil {
		return nil
	}
	return o.midi.Open()
}

func (o *OS) CloseMIDIInputs() {
	if o.midi != nil {
		o.midi.Close()
	}
}

// Memory.

// StaticMemoryUsage is the heap currently in use by the Go runtime.
func (o *OS) StaticMemoryUsage() uint64 {
	return o.sampleHeap()
}

// StaticMemoryPeakUsage is the largest heap observed by any memory query so
// far.
func (o *OS) StaticMemoryPeakUsage() uint64 {
	o.sampleHeap()
	o.memMu.Lock()
	defer o.memMu.Unlock()
	return o.peakHeapUse
}

// DynamicMemoryUsage is memory obtained from the system outside the heap
// (stacks, runtime structures).
func (o *OS) DynamicMemoryUsage() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys - ms.HeapSys
}

// FreeStaticMemory is the free physical memory reported by the back-end.
func (o *OS) FreeStaticMemory() uint64 {
	return o.backend.FreeMemory()
}

func (o *OS) sampleHeap() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	o.memMu.Lock()
	if ms.HeapInuse > o.peakHeapUse {
		o.peakHeapUse = ms.HeapInuse
	}
	o.memMu.Unlock()
	return ms.HeapInuse
}
