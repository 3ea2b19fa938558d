package arbor

// Frame carries per-frame timing into Update and NextUpdate. A single Frame is
// created when a loop starts and is reused for every frame of that loop; it is
// invalidated at teardown.
type Frame struct {
	// DeltaTime is the time elapsed during the last frame, in seconds.
	DeltaTime float64
	// FrameCount is the number of completed frames since loop start.
	FrameCount int

	valid bool
}

func newFrame() *Frame {
	return &Frame{valid: true}
}

// Valid reports whether the frame belongs to a running loop.
func (f *Frame) Valid() bool {
	return f != nil && f.valid
}

// FrameRate returns the instantaneous frames per second derived from
// DeltaTime, or 0 when no time has elapsed.
func (f *Frame) FrameRate() float64 {
	if f == nil || f.DeltaTime <= 0 {
		return 0
	}
	return 1 / f.DeltaTime
}

// invalidate resets the frame to its unset state.
func (f *Frame) invalidate() {
	f.valid = false
	f.DeltaTime = 0
	f.FrameCount = -1
}
