package arbor

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Probe is a named value the Debugger prints every frame.
type Probe struct {
	Name  string
	Value func(f *Frame) string
}

// DeltaTimeProbe reports the last frame's duration in seconds.
var DeltaTimeProbe = Probe{
	Name: "Delta Time",
	Value: func(f *Frame) string {
		return strconv.FormatFloat(f.DeltaTime, 'f', 4, 64)
	},
}

// FrameRateProbe reports the instantaneous frame rate.
var FrameRateProbe = Probe{
	Name: "Frame Rate",
	Value: func(f *Frame) string {
		return strconv.FormatFloat(f.FrameRate(), 'f', 1, 64)
	},
}

// Debugger prints its probes in place on a terminal after every frame. The
// cursor is moved back up after printing, so each frame overwrites the last.
type Debugger struct {
	Base

	Probes []Probe
	// Out receives the output. Nil writes to stderr.
	Out io.Writer
}

// NewDebugger returns a factory for a Debugger with the given probes.
func NewDebugger(probes ...Probe) ComponentFactory {
	return func(*GameObject) Component {
		return &Debugger{Probes: probes}
	}
}

// Add appends probes.
func (d *Debugger) Add(probes ...Probe) {
	d.Probes = append(d.Probes, probes...)
}

// NextUpdate writes one line per probe.
func (d *Debugger) NextUpdate(f *Frame) {
	if len(d.Probes) == 0 {
		return
	}
	w := d.Out
	if w == nil {
		w = os.Stderr
	}
	_, _ = io.WriteString(w, "\x1b[256D")
	for _, p := range d.Probes {
		_, _ = fmt.Fprintf(w, "%s: %s\n", p.Name, p.Value(f))
	}
	_, _ = fmt.Fprintf(w, "\x1b[%dA", len(d.Probes))
}
