package arbor

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a frame script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// frameScriptFile is the top-level JSON structure for a frame script.
type frameScriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// FrameScript sequences injected events across frames of a
// HeadlessPlatform. Supported actions are "wait" (frames), "key" (key),
// "resize" (width, height) and "quit".
type FrameScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadFrameScript parses a JSON frame script.
func LoadFrameScript(jsonData []byte) (*FrameScript, error) {
	var file frameScriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse frame script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse frame script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "wait", "key", "resize", "quit":
		default:
			return nil, fmt.Errorf("parse frame script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &FrameScript{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *FrameScript) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *FrameScript) step(h *HeadlessPlatform) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "key":
		h.InjectKey(st.Key)
	case "resize":
		h.InjectEvent(Event{Type: EventResize, Width: st.Width, Height: st.Height})
	case "quit":
		h.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
