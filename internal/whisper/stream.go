package whisper

import (
	"fmt"
	"strings"
)

// Segment is one unit of transcribed speech. Times are seconds from the
// start of the file.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Stream yields the segments of one file in order, exactly once. Segments
// whose text is empty after trimming are dropped; the engine emits those
// for silence and noise regions.
type Stream struct {
	next     func() (event, error)
	duration float64
	done     bool
}

// Duration returns the total audio duration reported by the engine.
func (s *Stream) Duration() float64 {
	return s.duration
}

// Next returns the next usable segment. ok is false once the stream is
// exhausted. After an error the stream is closed.
func (s *Stream) Next() (Segment, bool, error) {
	if s.done {
		return Segment{}, false, nil
	}
	for {
		ev, err := s.next()
		if err != nil {
			s.done = true
			return Segment{}, false, err
		}
		switch ev.Event {
		case "segment":
			if strings.TrimSpace(ev.Text) == "" {
				continue
			}
			return Segment{Start: ev.Start, End: ev.End, Text: ev.Text}, true, nil
		case "end":
			s.done = true
			return Segment{}, false, nil
		case "error":
			s.done = true
			return Segment{}, false, fmt.Errorf("speech engine: %s", ev.Message)
		default:
			s.done = true
			return Segment{}, false, fmt.Errorf("unexpected %q event mid-stream", ev.Event)
		}
	}
}
