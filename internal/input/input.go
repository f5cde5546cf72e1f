// Package input turns raw terminal bytes into per-frame key and mouse state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so held keys are inferred from recent presses.
const keyHoldDuration = 60 * time.Millisecond

// Click is a left mouse button press at a 1-based terminal cell.
type Click struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	// Held keys
	Left  bool
	Right bool
	Up    bool

	// Pressed since the previous frame
	Space   bool
	F1      bool
	Escape  bool
	Quit    bool // q or Ctrl-C
	Pressed []byte
	Clicks  []Click

	// Closed is set once the underlying reader has failed or ended.
	Closed bool
}

// PressedKey reports whether any of keys was pressed this frame.
func (in Input) PressedKey(keys ...byte) bool {
	for _, p := range in.Pressed {
		for _, k := range keys {
			if p == k {
				return true
			}
		}
	}
	return false
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Incomplete escape sequence carried to the next frame
	closed  bool
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream(make(chan byte, 128))
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(ch chan byte) *Stream {
	return &Stream{ch: ch, now: time.Now}
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return s.Read()
}

// Read drains all available bytes without blocking and returns the frame input.
func (s *Stream) Read() Input {
	buf := s.pending
	s.pending = nil
	carried := len(buf)

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// A sequence that stayed incomplete for a whole frame was a lone Escape.
	flush := len(buf) == carried || s.closed
	return s.parse(buf, flush, s.now())
}

// parse applies buf to the key state. Incomplete escape sequences at the end
// of buf are kept for the next frame unless flush is set.
func (s *Stream) parse(buf []byte, flush bool, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByte(&s.state, &in, b, now)
			continue
		}

		n, ok := s.applyEscape(&in, buf[i:], now)
		if !ok {
			if !flush {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
			in.Escape = true
			n = len(buf) - i
		}
		i += n - 1
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Closed = s.closed
	return in
}

// applyEscape handles the escape sequence at the start of seq. It returns the
// number of bytes consumed, or false if the sequence is not complete yet.
func (s *Stream) applyEscape(in *Input, seq []byte, now time.Time) (int, bool) {
	if len(seq) < 2 {
		return 0, false
	}

	switch seq[1] {
	case '[':
		return s.applyCSI(in, seq, now)
	case 'O':
		// SS3: application-mode arrows and F1-F4
		if len(seq) < 3 {
			return 0, false
		}
		switch seq[2] {
		case 'A':
			s.state.up = now
		case 'C':
			s.state.right = now
		case 'D':
			s.state.left = now
		case 'P':
			in.F1 = true
		}
		return 3, true
	case '\x1b':
		in.Escape = true
		return 1, true
	default:
		// Alt+key: report the escape, the key itself follows.
		in.Escape = true
		return 1, true
	}
}

// applyCSI handles ESC [ sequences: arrows, F1 variants and SGR mouse reports.
func (s *Stream) applyCSI(in *Input, seq []byte, now time.Time) (int, bool) {
	// Find the final byte (0x40-0x7E) after the parameters.
	end := -1
	for j := 2; j < len(seq); j++ {
		c := seq[j]
		if c == '[' && j == 2 {
			// Linux console F1-F5: ESC [ [ A..E
			if len(seq) < 4 {
				return 0, false
			}
			if seq[3] == 'A' {
				in.F1 = true
			}
			return 4, true
		}
		if c >= 0x40 && c <= 0x7e {
			end = j
			break
		}
	}
	if end < 0 {
		return 0, false
	}

	params := seq[2:end]
	switch final := seq[end]; {
	case final == 'A' && len(params) == 0:
		s.state.up = now
	case final == 'C' && len(params) == 0:
		s.state.right = now
	case final == 'D' && len(params) == 0:
		s.state.left = now
	case final == '~' && string(params) == "11":
		in.F1 = true
	case (final == 'M' || final == 'm') && len(params) > 0 && params[0] == '<':
		if c, ok := parseSGRMouse(params[1:], final); ok {
			in.Clicks = append(in.Clicks, c)
		}
	}
	return end + 1, true
}

// parseSGRMouse decodes "b;x;y" of an SGR mouse report. Only left button
// presses count as clicks.
func parseSGRMouse(params []byte, final byte) (Click, bool) {
	var nums [3]int
	idx := 0
	for _, c := range params {
		switch {
		case c == ';':
			idx++
			if idx > 2 {
				return Click{}, false
			}
		case c >= '0' && c <= '9':
			nums[idx] = nums[idx]*10 + int(c-'0')
		default:
			return Click{}, false
		}
	}
	if idx != 2 || final != 'M' {
		return Click{}, false
	}
	button := nums[0]
	if button&3 != 0 || button&32 != 0 || button&64 != 0 {
		return Click{}, false
	}
	return Click{Col: nums[1], Row: nums[2]}, true
}

// applyByte updates key state and frame presses for a plain byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		in.Space = true
	case 'q', 'Q', '\x03':
		in.Quit = true
	}
	if b >= 0x20 && b < 0x7f {
		in.Pressed = append(in.Pressed, b)
	}
}
