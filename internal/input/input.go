// Package input turns raw terminal bytes into the set of held logical inputs.
package input

import (
	"bufio"
	"time"
)

// Logical input names understood by the game.
const (
	Up    = "up"
	Down  = "down"
	Left  = "left"
	Right = "right"
	Fire  = "fire"
	Quit  = "quit"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, so holding relies on key auto-repeat.
const keyHoldDuration = 50 * time.Millisecond

// Set is the set of currently held logical inputs.
type Set map[string]struct{}

// NewSet creates a set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Held reports whether name is in the set. A nil set holds nothing.
func (s Set) Held(name string) bool {
	_, ok := s[name]
	return ok
}

// Stream delivers input bytes via a channel and remembers when each logical
// input was last seen.
type Stream struct {
	ch       chan byte
	lastSeen map[string]time.Time
	pending  []byte // Incomplete escape sequence carried to the next read
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (EOF on session end).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		lastSeen: make(map[string]time.Time),
	}
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

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the inputs held at now. Once the reader is exhausted Quit stays held.
func ReadInput(s *Stream, now time.Time) Set {
	buf := s.pending
	s.pending = nil

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

	for i := 0; i < len(buf); i++ {
		// An escape sequence split across reads is finished next time.
		if buf[i] == '\x1b' && !s.closed && (i+1 == len(buf) || (buf[i+1] == '[' && i+2 == len(buf))) {
			s.pending = append([]byte(nil), buf[i:]...)
			break
		}
		// CSI sequence: ESC [ <code>
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if name, ok := arrowKeys[buf[i+2]]; ok {
				s.lastSeen[name] = now
				i += 2
				continue
			}
		}
		if name, ok := byteKeys[buf[i]]; ok {
			s.lastSeen[name] = now
		}
	}

	held := make(Set, len(s.lastSeen))
	for name, at := range s.lastSeen {
		if now.Sub(at) < keyHoldDuration {
			held[name] = struct{}{}
		}
	}
	if s.closed {
		held[Quit] = struct{}{}
	}
	return held
}

var arrowKeys = map[byte]string{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
}

// byteKeys maps single bytes to inputs. Unknown bytes are ignored.
var byteKeys = map[byte]string{
	'w': Up, 'W': Up, 'i': Up, 'I': Up,
	's': Down, 'S': Down, 'k': Down, 'K': Down,
	'a': Left, 'A': Left, 'j': Left, 'J': Left,
	'd': Right, 'D': Right, 'l': Right, 'L': Right,
	' ': Fire,
	'q': Quit, 'Q': Quit,
	'\x03': Quit, // Ctrl-C in raw mode
}
