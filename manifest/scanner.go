package manifest

const (
	// ClassPathAttribute is the only manifest attribute this package reads.
	ClassPathAttribute = "Class-Path"

	header = ClassPathAttribute + ": "
)

const (
	space   = ' '
	newline = '\n'
)

// transition handles one byte in a given state and returns the next state.
type transition func(s *Scanner, b byte) State

// transitions is indexed by State. Done has no entry: the scanner ignores
// everything after the attribute ends.
var transitions = [...]transition{
	SeekingHeader:        (*Scanner).seekHeader,
	InValue:              (*Scanner).inValue,
	AtLineBreak:          (*Scanner).atLineBreak,
	ContinuationConsumed: (*Scanner).continuationConsumed,
}

// Scanner is a push-driven Class-Path scanner. Feed it bytes in order and
// call End once the input is exhausted. The zero value is not usable; use
// NewScanner.
type Scanner struct {
	state State
	// matched counts the header bytes seen at the start of the current
	// line, or -1 once the line is known not to be the header.
	matched int
	acc     accumulator
}

func NewScanner() *Scanner {
	return &Scanner{state: SeekingHeader}
}

// State reports the current scanner state.
func (s *Scanner) State() State {
	return s.state
}

// Feed advances the scanner by one byte and returns the new state.
func (s *Scanner) Feed(b byte) State {
	if s.state == Done {
		return Done
	}
	s.state = transitions[s.state](s, b)
	return s.state
}

// End signals end-of-input and returns the confirmed tokens. A token still
// pending at this point has not been proven complete and is dropped. A
// line break with nothing after it is proof, so AtLineBreak confirms.
func (s *Scanner) End() []string {
	switch s.state {
	case AtLineBreak:
		s.acc.confirm()
	case InValue, ContinuationConsumed:
		s.acc.discard()
	}
	s.state = Done
	if s.acc.tokens == nil {
		return []string{}
	}
	return s.acc.tokens
}

func (s *Scanner) seekHeader(b byte) State {
	if b == newline {
		s.matched = 0
		return SeekingHeader
	}
	if s.matched < 0 {
		return SeekingHeader
	}
	if b != header[s.matched] {
		s.matched = -1
		return SeekingHeader
	}
	s.matched++
	if s.matched == len(header) {
		return InValue
	}
	return SeekingHeader
}

func (s *Scanner) inValue(b byte) State {
	switch b {
	case space:
		s.acc.confirm()
	case newline:
		return AtLineBreak
	default:
		s.acc.append(b)
	}
	return InValue
}

func (s *Scanner) atLineBreak(b byte) State {
	if b == space {
		// continuation marker, never content
		return ContinuationConsumed
	}
	s.acc.confirm()
	return Done
}

func (s *Scanner) continuationConsumed(b byte) State {
	return s.inValue(b)
}
