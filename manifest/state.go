package manifest

// State is the scanner's position in the header and continuation grammar.
type State uint8

const (
	SeekingHeader State = iota
	InValue
	AtLineBreak
	ContinuationConsumed
	Done
)

func (s State) String() string {
	switch s {
	case SeekingHeader:
		return "SeekingHeader"
	case InValue:
		return "InValue"
	case AtLineBreak:
		return "AtLineBreak"
	case ContinuationConsumed:
		return "ContinuationConsumed"
	case Done:
		return "Done"
	}
	return "State(?)"
}
