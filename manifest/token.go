package manifest

import (
	"golang.org/x/text/encoding/unicode"
)

// tokenState tracks the lifecycle of the token currently being built.
type tokenState uint8

const (
	tokenAbsent tokenState = iota
	tokenPending
	tokenConfirmed
)

// accumulator owns the pending token bytes and the confirmed results.
type accumulator struct {
	buf    []byte
	state  tokenState
	tokens []string
}

func (a *accumulator) append(b byte) {
	a.buf = append(a.buf, b)
	a.state = tokenPending
}

// confirm decodes the pending bytes as one unit and appends the result.
// It is a no-op when nothing is pending, so runs of delimiters never
// produce empty tokens.
func (a *accumulator) confirm() {
	if a.state != tokenPending {
		return
	}
	a.tokens = append(a.tokens, decode(a.buf))
	a.buf = a.buf[:0]
	a.state = tokenConfirmed
}

// discard drops a pending token that never saw a proof event.
func (a *accumulator) discard() {
	a.buf = a.buf[:0]
	if a.state == tokenPending {
		a.state = tokenAbsent
	}
}

func decode(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
