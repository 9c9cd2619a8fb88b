// Package manifest extracts the Class-Path attribute from JAR manifests.
//
// The parser follows the manifest line-continuation grammar: a physical
// line that starts with a single space continues the previous line, and
// that space is a marker, not content. A token is only reported once the
// input proves nothing can extend it, either through a delimiting space or
// through a line break that is not followed by a continuation. A token
// still open when the input ends is dropped.
package manifest

import (
	"bufio"
	"errors"
	"io"
)

// ClassPath reads r until the Class-Path attribute ends or the input is
// exhausted and returns the confirmed entries in the order they were found.
// A missing header yields an empty slice. Errors from r other than io.EOF
// are returned as is.
func ClassPath(r io.Reader) ([]string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	s := NewScanner()
	for s.State() != Done {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		s.Feed(b)
	}
	return s.End(), nil
}
