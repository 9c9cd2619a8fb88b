package manifest

import (
	"io"

	"golang.org/x/text/transform"
)

// NewCRLFReader returns a reader that folds "\r\n" line endings into "\n".
// A lone '\r' is passed through untouched.
func NewCRLFReader(r io.Reader) io.Reader {
	return transform.NewReader(r, crlfFolder{})
}

type crlfFolder struct{ transform.NopResetter }

func (crlfFolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == '\r' {
			if nSrc+1 == len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
			} else if src[nSrc+1] == '\n' {
				nSrc++
				continue
			}
		}
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
