package xdo

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// OpError reports a libxdo call that returned its error status. Op
// names the native call so callers can distinguish failure sites
// without parsing messages.
type OpError struct {
	Op string
}

func (e *OpError) Error() string {
	return "libxdo::" + e.Op + " returned an error"
}

// UTF8Error reports a byte string returned by libxdo that was not
// valid UTF-8.
type UTF8Error struct {
	Err error
}

func (e *UTF8Error) Error() string {
	return e.Err.Error()
}

func (e *UTF8Error) Unwrap() error {
	return e.Err
}

// NulByteError reports a caller-supplied string holding an embedded
// NUL byte, which cannot be converted to the C string form libxdo
// expects.
type NulByteError struct {
	Err error
}

func (e *NulByteError) Error() string {
	return "A String argument containing a NULL byte was provided: " + e.Err.Error()
}

func (e *NulByteError) Unwrap() error {
	return e.Err
}

// checkUTF8 validates b, returning a *UTF8Error locating the first
// invalid sequence.
func checkUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	off := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			break
		}
		b = b[size:]
		off += size
	}
	return &UTF8Error{Err: fmt.Errorf("invalid UTF-8 sequence at byte %d", off)}
}

// checkNoNul rejects strings that cannot become NUL-terminated C
// strings.
func checkNoNul(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &NulByteError{Err: fmt.Errorf("unexpected NUL byte at position %d", i)}
	}
	return nil
}
