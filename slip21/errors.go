package slip21

import (
	"fmt"
)

// LengthError is returned when binary input is not exactly Size bytes long.
type LengthError struct {
	Actual   int
	Expected int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("slip21: invalid length %d, expected %d", e.Actual, e.Expected)
}

// HexError is returned when text input is not valid hexadecimal.
// Err is the error reported by encoding/hex, such as hex.InvalidByteError.
type HexError struct {
	Len int
	Err error
}

func (e *HexError) Error() string {
	return fmt.Sprintf("slip21: invalid hex string of length %d: %v", e.Len, e.Err)
}

func (e *HexError) Unwrap() error {
	return e.Err
}

// ValueError is returned when bytes presented as hex text are not UTF-8.
type ValueError struct {
	Value    []byte
	Expected string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("slip21: invalid value %q, expected %s", e.Value, e.Expected)
}

// PathError is returned by ParsePath for malformed derivation paths.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("slip21: invalid path %q: %s", e.Path, e.Reason)
}
