package slip21

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
)

// Mode selects how a Node is serialized.
type Mode int

const (
	// Text is the human-readable form: 128 lowercase hex characters.
	Text Mode = iota
	// Binary is the machine-readable form: the 64 raw bytes.
	Binary
)

func (m Mode) String() string {
	switch m {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Encode serializes n in the given mode.
func Encode(n Node, m Mode) ([]byte, error) {
	switch m {
	case Text:
		return []byte(n.String()), nil
	case Binary:
		return n.Bytes(), nil
	default:
		return nil, fmt.Errorf("slip21: unknown mode %v", m)
	}
}

// Decode parses data produced by Encode in the same mode. In Text mode data
// must be UTF-8 hex text; in Binary mode it must be exactly Size bytes.
func Decode(data []byte, m Mode) (Node, error) {
	switch m {
	case Text:
		if !utf8.Valid(data) {
			return Node{}, &ValueError{Value: data, Expected: "an ASCII hex string"}
		}
		return FromHex(string(data))
	case Binary:
		return FromBytes(data)
	default:
		return Node{}, fmt.Errorf("slip21: unknown mode %v", m)
	}
}

// FromHex parses a node from hex. Both upper and lower case digits are accepted.
func FromHex(s string) (Node, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Node{}, &HexError{Len: len(s), Err: err}
	}
	return FromBytes(b)
}

// FromBytes copies a node out of b, which must be exactly Size bytes long.
func FromBytes(b []byte) (Node, error) {
	var n Node
	if len(b) != Size {
		return n, &LengthError{Actual: len(b), Expected: Size}
	}
	copy(n.b[:], b)
	return n, nil
}

func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// String returns the node as lowercase hex.
func (n Node) String() string {
	return encodeHex(n.b[:])
}

func (n Node) MarshalText() ([]byte, error) {
	return Encode(n, Text)
}

func (n *Node) UnmarshalText(text []byte) error {
	v, err := Decode(text, Text)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Node) MarshalBinary() ([]byte, error) {
	return Encode(n, Binary)
}

func (n *Node) UnmarshalBinary(data []byte) error {
	v, err := Decode(data, Binary)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalCBOR encodes n as a CBOR byte string.
func (n Node) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(n.b[:])
}

// UnmarshalCBOR decodes a CBOR byte string of exactly Size bytes.
func (n *Node) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("slip21: %w", err)
	}
	return n.UnmarshalBinary(b)
}
