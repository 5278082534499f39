// Package slip21 implements SLIP-0021 hierarchical derivation of symmetric keys.
//
// A Node is a 64-byte value. Its first half is the chain code used to derive
// children, its second half is the symmetric key exposed to callers.
//
//	master := slip21.NewMaster(seed)
//	key := master.DeriveChild([]byte("SLIP-0021")).DeriveChild([]byte("Master encryption key")).Key()
package slip21

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

const (
	// Size is the length of a Node in bytes.
	Size = 64
	// ChainSize is the length of the chain code, stored at [0:ChainSize].
	ChainSize = 32
	// KeySize is the length of the symmetric key, stored at [ChainSize:Size].
	KeySize = Size - ChainSize

	masterKey = "Symmetric key seed"
)

// Node is a point in a SLIP-0021 derivation tree.
//
// Nodes are plain values: assignment copies all 64 bytes, == compares them,
// and a Node can be used as a map key. The zero Node is an empty placeholder
// and is never the result of a derivation.
type Node struct {
	b [Size]byte
}

// Fingerprint is a digest of a Node's 64 bytes.
type Fingerprint [32]byte

// NewMaster computes the master node for seed:
// HMAC-SHA512(key = "Symmetric key seed", msg = seed).
// Any seed length is accepted; BIP-39 and SLIP-39 seeds are 64 bytes long.
func NewMaster(seed []byte) Node {
	return sum([]byte(masterKey), seed)
}

// DeriveChild returns the child of n identified by label:
// HMAC-SHA512(key = n[0:32], msg = 0x00 || label).
func (n Node) DeriveChild(label []byte) Node {
	return sum(n.b[:ChainSize], []byte{0}, label)
}

// Derive walks down the tree from n, one label at a time.
func (n Node) Derive(labels ...[]byte) Node {
	for _, label := range labels {
		n = n.DeriveChild(label)
	}
	return n
}

func sum(key []byte, msg ...[]byte) Node {
	mac := hmac.New(sha512.New, key)
	for _, m := range msg {
		mac.Write(m)
	}
	var n Node
	mac.Sum(n.b[:0])
	return n
}

// Key returns the symmetric key half of the node. The slice views a copy of
// the node, so writing to it never changes n.
func (n Node) Key() []byte {
	return n.b[ChainSize:]
}

// Chain returns the chain code half of the node.
func (n Node) Chain() []byte {
	return n.b[:ChainSize]
}

// Bytes returns the 64 bytes of the node.
func (n Node) Bytes() []byte {
	return n.b[:]
}

// Array returns the node as a fixed-size array.
func (n Node) Array() [Size]byte {
	return n.b
}

// At returns byte i. It panics if i is outside [0, Size).
func (n Node) At(i int) byte {
	return n.b[i]
}

// Slice returns bytes [from:to]. It panics on the same ranges a [Size]byte would.
func (n Node) Slice(from, to int) []byte {
	return n.b[from:to]
}

// IsZero reports whether n is the empty Node.
func (n Node) IsZero() bool {
	return n == Node{}
}

// Equal compares two nodes in constant time.
func (n Node) Equal(o Node) bool {
	return subtle.ConstantTimeCompare(n.b[:], o.b[:]) == 1
}

// Compare orders nodes lexicographically by their bytes. It returns -1, 0 or +1.
func (n Node) Compare(o Node) int {
	return bytes.Compare(n.b[:], o.b[:])
}

// Fingerprint returns the BLAKE3 digest of the node. Equal nodes always have
// equal fingerprints, which makes them suitable for indexing and display
// without revealing the node itself.
func (n Node) Fingerprint() Fingerprint {
	return blake3.Sum256(n.b[:])
}

func (f Fingerprint) String() string {
	return encodeHex(f[:])
}

func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fingerprint) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return &HexError{Len: len(text), Err: err}
	}
	if len(b) != len(f) {
		return &LengthError{Actual: len(b), Expected: len(f)}
	}
	copy(f[:], b)
	return nil
}
