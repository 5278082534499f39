package keyring

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/xmit-co/xkey/slip21"
	"github.com/zeebo/blake3"
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Fingerprint is the BLAKE3 digest of the canonical CBOR encoding, so two
// keyrings holding the same entries share a fingerprint.
func (k *Keyring) Fingerprint() (slip21.Fingerprint, error) {
	b, err := encMode.Marshal(k)
	if err != nil {
		return slip21.Fingerprint{}, fmt.Errorf("failed to encode keyring: %w", err)
	}
	return blake3.Sum256(b), nil
}

// Encode serializes k. Binary is canonical CBOR compressed with zstd,
// Text is indented JSON with hex nodes.
func (k *Keyring) Encode(mode slip21.Mode) ([]byte, error) {
	switch mode {
	case slip21.Text:
		b, err := json.MarshalIndent(k, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode keyring: %w", err)
		}
		return append(b, '\n'), nil
	case slip21.Binary:
		return encodeBinary(k)
	default:
		return nil, fmt.Errorf("unknown mode %v", mode)
	}
}

// Decode parses data produced by Encode in the same mode.
func Decode(data []byte, mode slip21.Mode) (*Keyring, error) {
	var k Keyring
	switch mode {
	case slip21.Text:
		if err := json.Unmarshal(data, &k); err != nil {
			return nil, fmt.Errorf("failed to decode keyring: %w", err)
		}
	case slip21.Binary:
		if err := decodeBinary(data, &k); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown mode %v", mode)
	}
	sort.Slice(k.Entries, func(i, j int) bool {
		return k.Entries[i].Path < k.Entries[j].Path
	})
	return &k, nil
}

func encodeBinary(k *Keyring) ([]byte, error) {
	var b bytes.Buffer
	bf := bufio.NewWriter(&b)
	z, err := zstd.NewWriter(bf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}

	e := encMode.NewEncoder(z)
	if err = e.Encode(k); err != nil {
		z.Close()
		return nil, fmt.Errorf("failed to encode keyring: %w", err)
	}

	if err = z.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %w", err)
	}

	if err = bf.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush buffer: %w", err)
	}

	return b.Bytes(), nil
}

func decodeBinary(data []byte, k *Keyring) error {
	zd, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zd.Close()

	if err = cbor.NewDecoder(zd).Decode(k); err != nil {
		return fmt.Errorf("failed to decode keyring: %w", err)
	}

	return nil
}
