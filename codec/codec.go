// Package codec serializes snapshots for remote sync, optionally obfuscated
// with the user's access token.
//
// The transform is a repeating-key XOR over the JSON bytes followed by
// base64. It is symmetric obfuscation, not cryptographically secure
// encryption: it defends against casual inspection of the uploaded gist and
// nothing more.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mytodo/mytodo/todo"
)

var (
	// ErrEmptyKey is returned when encoding or decoding without a key.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrDecryptMismatch is returned when decoded bytes do not parse as a
	// snapshot, which is what a wrong key produces. Decode never returns
	// partial or garbage structured data.
	ErrDecryptMismatch = errors.New("decoded data is not a valid snapshot (wrong key?)")
)

// Encode serializes the snapshot, XORs it against the repeating UTF-8 bytes
// of key, and base64-encodes the result.
func Encode(snap todo.Snapshot, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	plain, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	xorKey(plain, key)
	return base64.StdEncoding.EncodeToString(plain), nil
}

// Decode is the inverse of Encode. A wrong key yields bytes that fail to
// parse, reported as ErrDecryptMismatch.
func Decode(encoded, key string) (todo.Snapshot, error) {
	if key == "" {
		return todo.Snapshot{}, ErrEmptyKey
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return todo.Snapshot{}, fmt.Errorf("decode base64: %w", err)
	}

	xorKey(raw, key)

	var snap todo.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return todo.Snapshot{}, fmt.Errorf("%w: %v", ErrDecryptMismatch, err)
	}
	return snap, nil
}

// xorKey XORs data in place against the repeating bytes of key.
func xorKey(data []byte, key string) {
	keyBytes := []byte(key)
	for i := range data {
		data[i] ^= keyBytes[i%len(keyBytes)]
	}
}
