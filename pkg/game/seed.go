package game

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed reads a process seed from the operating system's entropy source.
func NewSeed() (uint64, error) {
	return ReadSeed(rand.Reader)
}

// ReadSeed reads an 8 byte little-endian seed from r.
func ReadSeed(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
