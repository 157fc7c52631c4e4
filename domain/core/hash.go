package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// DataHash fingerprints the paired input sequences of a sweep
type DataHash Hash

func (h DataHash) String() string { return Hash(h).String() }

// ComputeDataHash fingerprints two input sequences so a report can be
// tied back to the exact data it was computed from.
func ComputeDataHash(dataX, dataY []float64) DataHash {
	hasher := sha256.New()
	buf := make([]byte, 8)
	for _, seq := range [][]float64{dataX, dataY} {
		binary.LittleEndian.PutUint64(buf, uint64(len(seq)))
		hasher.Write(buf)
		for _, v := range seq {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			hasher.Write(buf)
		}
	}
	return DataHash(hex.EncodeToString(hasher.Sum(nil)))
}
