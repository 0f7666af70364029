// SPDX-License-Identifier: MIT
// Package seq: content fingerprints.
// A fingerprint is a CRC-64/ECMA digest over a shape header, the alphabet
// table, and the activation bits. Two containers fingerprint equal iff Equal
// reports true (modulo CRC collisions), which makes the digest a cheap
// stand-in for full tensor comparison in determinism tests and cache keys.

package seq

import (
	"encoding/binary"

	"github.com/snksoft/crc"
)

// fingerprint tag bytes keep rank-3 and rank-4 digests from colliding on
// coincidentally identical slabs.
const (
	tagBatch byte = 'B'
	tagDraws byte = 'D'
)

// digest feeds tag, dims, the alphabet table and the activation bits into
// one CRC-64/ECMA stream. Activations are 0/1 by construction, so one byte
// per cell is a faithful serialization.
func digest(tag byte, dims []int, alpha *Alphabet, data []float64) uint64 {
	h := crc.NewHash(crc.CRC64ECMA)

	var word [8]byte
	h.Update([]byte{tag})
	for _, d := range dims {
		binary.LittleEndian.PutUint64(word[:], uint64(d))
		h.Update(word[:])
	}

	h.Update([]byte(alpha.Symbols()))
	h.Update([]byte{0, alpha.Missing()})
	if alpha.comp != nil {
		comp := make([]byte, len(alpha.comp))
		for k, c := range alpha.comp {
			comp[k] = byte(c)
		}
		h.Update(comp)
	}

	bits := make([]byte, len(data))
	for k, v := range data {
		if v != 0 {
			bits[k] = 1
		}
	}
	h.Update(bits)

	return h.CRC()
}

// Fingerprint digests the batch content. Any flipped activation, shape
// change, or alphabet change yields a different value.
func (b *Batch) Fingerprint() uint64 {
	if b == nil {
		return 0
	}

	return digest(tagBatch, []int{b.n, b.alpha.Len(), b.length}, b.alpha, b.data)
}

// Fingerprint digests the full draw-axis content.
func (d *Draws) Fingerprint() uint64 {
	if d == nil {
		return 0
	}

	return digest(tagDraws, []int{d.n, d.draws, d.alpha.Len(), d.length}, d.alpha, d.data)
}
