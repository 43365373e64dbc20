// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"

	"golang.org/x/crypto/chacha20"
)

// KeySize is the number of entropy bytes read per Source.
const KeySize = chacha20.KeySize

// entropy is the seed reader; tests replace it.
var entropy io.Reader = crand.Reader

// bufSize is how much keystream is produced per refill.
const bufSize = 512

// Source is a ChaCha20 keystream keyed once from operating system entropy.
// A Source is not safe for concurrent use.
type Source struct {
	cipher *chacha20.Cipher
	buf    [bufSize]byte
	off    int
	rng    *rand.Rand
}

// New seeds a fresh Source. It fails with an *EntropyError when the seed
// cannot be read in full.
func New() (*Source, error) {
	var key [KeySize]byte
	defer clear(key[:])
	if err := readKey(key[:]); err != nil {
		return nil, err
	}
	return newSource(key[:])
}

// readKey fills key from entropy. A partial key is cleared before the
// error is returned.
func readKey(key []byte) error {
	n, err := io.ReadFull(entropy, key)
	if err != nil {
		clear(key)
		return &EntropyError{Read: n, Err: err}
	}
	return nil
}

func newSource(key []byte) (*Source, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return nil, err
	}
	s := &Source{cipher: c, off: bufSize}
	s.rng = rand.New(s)
	return s, nil
}

func (s *Source) refill() {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	s.off = 0
}

// Read fills p with keystream bytes. It never fails.
func (s *Source) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.off == bufSize {
			s.refill()
		}
		c := copy(p[n:], s.buf[s.off:])
		clear(s.buf[s.off : s.off+c])
		s.off += c
		n += c
	}
	return n, nil
}

// Uint64 returns the next 64 keystream bits. It implements rand.Source.
func (s *Source) Uint64() uint64 {
	if bufSize-s.off < 8 {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	clear(s.buf[s.off : s.off+8])
	s.off += 8
	return v
}

// IntN returns a uniform integer in [0,n). It panics if n <= 0.
func (s *Source) IntN(n int) int { return s.rng.IntN(n) }

// Shuffle permutes n elements uniformly with a Fisher-Yates shuffle.
func (s *Source) Shuffle(n int, swap func(i, j int)) { s.rng.Shuffle(n, swap) }
