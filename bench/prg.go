//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package bench

import (
	"golang.org/x/crypto/chacha20"
)

// PRG implements a deterministic ChaCha20 keystream generator. The
// same seed always produces the same stream.
type PRG struct {
	c *chacha20.Cipher
}

// NewPRG creates a new PRG from the seed. The seed may be any
// non-empty length; it is repeated or trimmed to the 32-byte ChaCha20
// key and the stream uses a zero nonce.
func NewPRG(seed []byte) *PRG {
	if len(seed) == 0 {
		panic("bench: empty PRG seed")
	}
	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &PRG{
		c: c,
	}
}

// Read fills p with the next keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	prg.c.XORKeyStream(p, p)
	return len(p), nil
}

// Bytes returns the next n keystream bytes.
func (prg *PRG) Bytes(n int) []byte {
	buf := make([]byte, n)
	prg.Read(buf)
	return buf
}
