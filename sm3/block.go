//
// block.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"fmt"

	"github.com/markkurossi/gmsm/pkg/words"
)

const (
	t0 = 0x79cc4519
	t1 = 0x7a879d8a
)

// block compresses the 64-byte blocks of p into the state h.
func block(h *[8]uint32, p []byte) {
	if len(p)%BlockSize != 0 {
		panic(fmt.Sprintf("sm3: block of %d bytes", len(p)))
	}
	var w [132]uint32

	for ; len(p) >= BlockSize; p = p[BlockSize:] {
		expand(&w, p[:BlockSize])
		compress(h, &w)
	}
}

// expand computes the 68 message words W[0..68) and the 64 words
// W'[j] = W[j]^W[j+4] stored at w[68..132).
func expand(w *[132]uint32, p []byte) {
	if len(p) != BlockSize {
		panic(fmt.Sprintf("sm3: expand of %d bytes", len(p)))
	}
	for i := 0; i < 16; i++ {
		w[i] = words.Load(p[i*4:])
	}
	for j := 16; j < 68; j++ {
		w[j] = p1(w[j-16]^w[j-9]^words.Rotl(w[j-3], 15)) ^
			words.Rotl(w[j-13], 7) ^ w[j-6]
	}
	for j := 0; j < 64; j++ {
		w[j+68] = w[j] ^ w[j+4]
	}
}

func compress(h *[8]uint32, w *[132]uint32) {
	a, b, c, d := h[0], h[1], h[2], h[3]
	e, f, g, hh := h[4], h[5], h[6], h[7]

	for j := 0; j < 64; j++ {
		var ff, gg, tj uint32
		if j < 16 {
			ff = a ^ b ^ c
			gg = e ^ f ^ g
			tj = t0
		} else {
			ff = (a & b) | (a & c) | (b & c)
			gg = (e & f) | (^e & g)
			tj = t1
		}
		a12 := words.Rotl(a, 12)
		ss1 := words.Rotl(a12+e+words.Rotl(tj, j), 7)
		ss2 := ss1 ^ a12
		tt1 := ff + d + ss2 + w[j+68]
		tt2 := gg + hh + ss1 + w[j]

		d = c
		c = words.Rotl(b, 9)
		b = a
		a = tt1
		hh = g
		g = words.Rotl(f, 19)
		f = e
		e = p0(tt2)
	}

	// Feed-forward.
	h[0] ^= a
	h[1] ^= b
	h[2] ^= c
	h[3] ^= d
	h[4] ^= e
	h[5] ^= f
	h[6] ^= g
	h[7] ^= hh
}

func p0(x uint32) uint32 {
	return x ^ words.Rotl(x, 9) ^ words.Rotl(x, 17)
}

func p1(x uint32) uint32 {
	return x ^ words.Rotl(x, 15) ^ words.Rotl(x, 23)
}
