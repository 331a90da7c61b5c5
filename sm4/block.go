//
// block.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm4

import (
	"github.com/markkurossi/gmsm/pkg/words"
)

// Transform runs the 32 round transformation for the block in with
// the round keys rk. With encryption keys it encrypts the block, with
// the reversed keys it decrypts it.
func Transform(in words.Block, rk *RoundKeys) words.Block {
	var x [Rounds + 4]uint32
	copy(x[:4], in[:])

	for i := 0; i < Rounds; i++ {
		x[i+4] = x[i] ^ mix(x[i+1]^x[i+2]^x[i+3]^rk[i])
	}
	return words.Block{x[35], x[34], x[33], x[32]}
}

// mix is the round mixer T = L(tau(x)).
func mix(x uint32) uint32 {
	return linear(tau(x))
}

// tau applies the S-box to each byte of a.
func tau(a uint32) uint32 {
	return uint32(sbox[a>>24])<<24 |
		uint32(sbox[a>>16&0xff])<<16 |
		uint32(sbox[a>>8&0xff])<<8 |
		uint32(sbox[a&0xff])
}

// linear is the cipher round linear transform L.
func linear(b uint32) uint32 {
	return b ^ words.Rotl(b, 2) ^ words.Rotl(b, 10) ^ words.Rotl(b, 18) ^
		words.Rotl(b, 24)
}
