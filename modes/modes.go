//
// modes.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package modes implements the ECB and CBC block cipher modes of
// operation on top of crypto/cipher.Block.
//
// The modes implement crypto/cipher.BlockMode and, like the standard
// library modes, panic if the input is not a multiple of the block
// size or if the output is shorter than the input. Callers pad the
// input before encryption.
package modes

import (
	"errors"
)

var (
	// ErrorInvalidIV is returned if the initialization vector is
	// missing or its length is not the cipher block size.
	ErrorInvalidIV = errors.New("invalid IV")
)

func checkBlocks(blockSize int, dst, src []byte) {
	if len(src)%blockSize != 0 {
		panic("modes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("modes: output smaller than input")
	}
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
