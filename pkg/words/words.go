// -*- go -*-
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package words implements the 32-bit word helpers shared by the SM3
// and SM4 implementations.
package words

import (
	"encoding/binary"
	"math/bits"
)

const (
	// BlockSize is the size of a Block in bytes.
	BlockSize = 16
)

// Block is a 16-byte cipher block as four big-endian 32-bit words.
type Block [4]uint32

// Rotl rotates x left by n bits. The argument n is taken modulo 32.
func Rotl(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n&31)
}

// Load returns the big-endian word at the beginning of b.
func Load(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// Store stores v as big-endian word at the beginning of b.
func Store(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// LoadBlock unpacks the first BlockSize bytes of b.
func LoadBlock(b []byte) Block {
	_ = b[BlockSize-1]
	return Block{
		Load(b[0:]),
		Load(b[4:]),
		Load(b[8:]),
		Load(b[12:]),
	}
}

// StoreBlock packs blk into the first BlockSize bytes of b.
func StoreBlock(b []byte, blk Block) {
	_ = b[BlockSize-1]
	Store(b[0:], blk[0])
	Store(b[4:], blk[1])
	Store(b[8:], blk[2])
	Store(b[12:], blk[3])
}

// Xor returns a^b word by word.
func (blk Block) Xor(o Block) Block {
	return Block{
		blk[0] ^ o[0],
		blk[1] ^ o[1],
		blk[2] ^ o[2],
		blk[3] ^ o[3],
	}
}
