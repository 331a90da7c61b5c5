//
// sm3.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sm3 implements the SM3 hash algorithm as defined in GB/T
// 32905-2016.
//
// The State type holds the complete streaming state of one digest
// computation: the running registers, the pending partial block, and
// the number of message bits processed so far. A State is not safe
// for concurrent use; each concurrent computation needs its own State.
package sm3

import (
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/markkurossi/gmsm/pkg/words"
)

// Size is the size of an SM3 checksum in bytes.
const Size = 32

// BlockSize is the block size of SM3 in bytes.
const BlockSize = 64

const (
	init0 = 0x7380166f
	init1 = 0x4914b2b9
	init2 = 0x172442d7
	init3 = 0xda8a0600
	init4 = 0xa96f30bc
	init5 = 0x163138aa
	init6 = 0xe38dee4d
	init7 = 0xb0fb0e4e
)

// Encoding specifies the digest output representation.
type Encoding int

// Digest encodings.
const (
	Raw Encoding = iota
	Hex
)

func (enc Encoding) String() string {
	switch enc {
	case Raw:
		return "raw"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("{Encoding %d}", enc)
	}
}

// ParseEncoding parses the encoding name. The empty name selects Hex.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "", "hex":
		return Hex, nil
	case "raw":
		return Raw, nil
	default:
		return Raw, fmt.Errorf("sm3: unknown encoding '%s'", name)
	}
}

// State implements the SM3 streaming state.
type State struct {
	h    [8]uint32
	x    [BlockSize]byte
	nx   int
	bits uint64
}

var _ hash.Hash = &State{}

// New creates a new State initialized to the SM3 initial value.
func New() *State {
	s := new(State)
	s.Reset()
	return s
}

// Reset resets the state to the SM3 initial value and discards all
// pending input.
func (s *State) Reset() {
	s.h[0] = init0
	s.h[1] = init1
	s.h[2] = init2
	s.h[3] = init3
	s.h[4] = init4
	s.h[5] = init5
	s.h[6] = init6
	s.h[7] = init7
	s.nx = 0
	s.bits = 0
}

// Size returns the checksum size in bytes.
func (s *State) Size() int { return Size }

// BlockSize returns the hash block size in bytes.
func (s *State) BlockSize() int { return BlockSize }

// Len returns the number of message bits written since the last
// reset.
func (s *State) Len() uint64 { return s.bits }

// Write adds p to the running hash. It never returns an error.
func (s *State) Write(p []byte) (int, error) {
	nn := len(p)
	s.bits += uint64(nn) << 3
	if s.nx > 0 {
		n := copy(s.x[s.nx:], p)
		s.nx += n
		if s.nx == BlockSize {
			block(&s.h, s.x[:])
			s.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(&s.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		s.nx = copy(s.x[:], p)
	}
	return nn, nil
}

// Sum appends the current checksum to in and returns the resulting
// slice. It does not change the underlying state.
func (s *State) Sum(in []byte) []byte {
	s0 := *s
	sum := s0.Finalize()
	return append(in, sum[:]...)
}

// Finalize pads the pending input, processes the final block(s), and
// returns the checksum. The state is reset to the initial value after
// the checksum is computed so the State can be reused for a new
// message.
func (s *State) Finalize() [Size]byte {
	length := s.bits

	// Padding: 0x80 and zeros until 56 bytes mod 64, followed by the
	// message length in bits.
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80

	var t int
	if s.nx < 56 {
		t = 56 - s.nx
	} else {
		t = BlockSize + 56 - s.nx
	}
	words.Store(tmp[t:], uint32(length>>32))
	words.Store(tmp[t+4:], uint32(length))
	s.Write(tmp[:t+8])

	if s.nx != 0 {
		panic("sm3: pending input after padding")
	}

	var digest [Size]byte
	for i, v := range s.h {
		words.Store(digest[i*4:], v)
	}
	s.Reset()

	return digest
}

// Digest computes the checksum of msg. If msg is nil, the checksum
// covers the data written to the state since the last reset;
// otherwise the state is reset before msg is written. The state is
// reset after the checksum is computed.
func (s *State) Digest(msg []byte) [Size]byte {
	if msg != nil {
		s.Reset()
		s.Write(msg)
	}
	return s.Finalize()
}

// DigestHex is like Digest but returns the checksum as lowercase
// hexadecimal string.
func (s *State) DigestHex(msg []byte) string {
	sum := s.Digest(msg)
	return hex.EncodeToString(sum[:])
}

// DigestEncoded computes the checksum of msg like Digest and returns
// it in the requested encoding. The Raw encoding returns the 32
// checksum bytes as string.
func (s *State) DigestEncoded(msg []byte, enc Encoding) string {
	switch enc {
	case Hex:
		return s.DigestHex(msg)
	case Raw:
		sum := s.Digest(msg)
		return string(sum[:])
	default:
		panic(fmt.Sprintf("sm3: invalid encoding %v", enc))
	}
}

// Sum returns the SM3 checksum of the data.
func Sum(data []byte) [Size]byte {
	var s State
	s.Reset()
	s.Write(data)
	return s.Finalize()
}

// SumHex returns the SM3 checksum of the data as lowercase
// hexadecimal string.
func SumHex(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}
