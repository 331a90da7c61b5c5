//
// ecb.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"crypto/cipher"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the minimum number of blocks processed
// concurrently by the ECB mode. Shorter inputs are processed in the
// calling goroutine.
var ParallelThreshold = 4096

type ecb struct {
	b       cipher.Block
	encrypt bool
}

// NewECBEncrypter returns a BlockMode which encrypts in electronic
// codebook mode.
func NewECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{
		b:       b,
		encrypt: true,
	}
}

// NewECBDecrypter returns a BlockMode which decrypts in electronic
// codebook mode.
func NewECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{
		b: b,
	}
}

func (e *ecb) BlockSize() int {
	return e.b.BlockSize()
}

func (e *ecb) CryptBlocks(dst, src []byte) {
	bs := e.b.BlockSize()
	checkBlocks(bs, dst, src)

	n := len(src) / bs
	workers := runtime.GOMAXPROCS(0)
	if n < ParallelThreshold || workers < 2 {
		e.crypt(dst, src)
		return
	}

	// Blocks are independent: split the input into one span per
	// worker.
	span := (n + workers - 1) / workers * bs

	var g errgroup.Group
	for start := 0; start < len(src); start += span {
		start := start
		end := min(start+span, len(src))
		g.Go(func() error {
			e.crypt(dst[start:end], src[start:end])
			return nil
		})
	}
	// The workers never fail.
	_ = g.Wait()
}

func (e *ecb) crypt(dst, src []byte) {
	bs := e.b.BlockSize()
	for len(src) > 0 {
		if e.encrypt {
			e.b.Encrypt(dst[:bs], src[:bs])
		} else {
			e.b.Decrypt(dst[:bs], src[:bs])
		}
		src = src[bs:]
		dst = dst[bs:]
	}
}
