//
// cbc.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"crypto/cipher"
	"fmt"
)

// cbc holds the chain block carried between successive blocks. The
// chain starts from the IV and is always the previous ciphertext
// block, in both directions.
type cbc struct {
	b     cipher.Block
	chain []byte
	tmp   []byte
}

func newCBC(b cipher.Block, iv []byte) (*cbc, error) {
	if len(iv) != b.BlockSize() {
		return nil, fmt.Errorf("%w: %d bytes, expected %d", ErrorInvalidIV,
			len(iv), b.BlockSize())
	}
	chain := make([]byte, len(iv))
	copy(chain, iv)

	return &cbc{
		b:     b,
		chain: chain,
		tmp:   make([]byte, len(iv)),
	}, nil
}

type cbcEncrypter cbc

// NewCBCEncrypter returns a BlockMode which encrypts in cipher block
// chaining mode. The function returns ErrorInvalidIV if the IV length
// is not the cipher block size.
func NewCBCEncrypter(b cipher.Block, iv []byte) (cipher.BlockMode, error) {
	c, err := newCBC(b, iv)
	if err != nil {
		return nil, err
	}
	return (*cbcEncrypter)(c), nil
}

func (c *cbcEncrypter) BlockSize() int {
	return c.b.BlockSize()
}

func (c *cbcEncrypter) CryptBlocks(dst, src []byte) {
	bs := c.b.BlockSize()
	checkBlocks(bs, dst, src)

	for len(src) > 0 {
		xorBytes(c.tmp, src[:bs], c.chain)
		c.b.Encrypt(dst[:bs], c.tmp)
		copy(c.chain, dst[:bs])

		src = src[bs:]
		dst = dst[bs:]
	}
}

type cbcDecrypter cbc

// NewCBCDecrypter returns a BlockMode which decrypts in cipher block
// chaining mode. The function returns ErrorInvalidIV if the IV length
// is not the cipher block size.
func NewCBCDecrypter(b cipher.Block, iv []byte) (cipher.BlockMode, error) {
	c, err := newCBC(b, iv)
	if err != nil {
		return nil, err
	}
	return (*cbcDecrypter)(c), nil
}

func (c *cbcDecrypter) BlockSize() int {
	return c.b.BlockSize()
}

func (c *cbcDecrypter) CryptBlocks(dst, src []byte) {
	bs := c.b.BlockSize()
	checkBlocks(bs, dst, src)

	for len(src) > 0 {
		// Save the ciphertext block first: dst may alias src.
		copy(c.tmp, src[:bs])
		c.b.Decrypt(dst[:bs], src[:bs])
		xorBytes(dst[:bs], dst[:bs], c.chain)
		c.chain, c.tmp = c.tmp, c.chain

		src = src[bs:]
		dst = dst[bs:]
	}
}
