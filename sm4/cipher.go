//
// cipher.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sm4 implements the SM4 block cipher as defined in GB/T
// 32907-2016.
//
// The Cipher type implements crypto/cipher.Block so it can be used
// with the block modes of this module and with the standard library
// modes. The round keys are computed once in NewCipher and are only
// read afterwards, so a Cipher is safe for concurrent use.
package sm4

import (
	"crypto/cipher"

	"github.com/markkurossi/gmsm/pkg/words"
)

// BlockSize is the SM4 block size in bytes.
const BlockSize = words.BlockSize

// Cipher implements the SM4 block cipher.
type Cipher struct {
	enc RoundKeys
	dec RoundKeys
}

var _ cipher.Block = &Cipher{}

// NewCipher creates a new cipher with the 16-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	enc, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{
		enc: enc,
		dec: enc.Reverse(),
	}, nil
}

// BlockSize returns the cipher block size.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// EncryptKeys returns the encryption round keys.
func (c *Cipher) EncryptKeys() RoundKeys {
	return c.enc
}

// DecryptKeys returns the decryption round keys.
func (c *Cipher) DecryptKeys() RoundKeys {
	return c.dec
}

// Encrypt encrypts the first block of src into dst. The dst and src
// may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.crypt(dst, src, &c.enc)
}

// Decrypt decrypts the first block of src into dst. The dst and src
// may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.crypt(dst, src, &c.dec)
}

func (c *Cipher) crypt(dst, src []byte, rk *RoundKeys) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	words.StoreBlock(dst, Transform(words.LoadBlock(src), rk))
}
